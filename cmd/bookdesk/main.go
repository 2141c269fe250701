// Command bookdesk is operator tooling over the bookstore record engine.
//
// Usage:
//
//	bookdesk [--config FILE] <command> [flags]
//
// Commands:
//
//	migrate            apply database migrations
//	regions            print the region/city table (falls back offline)
//	customers          list customers sorted by name
//	purchases -id N    list the purchases of customer N, newest first
//	export [-out FILE] write customers to CSV
//	clear -yes         delete every customer and purchase
//	version            print build information
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/bookdesk/internal/adapter/postgres"
	"github.com/heartmarshall/bookdesk/internal/app"
	"github.com/heartmarshall/bookdesk/internal/config"
	"github.com/heartmarshall/bookdesk/internal/service/locality"
	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bookdesk:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	global := flag.NewFlagSet("bookdesk", flag.ContinueOnError)
	configPath := global.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	envFile := global.String("env-file", ".env", "optional dotenv file loaded before config")
	if err := global.Parse(args); err != nil {
		return err
	}

	cmdArgs := global.Args()
	if len(cmdArgs) == 0 {
		global.Usage()
		return errors.New("missing command")
	}
	name, rest := cmdArgs[0], cmdArgs[1:]

	if name == "version" {
		fmt.Fprintln(out, app.BuildVersion())
		return nil
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = ctxutil.NewOperation(ctx)

	switch name {
	case "migrate":
		return migrate(ctx, cfg, logger)
	case "regions":
		return regions(ctx, app.NewLocalityService(cfg, logger), out)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	switch name {
	case "customers":
		return customers(ctx, a, out)
	case "purchases":
		return purchases(ctx, a, rest, out)
	case "export":
		return exportCSV(ctx, a, rest, out)
	case "clear":
		return clearAll(ctx, a, rest, out)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path, true)
}

func migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return postgres.Migrate(ctx, pool, logger)
}

func regions(ctx context.Context, svc *locality.Service, out io.Writer) error {
	res := svc.Load(ctx)
	if res.Degraded() {
		fmt.Fprintln(os.Stderr, "warning:", res.Warning)
	}
	for _, r := range res.Localities.Regions() {
		fmt.Fprintf(out, "%s\t%s\n", r, strings.Join(res.Localities.Cities(r), ", "))
	}
	return nil
}

func customers(ctx context.Context, a *app.App, out io.Writer) error {
	list, err := a.Customers.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCITY\tREGION")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.City, c.Region)
	}
	return tw.Flush()
}

func purchases(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("purchases", flag.ContinueOnError)
	id := fs.Int64("id", 0, "customer id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.Purchases.Open(ctx, *id)
	if err != nil {
		return err
	}

	rows, err := session.ListRows(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tGENRE\tDATE\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.BookTitle, r.BookAuthor, r.Genre, r.Date, r.Value)
	}
	return tw.Flush()
}

func exportCSV(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	path := fs.String("out", a.Config.Export.DefaultFileName, "destination CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ok, err := a.Customers.HasCustomers(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no customers to export")
	}

	if err := a.Export.ExportCustomersToCSV(ctx, *path); err != nil {
		return err
	}
	fmt.Fprintln(out, "exported to", *path)
	return nil
}

func clearAll(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "confirm deletion of every record")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.Customers.ClearAll(ctx, *yes); err != nil {
		return err
	}
	fmt.Fprintln(out, "all records deleted")
	return nil
}
