// Package ibge fetches Brazilian states and their municipalities from the
// IBGE localities API.
package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookdesk/internal/domain"
)

const (
	// DefaultBaseURL is the public IBGE localities endpoint.
	DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

	defaultTimeout      = 10 * time.Second
	defaultConcurrency  = 8
	defaultMaxBodyBytes = 8 << 20
)

// Provider fetches the region/city table from the IBGE API.
type Provider struct {
	baseURL     string
	httpClient  *http.Client
	concurrency int
	maxBody     int64
	log         *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API base URL (for testing or mirrors).
func WithBaseURL(u string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) { p.httpClient.Timeout = d }
}

// WithConcurrency bounds the number of municipality requests in flight.
func WithConcurrency(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithMaxBodySize caps the bytes read from a single response.
func WithMaxBodySize(n int64) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxBody = n
		}
	}
}

// NewProvider creates a Provider with the default IBGE API URL.
func NewProvider(logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		concurrency: defaultConcurrency,
		maxBody:     defaultMaxBodyBytes,
		log:         logger.With("adapter", "ibge"),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// FetchLocalities returns every state abbreviation mapped to its sorted
// municipality names. Any failed request fails the whole lookup.
func (p *Provider) FetchLocalities(ctx context.Context) (domain.Localities, error) {
	var states []apiState
	if err := p.getJSON(ctx, p.baseURL+"/estados?orderBy=nome", &states); err != nil {
		return nil, fmt.Errorf("ibge: states: %w", err)
	}
	if len(states) == 0 {
		return nil, fmt.Errorf("ibge: states: empty response")
	}

	p.log.DebugContext(ctx, "ibge states fetched", slog.Int("count", len(states)))

	var (
		mu  sync.Mutex
		raw = make(map[string][]string, len(states))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, st := range states {
		uf := strings.TrimSpace(st.Sigla)
		if uf == "" {
			continue
		}
		g.Go(func() error {
			var cities []apiCity
			reqURL := p.baseURL + "/estados/" + url.PathEscape(uf) + "/municipios"
			if err := p.getJSON(gctx, reqURL, &cities); err != nil {
				return fmt.Errorf("ibge: municipalities of %s: %w", uf, err)
			}

			names := make([]string, 0, len(cities))
			for _, c := range cities {
				names = append(names, c.Nome)
			}

			mu.Lock()
			raw[uf] = names
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.log.ErrorContext(ctx, "ibge lookup failed", slog.String("error", err.Error()))
		return nil, err
	}

	return domain.NewLocalities(raw), nil
}

func (p *Provider) getJSON(ctx context.Context, reqURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > p.maxBody {
		return fmt.Errorf("response body exceeds %d bytes", p.maxBody)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
