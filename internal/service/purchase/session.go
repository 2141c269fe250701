package purchase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/bookdesk/internal/domain"
	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

// State is the form state of a Session.
type State int

const (
	// StateEmpty means the next Submit inserts a new purchase.
	StateEmpty State = iota
	// StateEditing means the next Submit updates the loaded purchase.
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the purchase form of one customer.
//
//	EMPTY   --LoadForEdit--> EDITING
//	EDITING --Submit ok----> EMPTY
//	EDITING --CancelEdit---> EMPTY
//	EMPTY   --Submit ok----> EMPTY
type Session struct {
	svc      *Service
	customer domain.Customer

	mu       sync.Mutex
	selected *int64
	draft    PurchaseInput
}

func newSession(svc *Service, c domain.Customer) *Session {
	return &Session{
		svc:      svc,
		customer: c,
		draft:    EmptyInput(),
	}
}

// Customer returns the customer the session is bound to.
func (s *Session) Customer() domain.Customer { return s.customer }

// State returns the current form state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return StateEmpty
	}
	return StateEditing
}

// Selected returns the purchase being edited, if any.
func (s *Session) Selected() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Draft returns the transient form fields.
func (s *Session) Draft() PurchaseInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Submit validates input and writes it: an insert bound to the session
// customer in StateEmpty, an update of the loaded purchase in StateEditing.
// On success the session returns to StateEmpty with a reset draft and the
// id of the written purchase is returned. On failure the state is kept and
// the draft holds input.
func (s *Session) Submit(ctx context.Context, input PurchaseInput) (int64, error) {
	ctx = ctxutil.NewOperation(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = input

	var purchaseID int64
	if s.selected != nil {
		purchaseID = *s.selected
	}

	p, err := input.parse(s.customer.ID, purchaseID)
	if err != nil {
		return 0, err
	}

	err = s.svc.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if purchaseID == 0 {
			id, createErr := s.svc.purchases.Create(txCtx, p)
			if createErr != nil {
				return fmt.Errorf("create purchase: %w", createErr)
			}
			p.ID = id
			return nil
		}
		if updateErr := s.svc.purchases.Update(txCtx, p); updateErr != nil {
			return fmt.Errorf("update purchase: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	action := "purchase created"
	if purchaseID != 0 {
		action = "purchase updated"
	}
	s.svc.log.InfoContext(ctx, action,
		slog.Int64("customer_id", s.customer.ID),
		slog.Int64("purchase_id", p.ID),
		slog.String("genre", p.Genre),
	)

	s.resetLocked()
	return p.ID, nil
}

// LoadForEdit fills the draft from purchaseID and enters StateEditing.
// Returns domain.ErrNotFound if the purchase does not belong to the session
// customer; the state is then unchanged.
func (s *Session) LoadForEdit(ctx context.Context, purchaseID int64) (PurchaseInput, error) {
	p, err := s.svc.purchases.GetByID(ctx, s.customer.ID, purchaseID)
	if err != nil {
		return PurchaseInput{}, fmt.Errorf("get purchase: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := p.ID
	s.selected = &id
	s.draft = inputFromPurchase(p)
	return s.draft, nil
}

// CancelEdit discards the draft and returns to StateEmpty.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.selected = nil
	s.draft = EmptyInput()
}

// List returns the customer's purchases, newest first.
func (s *Session) List(ctx context.Context) ([]domain.Purchase, error) {
	list, err := s.svc.purchases.ListByCustomer(ctx, s.customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return list, nil
}

// ListRows returns the customer's purchases formatted for display.
func (s *Session) ListRows(ctx context.Context) ([]domain.PurchaseRow, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.PurchaseRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, p.Row())
	}
	return rows, nil
}
