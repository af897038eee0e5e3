package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"carenest/models"
)

// memDraftStore is an in-memory DraftStore for tests.
type memDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.BookingDraft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (m *memDraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draft.DraftID] = *draft
	return nil
}

func (m *memDraftStore) Get(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[draftID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := d
	return &copied, nil
}

func (m *memDraftStore) Delete(ctx context.Context, draftID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, draftID)
	return nil
}

func TestSubmitDraftClearsOnSuccess(t *testing.T) {
	api := &stubBookingAPI{}
	store := newMemDraftStore()
	svc := NewDefaultBookingService(api, nil, store, nil, zap.NewNop())

	draft, err := svc.OpenDraft(context.Background(), "p1", validInput())
	if err != nil {
		t.Fatalf("open draft failed: %v", err)
	}

	created, err := svc.SubmitDraft(context.Background(), "p1", draft.DraftID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a created booking")
	}
	if _, err := store.Get(context.Background(), draft.DraftID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatal("draft must be deleted after a successful submit")
	}
}

func TestSubmitDraftResetsOnFailure(t *testing.T) {
	api := &stubBookingAPI{}
	store := newMemDraftStore()
	svc := NewDefaultBookingService(api, nil, store, nil, zap.NewNop())

	input := validInput()
	input.NumChildren = 0 // fails validation inside Create
	draft, err := svc.OpenDraft(context.Background(), "p1", input)
	if err != nil {
		t.Fatalf("open draft failed: %v", err)
	}

	if _, err := svc.SubmitDraft(context.Background(), "p1", draft.DraftID); err == nil {
		t.Fatal("expected submit to fail validation")
	}

	saved, err := store.Get(context.Background(), draft.DraftID)
	if err != nil {
		t.Fatalf("draft lost after failed submit: %v", err)
	}
	if saved.State != models.DraftIdle {
		t.Fatalf("draft state = %s, want idle after failed submit", saved.State)
	}
}

func TestDraftOwnershipEnforced(t *testing.T) {
	store := newMemDraftStore()
	svc := NewDefaultBookingService(&stubBookingAPI{}, nil, store, nil, zap.NewNop())

	draft, err := svc.OpenDraft(context.Background(), "p1", validInput())
	if err != nil {
		t.Fatalf("open draft failed: %v", err)
	}

	if _, err := svc.UpdateDraft(context.Background(), "p2", draft.DraftID, validInput()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("foreign update: got %v, want ErrDraftNotFound", err)
	}
	if _, err := svc.SubmitDraft(context.Background(), "p2", draft.DraftID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("foreign submit: got %v, want ErrDraftNotFound", err)
	}
}
