package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockRepo struct {
	items map[uuid.UUID]*Contact
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Contact)}
}

func (m *mockRepo) Create(_ context.Context, ct *Contact) error {
	ct.ID = uuid.New()
	ct.CreatedAt = time.Now()
	clone := *ct
	m.items[ct.ID] = &clone
	return nil
}

func (m *mockRepo) GetOwned(_ context.Context, id, userID uuid.UUID) (*Contact, error) {
	ct, ok := m.items[id]
	if !ok || ct.UserID != userID {
		return nil, ErrNotFound
	}
	clone := *ct
	return &clone, nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*Contact, error) {
	var out []*Contact
	for _, ct := range m.items {
		if ct.UserID == userID {
			clone := *ct
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, ct *Contact) error {
	cur, ok := m.items[ct.ID]
	if !ok || cur.UserID != ct.UserID {
		return ErrNotFound
	}
	cur.Name, cur.Phone, cur.Relationship = ct.Name, ct.Phone, ct.Relationship
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	ct, ok := m.items[id]
	if !ok || ct.UserID != userID {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func newTestService() (*Service, uuid.UUID) {
	return NewService(newMockRepo(), zerolog.Nop()), uuid.New()
}

func TestCreateAndGet(t *testing.T) {
	svc, user := newTestService()
	ct, err := svc.Create(context.Background(), user, Input{
		Name: "Joao Souza", Phone: "+55 11 98765-4321", Relationship: "son",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.Get(context.Background(), user, ct.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Relationship != "son" {
		t.Errorf("relationship = %q", got.Relationship)
	}

	if _, err := svc.Get(context.Background(), uuid.New(), ct.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger Get err = %v, want ErrNotFound", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, user := newTestService()
	for _, in := range []Input{
		{Name: "", Phone: "123"},
		{Name: "Joao", Phone: ""},
		{Name: "   ", Phone: "123"},
	} {
		if _, err := svc.Create(context.Background(), user, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Create(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc, user := newTestService()
	ct, err := svc.Create(context.Background(), user, Input{
		Name: "Joao Souza", Phone: "123", Relationship: "son",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Update(context.Background(), user, ct.ID, Input{
		Name: "Joao Souza", Phone: "456", Relationship: "son",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Phone != "456" {
		t.Errorf("phone = %q, want updated", got.Phone)
	}

	if err := svc.Delete(context.Background(), uuid.New(), ct.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger Delete err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), user, ct.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), user, ct.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete err = %v, want ErrNotFound", err)
	}
}
