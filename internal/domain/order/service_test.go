package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/cart"
	"github.com/allithy/storefront-backend/internal/i18n"
)

type memoryCartStore struct {
	carts   map[string]*cart.Cart
	getErr  error
	cleared []string
}

func (m *memoryCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.carts[sessionID]; ok {
		return c, nil
	}
	return cart.New(sessionID), nil
}

func (m *memoryCartStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	m.cleared = append(m.cleared, sessionID)
	return nil
}

func submitConfig() *config.Config {
	return &config.Config{
		External: config.ExternalConfig{
			WhatsApp: config.WhatsAppConfig{
				Number:  "966531555016",
				BaseURL: "https://wa.me",
			},
		},
	}
}

func TestSubmitClearsCart(t *testing.T) {
	store := &memoryCartStore{carts: map[string]*cart.Cart{"s1": fixtureCart()}}
	svc := NewService(store, submitConfig())

	result, err := svc.Submit(context.Background(), "s1", i18n.English)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !strings.HasPrefix(result.Link, "https://wa.me/966531555016?") {
		t.Errorf("unexpected link: %s", result.Link)
	}
	if !strings.Contains(result.Message, "1. Photo Paper") {
		t.Errorf("message missing item line:\n%s", result.Message)
	}

	// Clearing is unconditional on invoking send, not on delivery.
	if len(store.cleared) != 1 || store.cleared[0] != "s1" {
		t.Fatalf("cart was not cleared: %v", store.cleared)
	}
	after, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get after submit: %v", err)
	}
	if !after.IsEmpty() {
		t.Errorf("cart has %d items after submit, want 0", len(after.Items))
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := &memoryCartStore{carts: map[string]*cart.Cart{}}
	svc := NewService(store, submitConfig())

	_, err := svc.Submit(context.Background(), "s1", i18n.English)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("got %v, want ErrEmptyCart", err)
	}
	if len(store.cleared) != 0 {
		t.Errorf("empty submit cleared the cart: %v", store.cleared)
	}
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("redis unavailable")
	store := &memoryCartStore{getErr: wantErr}
	svc := NewService(store, submitConfig())

	_, err := svc.Submit(context.Background(), "s1", i18n.English)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want wrapped store error", err)
	}
}
