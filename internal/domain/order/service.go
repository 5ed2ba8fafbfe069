// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/cart"
	"github.com/allithy/storefront-backend/internal/i18n"
)

// ErrEmptyCart is returned when submit is called on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// CartStore is the slice of the cart store the order handoff needs.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// Service converts a cart into a WhatsApp order handoff. The channel is
// fire-and-forget: building the link clears the cart, success of the
// external delivery is never observed.
type Service struct {
	carts  CartStore
	config *config.Config
}

// NewService creates a new order service
func NewService(carts CartStore, cfg *config.Config) *Service {
	return &Service{
		carts:  carts,
		config: cfg,
	}
}

// SubmitResult carries the handoff link and the message it encodes.
type SubmitResult struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}

// Submit builds the order link for the session's cart and unconditionally
// clears the cart. Clearing is a side effect of invoking send, not of any
// confirmation from the channel.
func (s *Service) Submit(ctx context.Context, sessionID string, lang i18n.Language) (*SubmitResult, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	message := Message(c, lang)
	link := s.Link(message)

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return &SubmitResult{Link: link, Message: message}, nil
}

// Link percent-encodes the message into a wa.me deep link.
func (s *Service) Link(message string) string {
	query := url.Values{}
	query.Set("text", message)
	return fmt.Sprintf("%s/%s?%s",
		strings.TrimRight(s.config.External.WhatsApp.BaseURL, "/"),
		s.config.External.WhatsApp.Number,
		query.Encode(),
	)
}

// Message renders the cart as a numbered, localized order text:
// one line per item with either a price annotation or a price-on-request
// marker, a total line only when the priced subtotal is positive, and an
// unpriced-item count only when that count is positive.
func Message(c *cart.Cart, lang i18n.Language) string {
	var b strings.Builder

	b.WriteString(i18n.Lookup("orderHeader", lang))
	b.WriteString("\n\n")

	currency := i18n.Lookup("currency", lang)
	for i, item := range c.Items {
		var priceText string
		if item.Product.HasPrice() {
			priceText = fmt.Sprintf("%s %s", formatPrice(item.Product.Price), currency)
		} else {
			priceText = i18n.Lookup("priceOnRequest", lang)
		}

		fmt.Fprintf(&b, "%d. %s - %s - %s: %d",
			i+1,
			item.Product.Title(lang),
			priceText,
			i18n.Lookup("orderQuantity", lang),
			item.Quantity,
		)
		if i < len(c.Items)-1 {
			b.WriteString("\n")
		}
	}

	summary := c.Summarize()
	if summary.Subtotal > 0 {
		fmt.Fprintf(&b, "\n\n%s: %.2f %s", i18n.Lookup("total", lang), summary.Subtotal, currency)
	}
	if summary.UnpricedCount > 0 {
		fmt.Fprintf(&b, "\n%s: %d", i18n.Lookup("unpricedItems", lang), summary.UnpricedCount)
	}

	b.WriteString("\n\n")
	b.WriteString(i18n.Lookup("orderFooter", lang))

	return b.String()
}

// formatPrice renders a price the way it was entered: no trailing zeros
// for whole amounts, full precision otherwise.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
