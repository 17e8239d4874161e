package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/example/shopfront/internal/domain/cart"
	"github.com/example/shopfront/internal/event"
	"github.com/example/shopfront/internal/payment"
)

var (
	// ErrInProgress rejects a submit while another one is in flight.
	ErrInProgress = errors.New("checkout already in progress")
	// ErrNoRedirectURL means the provider answered without a hosted page URL.
	ErrNoRedirectURL = errors.New("payment session has no redirect URL")
)

// Orchestrator turns the current cart lines into a single payment-session
// request and hands back the redirect URL for the browser to navigate to.
type Orchestrator struct {
	sessions   payment.SessionCreator
	events     event.Publisher
	currency   string
	successURL string
	cancelURL  string

	submitting atomic.Bool
}

func NewOrchestrator(sessions payment.SessionCreator, events event.Publisher, currency, successURL, cancelURL string) *Orchestrator {
	return &Orchestrator{
		sessions:   sessions,
		events:     events,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// Submit builds one payment line item per cart line (unit prices converted
// to the provider's minor units) and creates one session. A second Submit
// while one is in flight fails fast with ErrInProgress. On failure the lock
// is released and the cart is untouched; the caller surfaces the error and
// the user may simply try again. An empty line list is passed through,
// downstream behavior on it is the provider's business.
func (o *Orchestrator) Submit(ctx context.Context, lines []cart.Line) (string, error) {
	if !o.submitting.CompareAndSwap(false, true) {
		return "", ErrInProgress
	}
	defer o.submitting.Store(false)

	req := payment.SessionRequest{
		Mode:       payment.ModePayment,
		SuccessURL: o.successURL,
		CancelURL:  o.cancelURL,
	}
	total := 0
	for _, line := range lines {
		req.LineItems = append(req.LineItems, payment.LineItem{
			Currency:    o.currency,
			Name:        line.Product.Name,
			Description: line.Product.ID,
			UnitAmount:  line.Product.Price * 100, // whole units to minor units
			Quantity:    line.Quantity,
		})
		total += line.Product.Price * line.Quantity
	}

	o.emit(ctx, event.CheckoutStarted(total))

	session, err := o.sessions.CreateSession(ctx, req)
	if err != nil {
		o.emit(ctx, event.CheckoutFailed(err.Error()))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	if session.URL == "" {
		o.emit(ctx, event.CheckoutFailed(ErrNoRedirectURL.Error()))
		return "", ErrNoRedirectURL
	}

	o.emit(ctx, event.CheckoutRedirected(total))
	return session.URL, nil
}

func (o *Orchestrator) emit(ctx context.Context, env event.Envelope) {
	if err := o.events.Publish(ctx, env.ID, env); err != nil {
		log.Printf("[Checkout] Failed to publish %s event: %v", env.Type, err)
	}
}
