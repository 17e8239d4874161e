package payment

import "context"

// ModePayment is the only session mode the storefront uses.
const ModePayment = "payment"

// LineItem is one purchasable line in a session request. UnitAmount is in
// the provider's minor currency unit.
type LineItem struct {
	Currency    string
	Name        string
	Description string
	UnitAmount  int
	Quantity    int
}

// SessionRequest describes one hosted-checkout session to create.
type SessionRequest struct {
	LineItems  []LineItem
	Mode       string
	SuccessURL string
	CancelURL  string
}

// Session is the provider's response: an opaque session ID and the hosted
// payment page the browser is redirected to.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionCreator creates one payment session per call. The call blocks
// until the provider answers or fails; it is never retried here.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
}
