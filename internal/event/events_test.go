package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		wantType string
	}{
		{"item added", ItemAdded("1", 1), TypeItemAdded},
		{"item removed", ItemRemoved("1"), TypeItemRemoved},
		{"quantity changed", QuantityChanged("1", 3), TypeQuantityChanged},
		{"checkout started", CheckoutStarted(798), TypeCheckoutStarted},
		{"checkout redirected", CheckoutRedirected(798), TypeCheckoutRedirected},
		{"checkout failed", CheckoutFailed("provider down"), TypeCheckoutFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.envelope.Type)
			assert.NotEmpty(t, tt.envelope.ID)
			assert.False(t, tt.envelope.OccurredAt.IsZero())
		})
	}
}

func TestEnvelopeIDsAreUnique(t *testing.T) {
	a := ItemAdded("1", 1)
	b := ItemAdded("1", 1)
	assert.NotEqual(t, a.ID, b.ID)
}
