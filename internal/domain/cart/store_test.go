package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/event"
	"github.com/example/shopfront/internal/infrastructure/store"
)

var testProducts = []catalog.Product{
	{ID: "1", Name: "Zabiják Chřipky", Price: 399},
	{ID: "2", Name: "Stop Rýmě", Price: 599},
	{ID: "3", Name: "Posilovač Imunity", Price: 199},
}

type failingSource struct{}

func (failingSource) Products(ctx context.Context) ([]catalog.Product, error) {
	return nil, errors.New("catalog unavailable")
}

func newTestStore(t *testing.T) (*Store, *store.MemorySnapshotStore) {
	t.Helper()
	snapshots := store.NewMemorySnapshotStore()
	s := NewStore(store.NewStaticCatalog(testProducts), snapshots, event.Nop{})
	require.NoError(t, s.Initialize(context.Background()))
	return s, snapshots
}

// ============================================
// Add To Cart Tests
// ============================================

func TestStore_AddToCart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Product.ID)
	assert.True(t, lines[0].InCart)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestStore_AddToCart_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")
	s.IncreaseQuantity(ctx, "1")
	// Adding an in-cart product again must not reset its quantity
	s.AddToCart(ctx, "1")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestStore_AddToCart_UnknownProduct(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(context.Background(), "nope")

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.TotalPrice())
}

// ============================================
// Remove From Cart Tests
// ============================================

func TestStore_RemoveFromCart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")
	s.RemoveFromCart(ctx, "1")

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.TotalPrice())
}

func TestStore_RemoveFromCart_NotInCart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")
	s.RemoveFromCart(ctx, "2")
	s.RemoveFromCart(ctx, "nope")

	assert.Len(t, s.Lines(), 1)
}

// ============================================
// Quantity Tests
// ============================================

func TestStore_IncreaseQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")
	s.IncreaseQuantity(ctx, "1")

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 798, s.TotalPrice())
}

func TestStore_IncreaseQuantity_NotInCart(t *testing.T) {
	s, _ := newTestStore(t)

	s.IncreaseQuantity(context.Background(), "1")

	assert.Empty(t, s.Lines())
}

func TestStore_DecreaseQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantInCart   bool
		wantQuantity int
	}{
		{"decrement above one keeps line", 3, true, 2},
		{"decrement from two keeps line", 2, true, 1},
		{"decrement from one removes line", 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			ctx := context.Background()

			s.AddToCart(ctx, "1")
			for i := 1; i < tt.quantity; i++ {
				s.IncreaseQuantity(ctx, "1")
			}

			s.DecreaseQuantity(ctx, "1")

			lines := s.Lines()
			if tt.wantInCart {
				require.Len(t, lines, 1)
				assert.Equal(t, tt.wantQuantity, lines[0].Quantity)
			} else {
				assert.Empty(t, lines)
				assert.Equal(t, 0, s.TotalPrice())
			}
		})
	}
}

func TestStore_DecreaseQuantity_NotInCart(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.DecreaseQuantity(ctx, "1")
	s.DecreaseQuantity(ctx, "nope")

	assert.Empty(t, s.Lines())
	entries, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ============================================
// Total Price Tests
// ============================================

func TestStore_TotalPrice(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.Equal(t, 0, s.TotalPrice())

	s.AddToCart(ctx, "1")
	s.AddToCart(ctx, "2")
	s.IncreaseQuantity(ctx, "1")
	assert.Equal(t, 399*2+599, s.TotalPrice())

	s.DecreaseQuantity(ctx, "1")
	s.RemoveFromCart(ctx, "2")
	assert.Equal(t, 399, s.TotalPrice())
}

// ============================================
// Ordering Tests
// ============================================

func TestStore_Lines_CatalogOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Insertion order 3, 1; lines must come back in catalog order 1, 3
	s.AddToCart(ctx, "3")
	s.AddToCart(ctx, "1")

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].Product.ID)
	assert.Equal(t, "3", lines[1].Product.ID)
}

// ============================================
// Persistence Tests
// ============================================

func TestStore_WriteThroughAfterEveryMutation(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	checkSnapshot := func(wantIDs []string, wantQty []int) {
		t.Helper()
		entries, err := snapshots.Load(ctx)
		require.NoError(t, err)
		require.Len(t, entries, len(wantIDs))
		for i, id := range wantIDs {
			assert.Equal(t, id, entries[i].ProductID)
			assert.Equal(t, wantQty[i], entries[i].Quantity)
			assert.True(t, entries[i].AddedToCart)
		}
	}

	s.AddToCart(ctx, "2")
	checkSnapshot([]string{"2"}, []int{1})

	s.IncreaseQuantity(ctx, "2")
	checkSnapshot([]string{"2"}, []int{2})

	s.AddToCart(ctx, "1")
	checkSnapshot([]string{"1", "2"}, []int{1, 2})

	s.DecreaseQuantity(ctx, "2")
	checkSnapshot([]string{"1", "2"}, []int{1, 1})

	s.RemoveFromCart(ctx, "2")
	checkSnapshot([]string{"1"}, []int{1})
}

func TestStore_SnapshotKeepsDisplayFields(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, "1")

	entries, err := snapshots.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Zabiják Chřipky", entries[0].Name)
	assert.Equal(t, 399, entries[0].Price)
}

func TestStore_RoundTrip(t *testing.T) {
	snapshots := store.NewMemorySnapshotStore()
	source := store.NewStaticCatalog(testProducts)
	ctx := context.Background()

	first := NewStore(source, snapshots, event.Nop{})
	require.NoError(t, first.Initialize(ctx))
	first.AddToCart(ctx, "1")
	first.IncreaseQuantity(ctx, "1")
	first.AddToCart(ctx, "3")
	want := first.Lines()

	// New session, same catalog, same persisted snapshot
	second := NewStore(source, snapshots, event.Nop{})
	require.NoError(t, second.Initialize(ctx))

	assert.Equal(t, want, second.Lines())
	assert.Equal(t, first.TotalPrice(), second.TotalPrice())
}

// ============================================
// Initialize Tests
// ============================================

func TestStore_Initialize_ReconcilesSnapshot(t *testing.T) {
	snapshots := store.NewMemorySnapshotStore()
	ctx := context.Background()
	require.NoError(t, snapshots.Save(ctx, []store.SnapshotEntry{
		// Stale name and price: catalog data must win
		{ProductID: "2", Name: "Old Name", Price: 1, Quantity: 4, AddedToCart: true},
	}))

	s := NewStore(store.NewStaticCatalog(testProducts), snapshots, event.Nop{})
	require.NoError(t, s.Initialize(ctx))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Stop Rýmě", lines[0].Product.Name)
	assert.Equal(t, 599, lines[0].Product.Price)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 599*4, s.TotalPrice())
}

func TestStore_Initialize_DropsStaleAndMalformedEntries(t *testing.T) {
	snapshots := store.NewMemorySnapshotStore()
	ctx := context.Background()
	require.NoError(t, snapshots.Save(ctx, []store.SnapshotEntry{
		{ProductID: "gone", Quantity: 2, AddedToCart: true},
		{ProductID: "1", Quantity: 0, AddedToCart: true},
		{ProductID: "2", Quantity: 3, AddedToCart: false},
		{ProductID: "3", Quantity: 1, AddedToCart: true},
	}))

	s := NewStore(store.NewStaticCatalog(testProducts), snapshots, event.Nop{})
	require.NoError(t, s.Initialize(ctx))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "3", lines[0].Product.ID)

	// The dropped entries must be gone from the re-persisted snapshot too
	entries, err := snapshots.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "3", entries[0].ProductID)
}

func TestStore_Initialize_CatalogFailure(t *testing.T) {
	s := NewStore(failingSource{}, store.NewMemorySnapshotStore(), event.Nop{})

	err := s.Initialize(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Lines())
	assert.Empty(t, s.Products())

	// The store stays usable; mutators are no-ops on the empty catalog
	s.AddToCart(context.Background(), "1")
	assert.Empty(t, s.Lines())
}
