package cart

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/event"
	"github.com/example/shopfront/internal/infrastructure/store"
)

// Line pairs a catalog product with its cart membership. Invariant:
// Quantity > 0 if and only if InCart.
type Line struct {
	Product  catalog.Product `json:"product"`
	InCart   bool            `json:"in_cart"`
	Quantity int             `json:"quantity"`
}

// Store holds the authoritative cart state for one client session. Lines
// keep catalog order, one line per product ID. Every mutation is followed by
// a full overwrite of the persisted snapshot before the mutator returns.
type Store struct {
	source    catalog.Source
	snapshots store.SnapshotStoreInterface
	events    event.Publisher

	mu    sync.Mutex
	lines []*Line
	index map[string]*Line // productID -> line
}

func NewStore(source catalog.Source, snapshots store.SnapshotStoreInterface, events event.Publisher) *Store {
	return &Store{
		source:    source,
		snapshots: snapshots,
		events:    events,
		index:     make(map[string]*Line),
	}
}

// Initialize fetches the catalog, reconciles the persisted snapshot onto it
// and re-persists the reconciled cart. Snapshot entries that no longer match
// a catalog product, or that carry a non-positive quantity, are silently
// dropped. On catalog failure the cart stays empty and every mutator is a
// no-op; the caller decides whether that is fatal.
func (s *Store) Initialize(ctx context.Context) error {
	products, err := s.source.Products(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]*Line, 0, len(products))
	s.index = make(map[string]*Line, len(products))
	for _, p := range products {
		line := &Line{Product: p}
		s.lines = append(s.lines, line)
		s.index[p.ID] = line
	}

	entries, err := s.snapshots.Load(ctx)
	if err != nil {
		// A snapshot that cannot be read is treated like no snapshot at all
		log.Printf("[Cart] Failed to load cart snapshot: %v", err)
		entries = nil
	}
	for _, e := range entries {
		line, ok := s.index[e.ProductID]
		if !ok || !e.AddedToCart || e.Quantity <= 0 {
			continue
		}
		line.InCart = true
		line.Quantity = e.Quantity
	}

	s.persist(ctx)
	return nil
}

// AddToCart puts a product in the cart with quantity 1. No-op if the ID is
// unknown or the product is already in the cart.
func (s *Store) AddToCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok || line.InCart {
		return
	}
	line.InCart = true
	line.Quantity = 1
	s.persist(ctx)
	s.emit(ctx, event.ItemAdded(productID, 1))
}

// RemoveFromCart takes a product out of the cart. No-op if not in the cart.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok || !line.InCart {
		return
	}
	s.removeLocked(ctx, line)
}

// IncreaseQuantity adds one unit to an in-cart line. No-op otherwise.
func (s *Store) IncreaseQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok || !line.InCart {
		return
	}
	line.Quantity++
	s.persist(ctx)
	s.emit(ctx, event.QuantityChanged(productID, line.Quantity))
}

// DecreaseQuantity removes one unit from an in-cart line. Decrementing the
// last unit removes the line entirely; a zero-quantity in-cart line is
// unrepresentable.
func (s *Store) DecreaseQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok || !line.InCart {
		return
	}
	if line.Quantity > 1 {
		line.Quantity--
		s.persist(ctx)
		s.emit(ctx, event.QuantityChanged(productID, line.Quantity))
		return
	}
	s.removeLocked(ctx, line)
}

// Products returns the full catalog in catalog order.
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]catalog.Product, 0, len(s.lines))
	for _, line := range s.lines {
		products = append(products, line.Product)
	}
	return products
}

// Lines returns the in-cart subsequence of catalog lines, possibly empty.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked()
}

// TotalPrice is recomputed from the in-cart lines on every call. Nothing
// caches it, so no mutation path can leave it stale.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		if line.InCart {
			total += line.Product.Price * line.Quantity
		}
	}
	return total
}

func (s *Store) removeLocked(ctx context.Context, line *Line) {
	line.InCart = false
	line.Quantity = 0
	s.persist(ctx)
	s.emit(ctx, event.ItemRemoved(line.Product.ID))
}

func (s *Store) linesLocked() []Line {
	out := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		if line.InCart {
			out = append(out, *line)
		}
	}
	return out
}

// persist overwrites the whole snapshot with the current in-cart line list.
// A failed write is logged; the in-memory state stands. Callers must hold
// s.mu.
func (s *Store) persist(ctx context.Context) {
	lines := s.linesLocked()
	entries := make([]store.SnapshotEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, store.SnapshotEntry{
			ProductID:   line.Product.ID,
			Name:        line.Product.Name,
			Price:       line.Product.Price,
			ImageURL:    line.Product.ImageURL,
			Quantity:    line.Quantity,
			AddedToCart: true,
		})
	}
	if err := s.snapshots.Save(ctx, entries); err != nil {
		log.Printf("[Cart] Failed to persist cart snapshot: %v", err)
	}
}

func (s *Store) emit(ctx context.Context, env event.Envelope) {
	if err := s.events.Publish(ctx, env.ProductID, env); err != nil {
		log.Printf("[Cart] Failed to publish %s event: %v", env.Type, err)
	}
}
