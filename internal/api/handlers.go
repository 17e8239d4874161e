package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/example/shopfront/internal/checkout"
	"github.com/example/shopfront/internal/domain/cart"
)

type Handlers struct {
	store        *cart.Store
	orchestrator *checkout.Orchestrator
}

func NewHandlers(store *cart.Store, orchestrator *checkout.Orchestrator) *Handlers {
	return &Handlers{
		store:        store,
		orchestrator: orchestrator,
	}
}

type cartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total int                `json:"total"`
}

// Product Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Products())
}

// Cart Handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, cartView(h.store))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}

	h.store.AddToCart(r.Context(), req.ProductID)
	respondJSON(w, http.StatusOK, cartView(h.store))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID := extractPathParam(r.URL.Path, "/cart/items/")
	h.store.RemoveFromCart(r.Context(), productID)
	respondJSON(w, http.StatusOK, cartView(h.store))
}

func (h *Handlers) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	productID := extractPathParam(r.URL.Path, "/cart/items/")
	productID = strings.TrimSuffix(productID, "/increase")
	h.store.IncreaseQuantity(r.Context(), productID)
	respondJSON(w, http.StatusOK, cartView(h.store))
}

func (h *Handlers) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	productID := extractPathParam(r.URL.Path, "/cart/items/")
	productID = strings.TrimSuffix(productID, "/decrease")
	h.store.DecreaseQuantity(r.Context(), productID)
	respondJSON(w, http.StatusOK, cartView(h.store))
}

// Checkout Handler

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	url, err := h.orchestrator.Submit(r.Context(), h.store.Lines())
	if errors.Is(err, checkout.ErrInProgress) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func cartView(store *cart.Store) cartResponse {
	lines := store.Lines()
	items := make([]cartItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartItemResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			ImageURL:  line.Product.ImageURL,
			Quantity:  line.Quantity,
		})
	}
	return cartResponse{
		Items: items,
		Total: store.TotalPrice(),
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}
