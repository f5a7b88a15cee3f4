package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/services"
	"github.com/mehdiben7/tiwashop/app/utils/renderer"
)

func newOrderHandler(products *fakeProductRepo, orders *fakeOrderRepo) *OrderHandler {
	svc := services.NewOrderService(orders, products)
	return NewOrderHandler(svc, orders, renderer.New(), validator.New())
}

func postOrder(t *testing.T, h *OrderHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestOrderCreate(t *testing.T) {
	products := &fakeProductRepo{products: []models.Product{
		{ID: "p1", Name: "Chrono Atlas"},
		{ID: "p2", Name: "Sahara GMT", IsSoldOut: true},
	}}

	t.Run("success returns tracking number", func(t *testing.T) {
		orders := &fakeOrderRepo{}
		h := newOrderHandler(products, orders)

		rec := postOrder(t, h, `{
			"customer_name": "Sara Amrani",
			"phone": "0612345678",
			"address": "12 Rue Atlas, Casablanca",
			"product_id": "p1"
		}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body)
		}

		var resp struct {
			TrackingNumber string `json:"tracking_number"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if !strings.HasPrefix(resp.TrackingNumber, "TW") {
			t.Errorf("tracking_number = %q, want TW prefix", resp.TrackingNumber)
		}
		if len(orders.orders) != 1 {
			t.Fatalf("orders stored = %d, want 1", len(orders.orders))
		}
	})

	t.Run("sold-out product is a conflict", func(t *testing.T) {
		h := newOrderHandler(products, &fakeOrderRepo{})

		rec := postOrder(t, h, `{
			"customer_name": "Sara Amrani",
			"phone": "0612345678",
			"address": "12 Rue Atlas, Casablanca",
			"product_id": "p2"
		}`)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		h := newOrderHandler(products, &fakeOrderRepo{})

		rec := postOrder(t, h, `{
			"customer_name": "Sara Amrani",
			"phone": "0612345678",
			"address": "12 Rue Atlas, Casablanca",
			"product_id": "nope"
		}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		orders := &fakeOrderRepo{}
		h := newOrderHandler(products, orders)

		rec := postOrder(t, h, `{"customer_name": "", "phone": "", "address": "", "product_id": ""}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(resp.Fields) == 0 {
			t.Error("expected per-field validation messages")
		}
		if len(orders.orders) != 0 {
			t.Error("invalid form must not create an order")
		}
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		h := newOrderHandler(products, &fakeOrderRepo{})
		rec := postOrder(t, h, `{not json`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestOrderTrack(t *testing.T) {
	orders := &fakeOrderRepo{orders: []models.Order{
		{
			ID:             "o1",
			TrackingNumber: "TW20250828001",
			CustomerName:   "Sara Amrani",
			Phone:          "0612345678",
			Status:         models.OrderStatusShipped,
		},
	}}
	h := newOrderHandler(&fakeProductRepo{}, orders)

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.Track(rec, req)
		return rec
	}

	t.Run("by tracking number, case-insensitive", func(t *testing.T) {
		rec := get("/api/orders/track?tracking=tw20250828001")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
		}
	})

	t.Run("unknown tracking number is a distinguished not-found", func(t *testing.T) {
		rec := get("/api/orders/track?tracking=TW19990101001")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp["message"] == "" {
			t.Error("not-found must carry a user-facing message, not a bare error")
		}
	})

	t.Run("by phone and name", func(t *testing.T) {
		rec := get("/api/orders/track?phone=0612345678&name=Sara+Amrani")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body)
		}
	})

	t.Run("missing parameters", func(t *testing.T) {
		rec := get("/api/orders/track?phone=0612345678")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
