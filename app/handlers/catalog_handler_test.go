package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/utils/renderer"
	"github.com/shopspring/decimal"
)

func catalogFixture() *fakeProductRepo {
	return &fakeProductRepo{products: []models.Product{
		{
			ID:    "p1",
			Name:  "Chrono Atlas",
			Slug:  "chrono-atlas-p1",
			Price: decimal.NewFromInt(450),
			Images: models.StringList{"a.jpg"},
		},
		{
			ID:               "p2",
			Name:             "Sahara GMT",
			Slug:             "sahara-gmt-p2",
			Price:            decimal.NewFromInt(690),
			HasColorVariants: true,
			Colors: models.ColorVariantList{
				{Name: "Noir", Images: []string{"n.jpg"}, IsSoldOut: true},
				{Name: "Or", Images: []string{"o.jpg"}},
			},
		},
	}}
}

func TestCatalogProducts(t *testing.T) {
	h := NewCatalogHandler(catalogFixture(), renderer.New())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.Products(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Products []struct {
			ID           string `json:"id"`
			DisplayPrice string `json:"display_price"`
			Availability struct {
				Status string `json:"status"`
			} `json:"availability"`
		} `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(resp.Products))
	}
	if resp.Products[1].Availability.Status != "partial" {
		t.Errorf("variant product availability = %q, want partial", resp.Products[1].Availability.Status)
	}
	if resp.Products[0].DisplayPrice == "" {
		t.Error("display_price missing")
	}
}

func TestCatalogProductDetail(t *testing.T) {
	h := NewCatalogHandler(catalogFixture(), renderer.New())

	get := func(id, query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/products/"+id+query, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.ProductDetail(rec, req)
		return rec
	}

	t.Run("selected color drives display images", func(t *testing.T) {
		rec := get("p2", "?color=Or")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var resp struct {
			DisplayImages    []string `json:"display_images"`
			OrderingDisabled bool     `json:"ordering_disabled"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(resp.DisplayImages) != 1 || resp.DisplayImages[0] != "o.jpg" {
			t.Errorf("display_images = %v, want [o.jpg]", resp.DisplayImages)
		}
		if resp.OrderingDisabled {
			t.Error("available color must not disable ordering")
		}
	})

	t.Run("sold-out color disables ordering", func(t *testing.T) {
		rec := get("p2", "?color=Noir")
		var resp struct {
			OrderingDisabled bool `json:"ordering_disabled"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if !resp.OrderingDisabled {
			t.Error("sold-out color must disable ordering")
		}
	})

	t.Run("slug lookup", func(t *testing.T) {
		rec := get("chrono-atlas-p1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := get("missing", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
