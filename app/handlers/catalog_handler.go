package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/utils/availability"
	"github.com/unrolled/render"
)

type CatalogHandler struct {
	repo   repositories.ProductRepositoryImpl
	render *render.Render
}

func NewCatalogHandler(repo repositories.ProductRepositoryImpl, r *render.Render) *CatalogHandler {
	return &CatalogHandler{repo: repo, render: r}
}

type ProductSummary struct {
	models.Product
	DisplayPrice string               `json:"display_price"`
	Availability availability.Summary `json:"availability"`
}

type ProductDetailResponse struct {
	models.Product
	DisplayPrice     string                `json:"display_price"`
	Availability     availability.Summary  `json:"availability"`
	AvailableColors  []models.ColorVariant `json:"available_colors"`
	SoldOutColors    []models.ColorVariant `json:"sold_out_colors"`
	DisplayImages    []string              `json:"display_images"`
	OrderingDisabled bool                  `json:"ordering_disabled"`
}

// Products serves the public catalog, newest first, with the availability
// badge computed per product. ?q= switches to a name/description search.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		products []models.Product
		err      error
	)
	if query != "" {
		products, err = h.repo.SearchProducts(r.Context(), query)
	} else {
		products, err = h.repo.GetProducts(r.Context())
	}
	if err != nil {
		log.Printf("CatalogHandler.Products: failed to list products: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load products",
		})
		return
	}

	summaries := make([]ProductSummary, 0, len(products))
	for i := range products {
		summaries = append(summaries, ProductSummary{
			Product:      products[i],
			DisplayPrice: helpers.FormatMAD(products[i].Price),
			Availability: availability.Summarize(&products[i]),
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": summaries,
	})
}

// ProductDetail resolves one product with the full availability breakdown.
// ?color= narrows the display images to that variant.
func (h *CatalogHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err == nil && product == nil {
		// The SPA links both by id and by slug.
		product, err = h.repo.GetBySlug(r.Context(), id)
	}
	if err != nil {
		log.Printf("CatalogHandler.ProductDetail: failed to load product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load product",
		})
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
			"message": "product not found",
		})
		return
	}

	selectedColor := r.URL.Query().Get("color")

	_ = h.render.JSON(w, http.StatusOK, ProductDetailResponse{
		Product:          *product,
		DisplayPrice:     helpers.FormatMAD(product.Price),
		Availability:     availability.Summarize(product),
		AvailableColors:  availability.AvailableColors(product),
		SoldOutColors:    availability.SoldOutColors(product),
		DisplayImages:    availability.ResolveDisplayImages(product, selectedColor),
		OrderingDisabled: availability.IsOrderingDisabled(product, selectedColor),
	})
}
