package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/services"
	"github.com/shopspring/decimal"
)

type ProductForm struct {
	Name             string                `json:"name" validate:"required,min=2,max=255"`
	Description      string                `json:"description"`
	Price            float64               `json:"price" validate:"required,gt=0"`
	ImageURL         string                `json:"image_url"`
	Images           []string              `json:"images"`
	HasColorVariants bool                  `json:"has_color_variants"`
	Colors           []models.ColorVariant `json:"colors"`
	IsSoldOut        bool                  `json:"is_sold_out"`
	StockQuantity    *int                  `json:"stock_quantity"`
}

// validateImages enforces the form rules the admin UI relies on: a variant
// product needs at least one named variant with at least one image, a plain
// product needs at least one image overall.
func validateImages(form *ProductForm) map[string]string {
	errs := make(map[string]string)

	if form.HasColorVariants {
		if len(form.Colors) == 0 {
			errs["colors"] = "add at least one color variant."
			return errs
		}
		for i, c := range form.Colors {
			if strings.TrimSpace(c.Name) == "" {
				errs["colors"] = fmt.Sprintf("color %d needs a name.", i+1)
				return errs
			}
			if len(c.Images) == 0 {
				errs["colors"] = fmt.Sprintf("color %q needs at least one image.", c.Name)
				return errs
			}
		}
		return errs
	}

	if form.ImageURL == "" && len(form.Images) == 0 {
		errs["images"] = "add at least one image."
	}
	return errs
}

func (form *ProductForm) apply(product *models.Product) {
	product.Name = strings.TrimSpace(form.Name)
	product.Description = form.Description
	product.Price = decimal.NewFromFloat(form.Price)
	product.ImageURL = form.ImageURL
	product.Images = form.Images
	product.HasColorVariants = form.HasColorVariants
	product.IsSoldOut = form.IsSoldOut
	product.StockQuantity = form.StockQuantity

	if form.HasColorVariants {
		product.Colors = form.Colors
	} else {
		product.Colors = nil
	}
}

func (h *AdminHandler) decodeProductForm(w http.ResponseWriter, r *http.Request) (*ProductForm, bool) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return nil, false
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(validationErrors),
		})
		return nil, false
	}

	if errs := validateImages(&form); len(errs) > 0 {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": errs,
		})
		return nil, false
	}

	return &form, true
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("AdminHandler.ListProducts: failed to list products: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load products",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeProductForm(w, r)
	if !ok {
		return
	}

	var product models.Product
	form.apply(&product)

	if err := h.productRepo.Create(r.Context(), &product); err != nil {
		log.Printf("AdminHandler.CreateProduct: failed to create product: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to create product",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"product": product,
	})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("AdminHandler.UpdateProduct: failed to load product %s: %v", id, err)
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

	form, ok := h.decodeProductForm(w, r)
	if !ok {
		return
	}

	form.apply(product)

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("AdminHandler.UpdateProduct: failed to update product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to update product",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("AdminHandler.DeleteProduct: failed to delete product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to delete product",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "product deleted",
	})
}

// UploadImages accepts a multipart batch and uploads each file to object
// storage, returning the public URLs in order. Uploads are sequential and
// unguarded: a failure partway through leaves the earlier objects in the
// bucket and the whole form must be retried.
func (h *AdminHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid multipart form",
		})
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "no images provided",
		})
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			log.Printf("AdminHandler.UploadImages: failed to open %s: %v", header.Filename, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to read uploaded file",
			})
			return
		}

		url, err := h.storage.UploadImage(r.Context(), file, header.Header.Get("Content-Type"), header.Size)
		file.Close()
		if err != nil {
			if errors.Is(err, services.ErrInvalidImageType) || errors.Is(err, services.ErrImageTooLarge) {
				_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{
					"error": err.Error(),
				})
				return
			}
			log.Printf("AdminHandler.UploadImages: upload of %s failed: %v", header.Filename, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
				"error": "image upload failed",
			})
			return
		}
		urls = append(urls, url)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"urls": urls,
	})
}
