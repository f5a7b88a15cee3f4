package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderService *services.OrderService
	orderRepo    repositories.OrderRepository
	render       *render.Render
	validator    *validator.Validate
}

func NewOrderHandler(orderService *services.OrderService, orderRepo repositories.OrderRepository, r *render.Render, v *validator.Validate) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		orderRepo:    orderRepo,
		render:       r,
		validator:    v,
	}
}

type OrderForm struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=255"`
	Phone         string `json:"phone" validate:"required,min=6,max=50"`
	Address       string `json:"address" validate:"required,min=5"`
	ProductID     string `json:"product_id" validate:"required"`
	SelectedColor string `json:"selected_color"`
}

// Create places an order and returns the generated tracking number.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(validationErrors),
		})
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), services.PlaceOrderInput{
		CustomerName:  form.CustomerName,
		Phone:         form.Phone,
		Address:       form.Address,
		ProductID:     form.ProductID,
		SelectedColor: form.SelectedColor,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
				"message": "product not found",
			})
		case errors.Is(err, services.ErrProductUnavailable), errors.Is(err, services.ErrColorUnavailable):
			_ = h.render.JSON(w, http.StatusConflict, map[string]string{
				"message": err.Error(),
			})
		default:
			log.Printf("OrderHandler.Create: failed to place order: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to place order",
			})
		}
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"tracking_number": order.TrackingNumber,
		"order":           order,
	})
}

// Track looks orders up either by tracking number or by phone + customer
// name. An empty result is a distinguished not-found message, never a 500.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	trackingNumber := r.URL.Query().Get("tracking")
	phone := r.URL.Query().Get("phone")
	name := r.URL.Query().Get("name")

	switch {
	case trackingNumber != "":
		order, err := h.orderRepo.FindByTrackingNumber(r.Context(), trackingNumber)
		if err != nil {
			log.Printf("OrderHandler.Track: tracking lookup failed: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to look up order",
			})
			return
		}
		if order == nil {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
				"message": "no order found for this tracking number",
			})
			return
		}
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"orders": []interface{}{order},
		})

	case phone != "" && name != "":
		orders, err := h.orderRepo.SearchByPhoneAndName(r.Context(), phone, name)
		if err != nil {
			log.Printf("OrderHandler.Track: phone lookup failed: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to look up orders",
			})
			return
		}
		if len(orders) == 0 {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
				"message": "no orders found for this phone number and name",
			})
			return
		}
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"orders": orders,
		})

	default:
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "provide either tracking, or phone and name",
		})
	}
}
