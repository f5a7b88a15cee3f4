package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mehdiben7/tiwashop/app/models"
)

// ListOrders returns all orders newest first; ?status= narrows to one
// status from the enum.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		orders []models.Order
		err    error
	)
	if status != "" {
		if !models.ValidOrderStatus(status) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
				"error": "unknown order status",
			})
			return
		}
		orders, err = h.orderRepo.GetByStatus(r.Context(), status)
	} else {
		orders, err = h.orderRepo.GetAllOrders(r.Context())
	}
	if err != nil {
		log.Printf("AdminHandler.ListOrders: failed to list orders: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load orders",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("AdminHandler.GetOrder: failed to load order %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load order",
		})
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
			"message": "order not found",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
	})
}

type orderStatusForm struct {
	Status string `json:"status"`
}

// UpdateOrderStatus sets any status from the enum. Transitions are
// unrestricted: the back office may move an order backwards or cancel it.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form orderStatusForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}
	if !models.ValidOrderStatus(form.Status) {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "unknown order status",
		})
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("AdminHandler.UpdateOrderStatus: failed to load order %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load order",
		})
		return
	}
	if order == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{
			"message": "order not found",
		})
		return
	}

	if err := h.orderRepo.UpdateStatus(r.Context(), id, form.Status); err != nil {
		log.Printf("AdminHandler.UpdateOrderStatus: failed to update order %s to %s: %v", id, form.Status, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to update order status",
		})
		return
	}

	order.Status = form.Status
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
	})
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.orderRepo.Delete(r.Context(), id); err != nil {
		log.Printf("AdminHandler.DeleteOrder: failed to delete order %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to delete order",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "order deleted",
	})
}
