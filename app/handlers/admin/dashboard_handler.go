package admin

import (
	"log"
	"net/http"

	"github.com/mehdiben7/tiwashop/app/models"
)

// Dashboard aggregates the numbers shown on the back-office landing page:
// product count, order counts per status, and the most recent orders.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productCount, err := h.productRepo.Count(ctx)
	if err != nil {
		log.Printf("AdminHandler.Dashboard: failed to count products: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load dashboard",
		})
		return
	}

	statusCounts, err := h.orderRepo.CountByStatus(ctx)
	if err != nil {
		log.Printf("AdminHandler.Dashboard: failed to count orders: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load dashboard",
		})
		return
	}

	recentOrders, err := h.orderRepo.GetRecent(ctx, 5)
	if err != nil {
		log.Printf("AdminHandler.Dashboard: failed to load recent orders: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load dashboard",
		})
		return
	}

	var totalOrders int64
	for _, n := range statusCounts {
		totalOrders += n
	}

	// Every status appears in the response even when its count is zero.
	for _, status := range []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if _, ok := statusCounts[status]; !ok {
			statusCounts[status] = 0
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_count":    productCount,
		"order_count":      totalOrders,
		"orders_by_status": statusCounts,
		"recent_orders":    recentOrders,
	})
}
