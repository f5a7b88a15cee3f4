package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/mehdiben7/tiwashop/app/models"
)

var orderStatuses = []string{
	models.OrderStatusPending,
	models.OrderStatusConfirmed,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

// OrderFaker builds a sample order against an existing product, picking an
// available color when the product has variants.
func OrderFaker(product *models.Product, seq int) *models.Order {
	order := &models.Order{
		TrackingNumber: fmt.Sprintf("TW%s%03d", time.Now().Format("20060102"), seq),
		CustomerName:   faker.Name(),
		Phone:          faker.Phonenumber(),
		Address:        fmt.Sprintf("%d Rue %s, Casablanca", 1+rand.Intn(99), faker.LastName()),
		ProductID:      product.ID,
		Status:         orderStatuses[rand.Intn(len(orderStatuses))],
	}

	if product.HasColorVariants {
		for _, c := range product.Colors {
			if !c.IsSoldOut {
				order.SelectedColor = c.Name
				break
			}
		}
	}

	return order
}
