package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID             string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	TrackingNumber string `gorm:"size:50;not null;uniqueIndex" json:"tracking_number"`
	CustomerName   string `gorm:"size:255;not null" json:"customer_name"`
	Phone          string `gorm:"size:50;not null;index" json:"phone"`
	Address        string `gorm:"type:text" json:"address"`

	// Orders reference the live product row, not a snapshot. Edits to the
	// product after the order is placed show through when the order is viewed.
	ProductID string  `gorm:"size:36;not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`

	SelectedColor string `gorm:"size:100" json:"selected_color,omitempty"`
	Status        string `gorm:"size:20;not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return
}
