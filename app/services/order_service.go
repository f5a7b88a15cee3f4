package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/utils/availability"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is sold out")
	ErrColorUnavailable   = errors.New("selected color is sold out")
)

const trackingPrefix = "TW"

type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepositoryImpl
}

func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepositoryImpl) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

type PlaceOrderInput struct {
	CustomerName  string
	Phone         string
	Address       string
	ProductID     string
	SelectedColor string
}

// PlaceOrder re-checks availability server-side before inserting: the
// product may have sold out between page load and submit.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", input.ProductID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if availability.IsCompletelyUnavailable(product) {
		return nil, ErrProductUnavailable
	}
	if product.HasColorVariants && input.SelectedColor != "" {
		if c := product.FindColor(input.SelectedColor); c != nil && c.IsSoldOut {
			return nil, ErrColorUnavailable
		}
	}

	order := &models.Order{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         strings.ReplaceAll(strings.TrimSpace(input.Phone), " ", ""),
		Address:       strings.TrimSpace(input.Address),
		ProductID:     product.ID,
		SelectedColor: input.SelectedColor,
		Status:        models.OrderStatusPending,
	}

	if err := s.createWithTrackingNumber(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("✅ Order %s placed for product %s (tracking %s)", order.ID, product.ID, order.TrackingNumber)
	return order, nil
}

// createWithTrackingNumber assigns the next TW<date><seq> code and inserts
// the order. Concurrent checkouts can race for the same sequence number, so
// a unique-key collision bumps the sequence and retries.
func (s *OrderService) createWithTrackingNumber(ctx context.Context, order *models.Order) error {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.orderRepo.CountCreatedSince(ctx, dayStart)
	if err != nil {
		return fmt.Errorf("failed to count today's orders: %w", err)
	}

	seq := count + 1
	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		order.TrackingNumber = fmt.Sprintf("%s%s%03d", trackingPrefix, now.Format("20060102"), seq)
		err = s.orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}
		if !isDuplicateKeyError(err) {
			return fmt.Errorf("failed to create order: %w", err)
		}
		seq++
	}
	return fmt.Errorf("failed to allocate a tracking number after %d attempts: %w", maxAttempts, err)
}

func isDuplicateKeyError(err error) bool {
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "duplicated key")
}
