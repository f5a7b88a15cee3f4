package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mehdiben7/tiwashop/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetByStatus(ctx context.Context, status string) ([]models.Order, error)
	GetRecent(ctx context.Context, limit int) ([]models.Order, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Order, error)
	SearchByPhoneAndName(ctx context.Context, phone, name string) ([]models.Order, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Delete(ctx context.Context, id string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Product").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetRecent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByTrackingNumber treats the code as opaque and matches it
// case-insensitively by uppercasing the input; codes are stored uppercased.
func (r *gormOrderRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Order, error) {
	var order models.Order
	code := strings.ToUpper(strings.TrimSpace(trackingNumber))

	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("tracking_number = ?", code).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// SearchByPhoneAndName runs a ladder of increasingly loose matches so
// customers can find their orders without knowing the exact formatting
// they typed at checkout: exact phone + exact name, then exact phone +
// partial name, then the phone with the country code stripped or added,
// then a fuzzy match on both fields. The first rung with results wins.
func (r *gormOrderRepository) SearchByPhoneAndName(ctx context.Context, phone, name string) ([]models.Order, error) {
	cleanPhone := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	cleanName := strings.TrimSpace(name)
	namePattern := "%" + strings.ToLower(cleanName) + "%"

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Preload("Product").
			Order("created_at DESC")
	}

	var orders []models.Order
	err := base().
		Where("phone = ? AND customer_name = ?", cleanPhone, cleanName).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}

	err = base().
		Where("phone = ? AND LOWER(customer_name) LIKE ?", cleanPhone, namePattern).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}

	// Customers write numbers with or without the +212 country code.
	altPhone := "+212" + cleanPhone
	if strings.HasPrefix(cleanPhone, "+212") {
		altPhone = strings.TrimPrefix(cleanPhone, "+212")
	}
	err = base().
		Where("phone = ? AND LOWER(customer_name) LIKE ?", altPhone, namePattern).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}

	err = base().
		Where("(phone LIKE ? OR phone LIKE ?) AND LOWER(customer_name) LIKE ?",
			"%"+cleanPhone+"%", "%"+strings.TrimPrefix(cleanPhone, "+212")+"%", namePattern).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", since).
		Count(&total).Error
	return total, err
}

func (r *gormOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *gormOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{}).Error
}
