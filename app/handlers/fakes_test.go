package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/mehdiben7/tiwashop/app/models"
)

type fakeProductRepo struct {
	products []models.Product
	err      error
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *models.Product) error { return f.err }
func (f *fakeProductRepo) Update(ctx context.Context, p *models.Product) error { return f.err }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error         { return f.err }
func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), f.err
}

type fakeOrderRepo struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrderRepo) GetByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, f.err
}

func (f *fakeOrderRepo) GetRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if len(f.orders) > limit {
		return f.orders[:limit], f.err
	}
	return f.orders, f.err
}

func (f *fakeOrderRepo) FindByTrackingNumber(ctx context.Context, tn string) (*models.Order, error) {
	code := strings.ToUpper(strings.TrimSpace(tn))
	for i := range f.orders {
		if f.orders[i].TrackingNumber == code {
			return &f.orders[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeOrderRepo) SearchByPhoneAndName(ctx context.Context, phone, name string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Phone == phone && strings.EqualFold(o.CustomerName, name) {
			out = append(out, o)
		}
	}
	return out, f.err
}

func (f *fakeOrderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return int64(len(f.orders)), f.err
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, o := range f.orders {
		counts[o.Status]++
	}
	return counts, f.err
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
		}
	}
	return f.err
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error { return f.err }
