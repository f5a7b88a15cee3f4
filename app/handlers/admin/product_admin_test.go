package admin

import (
	"testing"

	"github.com/mehdiben7/tiwashop/app/models"
)

func TestValidateImages(t *testing.T) {
	tests := []struct {
		name      string
		form      ProductForm
		wantField string
	}{
		{
			name:      "plain product without any image",
			form:      ProductForm{Name: "Chrono", Price: 100},
			wantField: "images",
		},
		{
			name: "plain product with only image_url is fine",
			form: ProductForm{Name: "Chrono", Price: 100, ImageURL: "a.jpg"},
		},
		{
			name: "plain product with images list is fine",
			form: ProductForm{Name: "Chrono", Price: 100, Images: []string{"a.jpg"}},
		},
		{
			name:      "variant product without variants",
			form:      ProductForm{Name: "Chrono", Price: 100, HasColorVariants: true},
			wantField: "colors",
		},
		{
			name: "variant without a name",
			form: ProductForm{
				Name: "Chrono", Price: 100, HasColorVariants: true,
				Colors: []models.ColorVariant{{Name: "  ", Images: []string{"a.jpg"}}},
			},
			wantField: "colors",
		},
		{
			name: "variant without images",
			form: ProductForm{
				Name: "Chrono", Price: 100, HasColorVariants: true,
				Colors: []models.ColorVariant{{Name: "Noir"}},
			},
			wantField: "colors",
		},
		{
			name: "valid variant product",
			form: ProductForm{
				Name: "Chrono", Price: 100, HasColorVariants: true,
				Colors: []models.ColorVariant{{Name: "Noir", Images: []string{"a.jpg"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateImages(&tt.form)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("validateImages() = %v, want no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("validateImages() = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestProductFormApply(t *testing.T) {
	form := ProductForm{
		Name:             "  Chrono Atlas  ",
		Description:      "steel case",
		Price:            449.5,
		ImageURL:         "main.jpg",
		Images:           []string{"main.jpg", "side.jpg"},
		HasColorVariants: false,
		Colors:           []models.ColorVariant{{Name: "stale"}},
	}

	var product models.Product
	product.Colors = models.ColorVariantList{{Name: "leftover"}}
	form.apply(&product)

	if product.Name != "Chrono Atlas" {
		t.Errorf("Name = %q", product.Name)
	}
	if product.Price.String() != "449.5" {
		t.Errorf("Price = %s", product.Price)
	}
	if product.Colors != nil {
		t.Error("switching variants off must clear the colors column")
	}
}
