// Package availability derives sold-out and stock state from a product and
// its optional color variants. Availability is a two-level override: the
// product-level is_sold_out flag always wins, otherwise variant flags decide.
package availability

import "github.com/mehdiben7/tiwashop/app/models"

// LowStockThreshold is the remaining-stock count below which the catalog
// shows a limited-stock badge.
const LowStockThreshold = 5

// IsCompletelyUnavailable reports whether nothing on the product can be
// ordered: either the product itself is marked sold out, or it has color
// variants and every one of them is sold out. A variant product with an
// empty colors list is not considered completely unavailable.
func IsCompletelyUnavailable(p *models.Product) bool {
	if p.IsSoldOut {
		return true
	}
	if p.HasColorVariants && len(p.Colors) > 0 {
		for _, c := range p.Colors {
			if !c.IsSoldOut {
				return false
			}
		}
		return true
	}
	return false
}

// AvailableColors returns the variants that can currently be ordered.
// The product-level sold-out flag short-circuits to an empty result.
func AvailableColors(p *models.Product) []models.ColorVariant {
	if p.IsSoldOut {
		return nil
	}
	if !p.HasColorVariants {
		return nil
	}
	var out []models.ColorVariant
	for _, c := range p.Colors {
		if !c.IsSoldOut {
			out = append(out, c)
		}
	}
	return out
}

// SoldOutColors returns the variants shown as sold out. When the product
// itself is marked sold out, every variant is treated as sold out for
// display, so this is deliberately not the complement of AvailableColors.
func SoldOutColors(p *models.Product) []models.ColorVariant {
	if !p.HasColorVariants || len(p.Colors) == 0 {
		return nil
	}
	if p.IsSoldOut {
		return p.Colors
	}
	var out []models.ColorVariant
	for _, c := range p.Colors {
		if c.IsSoldOut {
			out = append(out, c)
		}
	}
	return out
}

// TotalStock returns the tracked stock count, or nil when stock is
// untracked. A product-level quantity takes precedence over variant
// quantities. A variant sum of zero is reported as untracked, never as
// zero: an all-nil variant list and a zero count are indistinguishable.
func TotalStock(p *models.Product) *int {
	if p.StockQuantity != nil {
		n := *p.StockQuantity
		return &n
	}
	if p.HasColorVariants {
		total := 0
		for _, c := range p.Colors {
			if c.StockQuantity != nil {
				total += *c.StockQuantity
			}
		}
		if total > 0 {
			return &total
		}
	}
	return nil
}

// IsOrderingDisabled reports whether the order button is blocked for the
// product, optionally narrowed to a selected color. An unknown color name
// does not disable ordering.
func IsOrderingDisabled(p *models.Product, selectedColor string) bool {
	if IsCompletelyUnavailable(p) {
		return true
	}
	if p.HasColorVariants && selectedColor != "" {
		if c := p.FindColor(selectedColor); c != nil {
			return c.IsSoldOut
		}
	}
	return false
}

// ResolveDisplayImages picks the image set to show. Variant products show
// the selected color's images, falling back to the first available color,
// then to the first color in list order when everything is sold out.
// Non-variant products show image_url followed by the images list with
// first-seen duplicates removed.
func ResolveDisplayImages(p *models.Product, selectedColor string) []string {
	if p.HasColorVariants {
		var chosen *models.ColorVariant
		if selectedColor != "" {
			chosen = p.FindColor(selectedColor)
		}
		if chosen == nil {
			for i := range p.Colors {
				if !p.Colors[i].IsSoldOut {
					chosen = &p.Colors[i]
					break
				}
			}
		}
		if chosen == nil && len(p.Colors) > 0 {
			chosen = &p.Colors[0]
		}
		if chosen == nil {
			return nil
		}
		return chosen.Images
	}

	seen := make(map[string]bool)
	var out []string
	if p.ImageURL != "" {
		seen[p.ImageURL] = true
		out = append(out, p.ImageURL)
	}
	for _, img := range p.Images {
		if img == "" || seen[img] {
			continue
		}
		seen[img] = true
		out = append(out, img)
	}
	return out
}

// Summary is the compact availability state shown on catalog cards.
type Summary struct {
	Status     string `json:"status"`
	TotalStock *int   `json:"total_stock"`
	LowStock   bool   `json:"low_stock"`
}

const (
	StatusAvailable = "available"
	StatusPartial   = "partial"
	StatusSoldOut   = "sold_out"
)

// Summarize folds the resolver rules into a single badge state: sold_out
// when nothing is orderable, partial when some but not all variants are
// gone, available otherwise, with a low-stock flag when a tracked count
// drops under LowStockThreshold.
func Summarize(p *models.Product) Summary {
	s := Summary{Status: StatusAvailable, TotalStock: TotalStock(p)}

	if IsCompletelyUnavailable(p) {
		s.Status = StatusSoldOut
		return s
	}
	if len(SoldOutColors(p)) > 0 && len(AvailableColors(p)) > 0 {
		s.Status = StatusPartial
	}
	if s.TotalStock != nil && *s.TotalStock < LowStockThreshold {
		s.LowStock = true
	}
	return s
}
