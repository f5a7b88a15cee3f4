package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ColorVariant is embedded in a product's colors JSON column. It is owned
// by its product and never persisted as a row of its own.
type ColorVariant struct {
	Name          string   `json:"name"`
	Hex           string   `json:"hex"`
	Images        []string `json:"images"`
	IsSoldOut     bool     `json:"is_sold_out,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
}

// StringList stores an ordered list of image URLs as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// ColorVariantList stores a product's color variants as a JSON column.
type ColorVariantList []ColorVariant

func (l ColorVariantList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ColorVariantList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ColorVariantList", value)
	}
}

type Product struct {
	ID               string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name             string           `gorm:"size:255;not null" json:"name"`
	Slug             string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description      string           `gorm:"type:text" json:"description"`
	Price            decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	ImageURL         string           `gorm:"size:512" json:"image_url"`
	Images           StringList       `gorm:"type:json" json:"images"`
	HasColorVariants bool             `gorm:"default:false" json:"has_color_variants"`
	Colors           ColorVariantList `gorm:"type:json" json:"colors"`
	IsSoldOut        bool             `gorm:"default:false" json:"is_sold_out"`
	StockQuantity    *int             `json:"stock_quantity"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name) + "-" + p.ID[:6]
	}
	return
}

// FindColor looks a variant up by its display name. Names are relied upon
// to be unique within a product's variant list.
func (p *Product) FindColor(name string) *ColorVariant {
	for i := range p.Colors {
		if p.Colors[i].Name == name {
			return &p.Colors[i]
		}
	}
	return nil
}
