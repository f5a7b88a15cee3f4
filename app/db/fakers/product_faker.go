package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/shopspring/decimal"
)

var watchNames = []string{
	"Chrono Atlas",
	"Médina Classique",
	"Sahara GMT",
	"Majorelle Automatique",
	"Côte Océane",
	"Kasbah Heritage",
}

var variantPalette = []models.ColorVariant{
	{Name: "Noir", Hex: "#1a1a1a"},
	{Name: "Or", Hex: "#d4af37"},
	{Name: "Argent", Hex: "#c0c0c0"},
	{Name: "Bleu Nuit", Hex: "#1f2a44"},
}

func intp(n int) *int { return &n }

// ProductFaker builds a sample watch. Roughly half the products get color
// variants so the seeded catalog exercises both availability models.
func ProductFaker() *models.Product {
	name := watchNames[rand.Intn(len(watchNames))]
	productID := uuid.New().String()

	price := decimal.NewFromInt(int64(300 + rand.Intn(20)*50))

	product := &models.Product{
		ID:          productID,
		Name:        name,
		Description: faker.Paragraph(),
		Price:       price,
		ImageURL:    "https://placehold.co/600x600?text=" + productID[:6],
	}

	if rand.Intn(2) == 0 {
		product.HasColorVariants = true
		n := 2 + rand.Intn(len(variantPalette)-1)
		for _, v := range variantPalette[:n] {
			v.Images = []string{"https://placehold.co/600x600?text=" + v.Name}
			v.IsSoldOut = rand.Intn(4) == 0
			if rand.Intn(2) == 0 {
				v.StockQuantity = intp(rand.Intn(12))
			}
			product.Colors = append(product.Colors, v)
		}
	} else {
		product.Images = models.StringList{
			product.ImageURL,
			"https://placehold.co/600x600?text=detail",
		}
		if rand.Intn(2) == 0 {
			product.StockQuantity = intp(rand.Intn(15))
		}
	}

	return product
}
