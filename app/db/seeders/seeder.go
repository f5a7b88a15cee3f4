package seeders

import (
	"fmt"
	"log"

	"github.com/mehdiben7/tiwashop/app/configs"
	"github.com/mehdiben7/tiwashop/app/db/fakers"
	"github.com/mehdiben7/tiwashop/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the admin account from env plus a small sample catalog with
// a few orders, enough to click through every back-office screen.
func Seed(db *gorm.DB) error {
	env := configs.LoadENV

	if env.AdminEmail == "" || env.AdminPassword == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set to seed the admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(env.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser := &models.User{
		FirstName: "Admin",
		Email:     env.AdminEmail,
		Password:  string(hash),
		Role:      "admin",
	}
	if err := db.FirstOrCreate(adminUser, "email = ?", adminUser.Email).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Printf("✅ Admin account ready: %s", adminUser.Email)

	seq := 1
	for i := 0; i < 8; i++ {
		product := fakers.ProductFaker()
		if err := db.Create(product).Error; err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}

		if i%2 == 0 {
			order := fakers.OrderFaker(product, seq)
			seq++
			if err := db.Create(order).Error; err != nil {
				return fmt.Errorf("failed to seed order: %w", err)
			}
		}
	}

	log.Println("✅ Sample catalog and orders seeded.")
	return nil
}
