package seeders

import (
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/slug"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a small demo catalog in non-production
// environments so a fresh checkout has something to browse.
func SeedCatalog(db *gorm.DB) error {
	if config.AppEnv() == "production" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []models.Product{
		{
			Name: "Notion Productivity Template Pack", Price: 499, OriginalPrice: 999,
			Category: "templates", Status: models.ProductActive, Stock: 100,
			Tags: models.StringList{"notion", "productivity", "templates"},
		},
		{
			Name: "The Indie Hacker's Handbook", Price: 299, OriginalPrice: 599,
			Category: "e-books", Status: models.ProductActive, Stock: 100,
			Tags: models.StringList{"ebook", "startup", "business"},
		},
		{
			Name: "Full-Stack Web Development Course", Price: 1999, OriginalPrice: 4999,
			Category: "courses", Status: models.ProductActive, Stock: 50,
			Tags: models.StringList{"course", "webdev", "javascript"},
		},
	}

	for i := range demo {
		demo[i].Slug = slug.Make(demo[i].Name)
		if err := db.Create(&demo[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
