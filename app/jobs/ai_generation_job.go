package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

// AIGenerationJob fills in a product's description and tags in the
// background, for bulk catalog imports where the admin does not want to
// wait on the generation endpoint.
type AIGenerationJob struct {
	ProductID uint `json:"product_id"`
}

func (j AIGenerationJob) Handle() error {
	var product models.Product
	if err := database.DB.First(&product, j.ProductID).Error; err != nil {
		return fmt.Errorf("jobs: load product %d: %w", j.ProductID, err)
	}

	ai, err := gateway.NewAIClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if product.Description == "" {
		desc, err := ai.GenerateDescription(ctx, product.Name, product.Category)
		if err != nil {
			return fmt.Errorf("jobs: generate description: %w", err)
		}
		product.Description = desc
	}

	if len(product.Tags) == 0 {
		tags, err := ai.GenerateTags(ctx, product.Name, product.Category)
		if err != nil {
			return fmt.Errorf("jobs: generate tags: %w", err)
		}
		product.Tags = tags
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return fmt.Errorf("jobs: save product %d: %w", j.ProductID, err)
	}

	logger.Info("jobs: ai content generated", "product_id", product.ID)
	return nil
}
