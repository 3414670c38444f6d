package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/storage"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/workerpool"
)

// AIGateway is the generative-API surface the service needs. Satisfied
// by *gateway.AIClient; tests substitute a fake.
type AIGateway interface {
	GenerateDescription(ctx context.Context, name, category string) (string, error)
	GenerateTags(ctx context.Context, name, category string) ([]string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// CopyInput asks for generated storefront copy.
type CopyInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category" validate:"nullable,max=100"`
}

// CopyResult is the generated description and tags.
type CopyResult struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ImageInput asks for a generated product image, optionally attached to
// an existing product.
type ImageInput struct {
	Prompt    string `json:"prompt" validate:"required"`
	ProductID uint   `json:"product_id" validate:"nullable,gt=0"`
}

// ImageResult carries the stored image URL.
type ImageResult struct {
	URL string `json:"url"`
}

// AIService routes generation requests through a bounded worker pool so
// a burst of admin requests cannot open unlimited upstream connections.
type AIService struct {
	ai       AIGateway
	pool     *workerpool.Pool
	products *ProductService
}

func NewAIService(ai AIGateway, pool *workerpool.Pool, products *ProductService) *AIService {
	return &AIService{ai: ai, pool: pool, products: products}
}

// GenerateCopy produces a description and tags for a product name.
func (s *AIService) GenerateCopy(ctx context.Context, in CopyInput) (*CopyResult, error) {
	if s.ai == nil {
		return nil, gateway.ErrMissingAIKey
	}

	var result CopyResult
	err := s.pool.Run(ctx, func() error {
		desc, err := s.ai.GenerateDescription(ctx, in.Name, in.Category)
		if err != nil {
			return err
		}
		tags, err := s.ai.GenerateTags(ctx, in.Name, in.Category)
		if err != nil {
			return err
		}
		result.Description, result.Tags = desc, tags
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai: generate copy: %w", err)
	}
	return &result, nil
}

// GenerateImage renders an image, stores it on the configured disk and,
// when a product id is given, attaches the URL to that product.
func (s *AIService) GenerateImage(ctx context.Context, in ImageInput) (*ImageResult, error) {
	if s.ai == nil {
		return nil, gateway.ErrMissingAIKey
	}

	var img []byte
	err := s.pool.Run(ctx, func() error {
		var genErr error
		img, genErr = s.ai.GenerateImage(ctx, in.Prompt)
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("ai: generate image: %w", err)
	}

	disk := storage.Default()
	if disk == nil {
		return nil, fmt.Errorf("ai: no storage disk configured")
	}

	path := fmt.Sprintf("products/ai/%d.png", time.Now().UnixNano())
	if err := disk.Put(ctx, path, bytes.NewReader(img)); err != nil {
		return nil, fmt.Errorf("ai: store image: %w", err)
	}
	url := disk.URL(path)

	if in.ProductID > 0 {
		if _, err := s.products.AttachImage(in.ProductID, url); err != nil {
			return nil, err
		}
	}

	logger.Info("ai: image generated", "path", path, "product_id", in.ProductID)
	return &ImageResult{URL: url}, nil
}
