package services

import (
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/cache"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/slug"
)

const productCacheTTL = 5 * time.Minute

// ProductInput carries create/update fields for a product.
type ProductInput struct {
	Name          string     `json:"name" validate:"required,max=255"`
	Description   string     `json:"description" validate:"nullable"`
	Price         float64    `json:"price" validate:"required,gte=0"`
	OriginalPrice float64    `json:"original_price" validate:"nullable,gte=0"`
	Category      string     `json:"category" validate:"nullable,max=100"`
	Status        string     `json:"status" validate:"nullable,in=active,inactive,out_of_stock"`
	Stock         int        `json:"stock" validate:"nullable,gte=0"`
	Images        []string   `json:"images" validate:"nullable"`
	Tags          []string   `json:"tags" validate:"nullable"`
	PromoDiscount int        `json:"promo_discount" validate:"nullable,gte=0,lte=100"`
	PromoEndsAt   *time.Time `json:"promo_ends_at" validate:"nullable"`
	PromoHeader   string     `json:"promo_header" validate:"nullable,max=255"`
	PromoHeaderBg string     `json:"promo_header_bg" validate:"nullable,max=20"`
	PromoHeaderFg string     `json:"promo_header_fg" validate:"nullable,max=20"`
}

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns a filtered product page, cache-aside for the unfiltered
// first page which the storefront home hits constantly.
func (s *ProductService) List(f repositories.ProductFilter) ([]models.Product, database.Pagination, error) {
	type cached struct {
		Products   []models.Product    `json:"products"`
		Pagination database.Pagination `json:"pagination"`
	}

	cacheable := f.Category == "" && f.Status == "" && f.Search == "" && f.Page <= 1
	key := "products:list:first"

	if cacheable {
		var c cached
		if cache.Get(key, &c) {
			return c.Products, c.Pagination, nil
		}
	}

	products, p, err := s.products.List(f)
	if err != nil {
		return nil, p, err
	}

	if cacheable {
		cache.Set(key, cached{Products: products, Pagination: p}, productCacheTTL) //nolint:errcheck
	}
	return products, p, nil
}

// FindBySlug returns a product for the storefront detail page,
// cache-aside by slug.
func (s *ProductService) FindBySlug(sl string) (*models.Product, error) {
	key := "products:slug:" + sl

	var product models.Product
	if cache.Get(key, &product) {
		return &product, nil
	}

	found, err := s.products.FindBySlug(sl)
	if err != nil {
		return nil, err
	}

	cache.Set(key, found, productCacheTTL) //nolint:errcheck
	return found, nil
}

func (s *ProductService) Find(id uint) (*models.Product, error) {
	return s.products.FindByID(id)
}

// Create inserts a product with a slug derived from its name. A slug
// collision gets a timestamp suffix instead of failing.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	sl, err := s.uniqueSlug(in.Name, 0)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          in.Name,
		Slug:          sl,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		Status:        in.Status,
		Stock:         in.Stock,
		Images:        in.Images,
		Tags:          in.Tags,
		PromoDiscount: in.PromoDiscount,
		PromoEndsAt:   in.PromoEndsAt,
		PromoHeader:   in.PromoHeader,
		PromoHeaderBg: in.PromoHeaderBg,
		PromoHeaderFg: in.PromoHeaderFg,
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	normalizeStock(product)

	if err := s.products.Create(product); err != nil {
		return nil, fmt.Errorf("products: create: %w", err)
	}

	s.invalidate(product.Slug)
	logger.Info("products: created", "product_id", product.ID, "slug", product.Slug)
	return product, nil
}

// Update applies input to an existing product. A renamed product gets a
// fresh slug, timestamp-suffixed on collision.
func (s *ProductService) Update(id uint, in ProductInput) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	oldSlug := product.Slug

	if in.Name != product.Name {
		sl, err := s.uniqueSlug(in.Name, id)
		if err != nil {
			return nil, err
		}
		product.Slug = sl
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.OriginalPrice = in.OriginalPrice
	product.Category = in.Category
	if in.Status != "" {
		product.Status = in.Status
	}
	product.Stock = in.Stock
	product.Images = in.Images
	product.Tags = in.Tags
	product.PromoDiscount = in.PromoDiscount
	product.PromoEndsAt = in.PromoEndsAt
	product.PromoHeader = in.PromoHeader
	product.PromoHeaderBg = in.PromoHeaderBg
	product.PromoHeaderFg = in.PromoHeaderFg
	normalizeStock(product)

	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("products: update: %w", err)
	}

	s.invalidate(oldSlug)
	s.invalidate(product.Slug)
	return product, nil
}

func (s *ProductService) Delete(id uint) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(id); err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	s.invalidate(product.Slug)
	return nil
}

// AttachImage appends an image URL to the product's media list.
func (s *ProductService) AttachImage(id uint, url string) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, url)
	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("products: attach image: %w", err)
	}
	s.invalidate(product.Slug)
	return product, nil
}

// uniqueSlug derives a slug from name, suffixing a timestamp when the
// plain slug is already taken.
func (s *ProductService) uniqueSlug(name string, excludeID uint) (string, error) {
	sl := slug.Make(name)
	taken, err := s.products.SlugExists(sl, excludeID)
	if err != nil {
		return "", fmt.Errorf("products: slug check: %w", err)
	}
	if taken {
		sl = slug.WithTimestamp(sl)
	}
	return sl, nil
}

// normalizeStock flips an active product to out_of_stock when stock
// hits zero, and back when restocked.
func normalizeStock(p *models.Product) {
	switch {
	case p.Stock <= 0 && p.Status == models.ProductActive:
		p.Status = models.ProductOutOfStock
	case p.Stock > 0 && p.Status == models.ProductOutOfStock:
		p.Status = models.ProductActive
	}
}

func (s *ProductService) invalidate(sl string) {
	cache.Del("products:list:first", "products:slug:"+sl) //nolint:errcheck
}
