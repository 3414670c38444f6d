package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
)

func TestCreateProductDerivesSlug(t *testing.T) {
	svc := newProductService(newTestDB(t))

	product, err := svc.Create(ProductInput{Name: "My Great E-Book", Price: 100, Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, "my-great-e-book", product.Slug)
	assert.Equal(t, models.ProductActive, product.Status)
}

func TestCreateProductSlugCollisionGetsTimestampSuffix(t *testing.T) {
	svc := newProductService(newTestDB(t))

	first, err := svc.Create(ProductInput{Name: "Duplicate Name", Price: 10, Stock: 1})
	require.NoError(t, err)

	second, err := svc.Create(ProductInput{Name: "Duplicate Name", Price: 10, Stock: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Regexp(t, regexp.MustCompile(`^duplicate-name-\d+$`), second.Slug)
}

func TestZeroStockFlipsToOutOfStock(t *testing.T) {
	svc := newProductService(newTestDB(t))

	product, err := svc.Create(ProductInput{Name: "Scarce", Price: 10, Stock: 0})
	require.NoError(t, err)
	assert.Equal(t, models.ProductOutOfStock, product.Status)
}

func TestRestockFlipsBackToActive(t *testing.T) {
	svc := newProductService(newTestDB(t))

	product, err := svc.Create(ProductInput{Name: "Scarce", Price: 10, Stock: 0})
	require.NoError(t, err)
	require.Equal(t, models.ProductOutOfStock, product.Status)

	updated, err := svc.Update(product.ID, ProductInput{Name: "Scarce", Price: 10, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, models.ProductActive, updated.Status)
}

func TestEffectivePriceAppliesActivePromo(t *testing.T) {
	ends := time.Now().Add(time.Hour)
	p := models.Product{Price: 200, PromoDiscount: 25, PromoEndsAt: &ends}
	assert.Equal(t, 150.0, p.EffectivePrice())
}

func TestEffectivePriceIgnoresExpiredPromo(t *testing.T) {
	ended := time.Now().Add(-time.Hour)
	p := models.Product{Price: 200, PromoDiscount: 25, PromoEndsAt: &ended}
	assert.Equal(t, 200.0, p.EffectivePrice())
}

func TestFindBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	created, err := svc.Create(ProductInput{Name: "Findable", Price: 50, Stock: 1})
	require.NoError(t, err)

	found, err := svc.FindBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestAttachImage(t *testing.T) {
	svc := newProductService(newTestDB(t))

	product, err := svc.Create(ProductInput{Name: "Pictured", Price: 5, Stock: 1})
	require.NoError(t, err)

	updated, err := svc.AttachImage(product.ID, "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"https://cdn.example.com/a.png"}, updated.Images)
}
