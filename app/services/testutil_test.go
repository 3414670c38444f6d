package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
)

// newTestDB opens a fresh in-memory sqlite database with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Blog{},
		&models.Order{},
		&models.OrderItem{},
		&models.Sale{},
		&queue.FailedJobRecord{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	if p.Status == "" {
		p.Status = models.ProductActive
	}
	if p.Slug == "" {
		p.Slug = p.Name
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(repositories.NewProductRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(repositories.NewOrderRepository(db), repositories.NewProductRepository(db))
}
