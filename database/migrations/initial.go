package migrations

import (
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/migration"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
)

func init() {
	migration.Register("20260201000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260201000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260201000002_create_blogs_table", &CreateBlogsTable{})
	migration.Register("20260201000003_create_orders_tables", &CreateOrdersTables{})
	migration.Register("20260201000004_create_sales_table", &CreateSalesTable{})
	migration.Register("20260201000005_create_failed_jobs_table", &CreateFailedJobsTable{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

type CreateBlogsTable struct{}

func (m *CreateBlogsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Blog{})
}

func (m *CreateBlogsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("blogs")
}

type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items", "orders")
}

// Sales carry the unique gateway_order_id index: exactly one audit
// record per gateway order.
type CreateSalesTable struct{}

func (m *CreateSalesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Sale{})
}

func (m *CreateSalesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("sales")
}

type CreateFailedJobsTable struct{}

func (m *CreateFailedJobsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&queue.FailedJobRecord{})
}

func (m *CreateFailedJobsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("failed_jobs")
}
