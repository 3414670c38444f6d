package repositories

import (
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID uint
	Status string
	Page   int
	Limit  int
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(f OrderFilter) ([]models.Order, database.Pagination, error) {
	q := r.db.Model(&models.Order{}).Preload("Items").Order("created_at DESC")
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var orders []models.Order
	p, err := database.Paginate(q, f.Page, f.Limit, &orders)
	return orders, p, err
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Create persists the order and its items in one transaction.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Count(&n).Error
	return n, err
}

// Recent returns the n most recent orders with items preloaded.
func (r *OrderRepository) Recent(n int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Limit(n).Find(&orders).Error
	return orders, err
}
