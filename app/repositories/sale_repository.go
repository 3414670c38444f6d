package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
)

// SaleFilter narrows sale listings.
type SaleFilter struct {
	PaymentStatus string
	Page          int
	Limit         int
}

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) List(f SaleFilter) ([]models.Sale, database.Pagination, error) {
	q := r.db.Model(&models.Sale{}).Order("created_at DESC")
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}

	var sales []models.Sale
	p, err := database.Paginate(q, f.Page, f.Limit, &sales)
	return sales, p, err
}

func (r *SaleRepository) FindByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepository) FindByGatewayOrderID(gatewayOrderID string) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.Where("gateway_order_id = ?", gatewayOrderID).First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

func (r *SaleRepository) Update(sale *models.Sale) error {
	return r.db.Save(sale).Error
}

// Revenue sums the amounts of all successful sales.
func (r *SaleRepository) Revenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Sale{}).
		Where("payment_status = ?", models.PaymentSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// CountPendingOlderThan counts sales still pending after the cutoff.
// Used by the orphaned-sale sweep, which observes but never mutates.
func (r *SaleRepository) CountPendingOlderThan(cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Sale{}).
		Where("payment_status = ? AND created_at < ?", models.PaymentPending, cutoff).
		Count(&n).Error
	return n, err
}
