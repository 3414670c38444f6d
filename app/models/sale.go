package models

import "time"

// Sale payment statuses.
const (
	PaymentPending   = "pending"
	PaymentSuccess   = "success"
	PaymentFailed    = "failed"
	PaymentCancelled = "cancelled"
)

// Sale order statuses. These mirror the fulfilment side of a payment
// attempt and are distinct from Order.Status.
const (
	SaleCreated   = "created"
	SaleCompleted = "completed"
)

// Sale is an audit record of one payment attempt, written at payment
// initiation. It is intentionally independent from Order: a Sale exists
// for every gateway order created, whether or not checkout finishes.
type Sale struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Product snapshot at initiation time.
	ProductID   uint    `gorm:"not null;index" json:"product_id"`
	ProductName string  `gorm:"size:255;not null" json:"product_name"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Currency    string  `gorm:"size:10;not null" json:"currency"`

	// Customer contact as supplied at initiation.
	CustomerName  string `gorm:"size:255" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;index" json:"customer_email"`
	CustomerPhone string `gorm:"size:50" json:"customer_phone"`

	// Gateway identifiers. Exactly one Sale per gateway order id.
	GatewayOrderID string `gorm:"size:100;uniqueIndex;not null" json:"gateway_order_id"`
	PaymentID      string `gorm:"size:100" json:"payment_id"`
	ReceiptID      string `gorm:"size:100" json:"receipt_id"`

	PaymentStatus      string     `gorm:"size:20;not null;default:pending;index" json:"payment_status"`
	OrderStatus        string     `gorm:"size:20;not null;default:created" json:"order_status"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sale) TableName() string { return "sales" }
