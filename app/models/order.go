package models

import "time"

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// orderTransitions is the legal status transition table. Terminal states
// (cancelled, refunded) have no outgoing edges.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {OrderRefunded},
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is the customer-facing purchase record.
type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total           float64     `gorm:"not null" json:"total"`
	Status          string      `gorm:"size:20;not null;default:pending;index" json:"status"`
	PaymentMethod   string      `gorm:"size:50" json:"payment_method"`
	ShippingAddress string      `gorm:"type:text" json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is a line snapshot. Name, price and image are copied from
// the product at order time so later catalog edits do not rewrite
// purchase history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Image     string  `gorm:"size:500" json:"image"`
}

func (OrderItem) TableName() string { return "order_items" }
