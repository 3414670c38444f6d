package models

import (
	"time"

	"gorm.io/gorm"
)

// Product statuses.
const (
	ProductActive     = "active"
	ProductInactive   = "inactive"
	ProductOutOfStock = "out_of_stock"
)

// Product is a digital item for sale: e-book, template or course.
type Product struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Slug          string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description   string     `gorm:"type:text" json:"description"`
	Price         float64    `gorm:"not null" json:"price"`
	OriginalPrice float64    `json:"original_price"`
	Category      string     `gorm:"size:100;index" json:"category"`
	Status        string     `gorm:"size:20;not null;default:active;index" json:"status"`
	Stock         int        `gorm:"not null;default:0" json:"stock"`
	Images        StringList `gorm:"type:text" json:"images"`
	Tags          StringList `gorm:"type:text" json:"tags"`

	// Optional time-boxed promotion.
	PromoDiscount int        `gorm:"default:0" json:"promo_discount"`
	PromoEndsAt   *time.Time `json:"promo_ends_at,omitempty"`

	// Optional promotional banner shown on the storefront card.
	PromoHeader   string `gorm:"size:255" json:"promo_header,omitempty"`
	PromoHeaderBg string `gorm:"size:20" json:"promo_header_bg,omitempty"`
	PromoHeaderFg string `gorm:"size:20" json:"promo_header_fg,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// PromoActive reports whether the product has a promotion that has not
// expired yet.
func (p *Product) PromoActive() bool {
	if p.PromoDiscount <= 0 {
		return false
	}
	return p.PromoEndsAt == nil || p.PromoEndsAt.After(time.Now())
}

// EffectivePrice is the price a buyer is charged right now, with any
// active promotion discount applied.
func (p *Product) EffectivePrice() float64 {
	if p.PromoActive() {
		return p.Price * (1 - float64(p.PromoDiscount)/100)
	}
	return p.Price
}

// Purchasable reports whether the product can be charged for.
func (p *Product) Purchasable() bool {
	return p.Status == ProductActive
}
