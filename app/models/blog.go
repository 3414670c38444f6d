package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is a CMS post on the storefront.
type Blog struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	CoverImage  string         `gorm:"size:500" json:"cover_image"`
	Status      string         `gorm:"size:20;not null;default:draft;index" json:"status"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Blog) TableName() string { return "blogs" }
