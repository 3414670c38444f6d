package repositories

import (
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
)

// BlogFilter narrows blog listings.
type BlogFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(f BlogFilter) ([]models.Blog, database.Pagination, error) {
	q := r.db.Model(&models.Blog{}).Order("created_at DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	var blogs []models.Blog
	p, err := database.Paginate(q, f.Page, f.Limit, &blogs)
	return blogs, p, err
}

func (r *BlogRepository) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Blog{}).Where("slug = ?", slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BlogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *BlogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.db.Delete(&models.Blog{}, id).Error
}

func (r *BlogRepository) CountPublished() (int64, error) {
	var n int64
	err := r.db.Model(&models.Blog{}).Where("status = ?", models.BlogPublished).Count(&n).Error
	return n, err
}
