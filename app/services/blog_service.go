package services

import (
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/slug"
)

// BlogInput carries create/update fields for a blog post.
type BlogInput struct {
	Title      string `json:"title" validate:"required,max=255"`
	Content    string `json:"content" validate:"nullable"`
	CoverImage string `json:"cover_image" validate:"nullable,max=500"`
	Status     string `json:"status" validate:"nullable,in=draft,published"`
}

type BlogService struct {
	blogs *repositories.BlogRepository
}

func NewBlogService(blogs *repositories.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) List(f repositories.BlogFilter) ([]models.Blog, database.Pagination, error) {
	return s.blogs.List(f)
}

func (s *BlogService) Find(id uint) (*models.Blog, error) {
	return s.blogs.FindByID(id)
}

func (s *BlogService) FindBySlug(sl string) (*models.Blog, error) {
	return s.blogs.FindBySlug(sl)
}

func (s *BlogService) Create(in BlogInput) (*models.Blog, error) {
	sl, err := s.uniqueSlug(in.Title, 0)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:      in.Title,
		Slug:       sl,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Status:     in.Status,
	}
	if blog.Status == "" {
		blog.Status = models.BlogDraft
	}
	stampPublished(blog, nil)

	if err := s.blogs.Create(blog); err != nil {
		return nil, fmt.Errorf("blogs: create: %w", err)
	}

	logger.Info("blogs: created", "blog_id", blog.ID, "slug", blog.Slug)
	return blog, nil
}

func (s *BlogService) Update(id uint, in BlogInput) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.Title != blog.Title {
		sl, err := s.uniqueSlug(in.Title, id)
		if err != nil {
			return nil, err
		}
		blog.Slug = sl
	}

	prevPublishedAt := blog.PublishedAt
	blog.Title = in.Title
	blog.Content = in.Content
	blog.CoverImage = in.CoverImage
	if in.Status != "" {
		blog.Status = in.Status
	}
	stampPublished(blog, prevPublishedAt)

	if err := s.blogs.Update(blog); err != nil {
		return nil, fmt.Errorf("blogs: update: %w", err)
	}
	return blog, nil
}

func (s *BlogService) Delete(id uint) error {
	if _, err := s.blogs.FindByID(id); err != nil {
		return err
	}
	return s.blogs.Delete(id)
}

func (s *BlogService) uniqueSlug(title string, excludeID uint) (string, error) {
	sl := slug.Make(title)
	taken, err := s.blogs.SlugExists(sl, excludeID)
	if err != nil {
		return "", fmt.Errorf("blogs: slug check: %w", err)
	}
	if taken {
		sl = slug.WithTimestamp(sl)
	}
	return sl, nil
}

// stampPublished sets PublishedAt on the first transition to published.
// The stamp survives later unpublish/republish cycles.
func stampPublished(blog *models.Blog, prev *time.Time) {
	if blog.Status == models.BlogPublished && prev == nil && blog.PublishedAt == nil {
		now := time.Now().UTC()
		blog.PublishedAt = &now
	}
}
