package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
)

func newBlogService(db *gorm.DB) *BlogService {
	return NewBlogService(repositories.NewBlogRepository(db))
}

func TestCreateDraftHasNoPublishedAt(t *testing.T) {
	svc := newBlogService(newTestDB(t))

	blog, err := svc.Create(BlogInput{Title: "Draft Post"})
	require.NoError(t, err)
	assert.Equal(t, models.BlogDraft, blog.Status)
	assert.Nil(t, blog.PublishedAt)
	assert.Equal(t, "draft-post", blog.Slug)
}

func TestPublishStampsPublishedAtOnce(t *testing.T) {
	svc := newBlogService(newTestDB(t))

	blog, err := svc.Create(BlogInput{Title: "Post", Content: "body"})
	require.NoError(t, err)

	published, err := svc.Update(blog.ID, BlogInput{Title: "Post", Content: "body", Status: models.BlogPublished})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	stamp := *published.PublishedAt

	// Unpublish and republish: the original stamp survives.
	_, err = svc.Update(blog.ID, BlogInput{Title: "Post", Content: "body", Status: models.BlogDraft})
	require.NoError(t, err)

	republished, err := svc.Update(blog.ID, BlogInput{Title: "Post", Content: "body", Status: models.BlogPublished})
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, stamp.Unix(), republished.PublishedAt.Unix())
}

func TestCreatePublishedStampsImmediately(t *testing.T) {
	svc := newBlogService(newTestDB(t))

	blog, err := svc.Create(BlogInput{Title: "Hot Take", Status: models.BlogPublished})
	require.NoError(t, err)
	assert.NotNil(t, blog.PublishedAt)
}

func TestBlogSlugCollision(t *testing.T) {
	svc := newBlogService(newTestDB(t))

	first, err := svc.Create(BlogInput{Title: "Same Title"})
	require.NoError(t, err)
	second, err := svc.Create(BlogInput{Title: "Same Title"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "same-title-")
}
