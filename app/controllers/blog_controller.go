package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type BlogController struct {
	blogs *services.BlogService
}

func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{blogs: blogs}
}

// Index lists posts. The public storefront sees published posts only;
// the admin list passes ?status= to see drafts.
func (c *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := r.URL.Query()

	status := q.Get("status")
	if !isAdmin(r) {
		status = models.BlogPublished
	}

	blogs, p, err := c.blogs.List(repositories.BlogFilter{
		Status: status,
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list blogs")
		return
	}

	response.Paginated(w, blogs, p)
}

func (c *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := c.blogs.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "blog not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	// Drafts are invisible outside the back office.
	if blog.Status != models.BlogPublished && !isAdmin(r) {
		response.NotFound(w, "blog not found")
		return
	}

	response.Success(w, blog)
}

func (c *BlogController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.BlogInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	blog, err := c.blogs.Create(in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to create blog")
		return
	}
	response.Created(w, blog)
}

func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	var in services.BlogInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	blog, err := c.blogs.Update(id, in)
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "blog not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update blog")
		return
	}
	response.Success(w, blog)
}

func (c *BlogController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	if err := c.blogs.Delete(id); err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "blog not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete blog")
		return
	}
	response.Success(w, map[string]any{"deleted": id})
}
