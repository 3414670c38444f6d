package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// Index lists products with category/status/search filters.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := r.URL.Query()

	products, p, err := c.products.List(repositories.ProductFilter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	response.Paginated(w, products, p)
}

// Show returns one product by slug, the storefront detail page lookup.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Create(in)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Update(id, in)
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	if err := c.products.Delete(id); err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	response.Success(w, map[string]any{"deleted": id})
}
