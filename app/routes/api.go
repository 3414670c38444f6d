// Package routes declares the HTTP surface: public storefront, the
// authenticated customer routes and the admin back office.
package routes

import (
	"github.com/graphql-go/graphql"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/controllers"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	gqlhttp "github.com/sengaryogesh394-ai/digiaddaworld/pkg/graphql"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/middleware"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/rbac"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/router"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/ws"
)

// Controllers bundles everything the route table mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Blogs    *controllers.BlogController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
	Users    *controllers.UserController
	Stats    *controllers.StatsController
	AI       *controllers.AIController
	Media    *controllers.MediaController

	Hub    *ws.Hub
	Schema graphql.Schema
}

// Register mounts the full API route table.
func Register(r *router.Router, c Controllers) {
	api := r.Group("/api")

	// Public storefront.
	api.Get("/products", "products.index", c.Products.Index)
	api.Get("/products/{slug}", "products.show", c.Products.Show)
	api.Get("/blogs", "blogs.index", c.Blogs.Index)
	api.Get("/blogs/{slug}", "blogs.show", c.Blogs.Show)

	api.Post("/auth/register", "auth.register", c.Auth.Register)
	api.Post("/auth/login", "auth.login", c.Auth.Login)

	// Payment flow. Initiation is open to guests: a buyer supplies
	// contact details instead of an account.
	api.Post("/payment/initiate", "payment.initiate", c.Payments.Initiate)
	api.Post("/payment/confirm", "payment.confirm", c.Payments.Confirm)

	// Read-only GraphQL catalog queries.
	r.HandleFunc("/api/graphql", gqlhttp.Handler(c.Schema))

	// Authenticated customer routes.
	authed := api.Group("", middleware.Auth)
	authed.Get("/auth/me", "auth.me", c.Auth.Me)
	authed.Get("/orders", "orders.index", c.Orders.Index)
	authed.Get("/orders/{id}", "orders.show", c.Orders.Show)
	authed.Post("/orders", "orders.store", c.Orders.Store)

	// Admin back office.
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole(models.RoleAdmin))

	admin.Post("/products", "admin.products.store", c.Products.Store)
	admin.Put("/products/{id}", "admin.products.update", c.Products.Update)
	admin.Delete("/products/{id}", "admin.products.destroy", c.Products.Destroy)

	admin.Get("/blogs", "admin.blogs.index", c.Blogs.Index)
	admin.Get("/blogs/{slug}", "admin.blogs.show", c.Blogs.Show)
	admin.Post("/blogs", "admin.blogs.store", c.Blogs.Store)
	admin.Put("/blogs/{id}", "admin.blogs.update", c.Blogs.Update)
	admin.Delete("/blogs/{id}", "admin.blogs.destroy", c.Blogs.Destroy)

	admin.Get("/orders", "admin.orders.index", c.Orders.Index)
	admin.Get("/orders/{id}", "admin.orders.show", c.Orders.Show)
	admin.Patch("/orders/{id}/status", "admin.orders.status", c.Orders.UpdateStatus)

	admin.Get("/sales", "admin.sales.index", c.Payments.Sales)
	admin.Patch("/sales/{id}", "admin.sales.update", c.Payments.UpdateSale)

	admin.Get("/users", "admin.users.index", c.Users.Index)
	admin.Get("/users/{id}", "admin.users.show", c.Users.Show)
	admin.Post("/users/{id}/suspend", "admin.users.suspend", c.Users.Suspend)
	admin.Post("/users/{id}/activate", "admin.users.activate", c.Users.Activate)
	admin.Delete("/users/{id}", "admin.users.destroy", c.Users.Destroy)

	admin.Get("/stats", "admin.stats", c.Stats.Dashboard)

	admin.Post("/ai/copy", "admin.ai.copy", c.AI.GenerateCopy)
	admin.Post("/ai/image", "admin.ai.image", c.AI.GenerateImage)
	admin.Post("/ai/generate", "admin.ai.generate", c.AI.EnqueueGeneration)

	admin.Post("/media", "admin.media.upload", c.Media.Upload)

	// Live order/payment feed for connected dashboards.
	admin.Get("/feed", "admin.feed", c.Hub.Handler)
}
