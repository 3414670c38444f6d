// Package graph defines the read-only GraphQL catalog surface. It is a
// query alternative to the REST product/blog listings, mainly for the
// storefront's composite pages that want one round trip.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"category":    &graphql.Field{Type: graphql.String},
		"status":      &graphql.Field{Type: graphql.String},
		"images":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"tags":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		"effectivePrice": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if product, ok := p.Source.(models.Product); ok {
					return product.EffectivePrice(), nil
				}
				if product, ok := p.Source.(*models.Product); ok {
					return product.EffectivePrice(), nil
				}
				return nil, nil
			},
		},
	},
})

var blogType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Blog",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"title":       &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"content":     &graphql.Field{Type: graphql.String},
		"coverImage":  &graphql.Field{Type: graphql.String},
		"publishedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

// NewSchema builds the catalog query schema over the product and blog
// services so GraphQL reads share the REST cache path.
func NewSchema(products *services.ProductService, blogs *services.BlogService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"page":     &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := repositories.ProductFilter{Status: models.ProductActive}
					if v, ok := p.Args["category"].(string); ok {
						f.Category = v
					}
					if v, ok := p.Args["search"].(string); ok {
						f.Search = v
					}
					if v, ok := p.Args["page"].(int); ok {
						f.Page = v
					}
					if v, ok := p.Args["limit"].(int); ok {
						f.Limit = v
					}
					list, _, err := products.List(f)
					return list, err
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					slug, _ := p.Args["slug"].(string)
					return products.FindBySlug(slug)
				},
			},
			"blogs": &graphql.Field{
				Type: graphql.NewList(blogType),
				Args: graphql.FieldConfigArgument{
					"page":  &graphql.ArgumentConfig{Type: graphql.Int},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := repositories.BlogFilter{Status: models.BlogPublished}
					if v, ok := p.Args["page"].(int); ok {
						f.Page = v
					}
					if v, ok := p.Args["limit"].(int); ok {
						f.Limit = v
					}
					list, _, err := blogs.List(f)
					return list, err
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
