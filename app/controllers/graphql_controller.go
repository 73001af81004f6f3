package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/tommy251/Atlas2.0/app/services"
	gql "github.com/tommy251/Atlas2.0/pkg/graphql"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

// GraphQLController exposes a read-only query surface over the catalogue.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(catalog *services.CatalogService) (*GraphQLController, error) {
	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"name":        &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"image_url":   &graphql.Field{Type: graphql.String},
			"best_price":  &graphql.Field{Type: graphql.Boolean},
			"description": &graphql.Field{Type: graphql.String},
			"category":    &graphql.Field{Type: graphql.String},
			"colors":      &graphql.Field{Type: graphql.NewList(graphql.String)},
			"storage":     &graphql.Field{Type: graphql.NewList(graphql.String)},
			"images":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return catalog.Get(p.Context, id)
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					return catalog.List(p.Context, category)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(p.Context)
				},
			},
			"search": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"q": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					q, _ := p.Args["q"].(string)
					return catalog.Search(p.Context, q)
				},
			},
		},
	})

	schema, err := gql.NewSchema(query)
	if err != nil {
		return nil, err
	}
	return &GraphQLController{schema: schema}, nil
}

func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  body.Query,
		VariableValues: body.Variables,
		Context:        r.Context(),
	})
	response.Success(w, result)
}
