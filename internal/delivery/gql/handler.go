package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
)

// NewHTTPHandler serves the GraphQL endpoint: POST for operations, GET for
// the playground. The identity middleware has already populated the request
// context by the time this runs.
func NewHTTPHandler(schema *graphql.Schema) echo.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:     schema,
		Pretty:     true,
		Playground: true,
	})
	return func(c echo.Context) error {
		h.ContextHandler(c.Request().Context(), c.Response(), c.Request())
		return nil
	}
}
