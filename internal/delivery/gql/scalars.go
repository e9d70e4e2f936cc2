package gql

import (
	"net/url"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// urlScalar validates link arguments at the schema layer: malformed values
// fail query validation before any resolver runs. Values are carried as
// canonical URL strings.
var urlScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "URL",
	Description: "An absolute URL, validated per RFC 3986.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return v
		case *url.URL:
			return v.String()
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseURL(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			return parseURL(sv.Value)
		}
		return nil
	},
})

func parseURL(s string) interface{} {
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Host == "" {
		return nil
	}
	return u.String()
}
