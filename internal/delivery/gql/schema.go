package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

// NewSchema builds the executable schema, dispatching every field to the
// typed resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).ID.Hex(), nil
				},
			},
			"creatorID": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).CreatorID, nil
				},
			},
			"createdTime": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).CreatedTime, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).Message, nil
				},
			},
			"updatedTime": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post := p.Source.(*entities.Post)
					if post.UpdatedTime == nil {
						return nil, nil
					}
					return *post.UpdatedTime, nil
				},
			},
			"links": &graphql.Field{
				Type: graphql.NewList(urlScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).Links, nil
				},
			},
			"shares": &graphql.Field{
				Type: graphql.NewList(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.Post).Shares, nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.User).ID.Hex(), nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.User).Email, nil
				},
			},
			"firstName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.User).FirstName, nil
				},
			},
			"lastName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*entities.User).LastName, nil
				},
			},
			// Nested query that fetches all posts by a user.
			"posts": &graphql.Field{
				Type:    graphql.NewList(postType),
				Resolve: r.userPosts,
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.allUsers,
			},
			"findUserById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.findUserByID,
			},
			"posts": &graphql.Field{
				Type:    graphql.NewList(postType),
				Resolve: r.allPosts,
			},
			"findPostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.findPostByID,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Args: graphql.FieldConfigArgument{
					"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.signUp,
			},
			"logIn": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.logIn,
			},
			"logOut": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.logOut,
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"message": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"links":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(urlScalar))},
				},
				Resolve: r.createPost,
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postID":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"message": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"links":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(urlScalar))},
				},
				Resolve: r.updatePost,
			},
			"sharePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"postID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.sharePost,
			},
			"deletePostById": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deletePostByID,
			},
			"deleteAllPosts": &graphql.Field{
				Type:    graphql.String,
				Resolve: r.deleteAllPosts,
			},
			"deleteUserById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteUserByID,
			},
			"deleteAllUsers": &graphql.Field{
				Type:    graphql.String,
				Resolve: r.deleteAllUsers,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
