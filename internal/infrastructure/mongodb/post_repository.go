package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
	"github.com/cecobask/socialdeck-api/internal/domain/repositories"
)

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(coll *mongo.Collection) *PostRepository {
	return &PostRepository{coll: coll}
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	_, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like absent records.
		return nil, nil
	}
	var post entities.Post
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*entities.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) FindByCreator(ctx context.Context, creatorID string) ([]*entities.Post, error) {
	return r.find(ctx, bson.M{"creatorID": creatorID})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]*entities.Post, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []*entities.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id, message string, links []string) (*entities.Post, error) {
	if links == nil {
		links = []string{}
	}
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{
			"message":     message,
			"links":       links,
			"updatedTime": time.Now().UTC(),
		},
	})
}

func (r *PostRepository) AddShare(ctx context.Context, id, userID string) (*entities.Post, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$addToSet": bson.M{"shares": userID},
		"$set":      bson.M{"updatedTime": time.Now().UTC()},
	})
}

func (r *PostRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*entities.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var post entities.Post
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *PostRepository) DeleteByCreator(ctx context.Context, creatorID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"creatorID": creatorID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *PostRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
