package services

import (
	"context"

	"feed-api/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PostStore persists posts. Missing records are reported as mongo.ErrNoDocuments.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	FindPage(ctx context.Context, offset, limit int64) ([]models.Post, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, post *models.Post) error
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}

// UserStore persists users. Missing records are reported as mongo.ErrNoDocuments.
// AddPost and RemovePost change one id of the posts set atomically in the store.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	AddPost(ctx context.Context, userID, postID bson.ObjectID) error
	RemovePost(ctx context.Context, userID, postID bson.ObjectID) error
}

// FileDiscarder removes stored files. Discarding a missing file succeeds.
type FileDiscarder interface {
	Discard(path string) error
}

type EventPublisher interface {
	PublishPostCreated(ctx context.Context, post *models.Post) error
	PublishPostUpdated(ctx context.Context, post *models.Post) error
	PublishPostDeleted(ctx context.Context, postID bson.ObjectID) error
}
