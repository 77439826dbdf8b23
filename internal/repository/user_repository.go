package repository

import (
	"context"
	"time"

	"feed-api/internal/models"
	"feed-api/internal/services"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

type UserRepository struct {
	col *mongo.Collection
}

var _ services.UserStore = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AddPost puts postID into the user's posts set with $addToSet.
func (r *UserRepository) AddPost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.updatePosts(ctx, userID, bson.M{"$addToSet": bson.M{"posts": postID}})
}

// RemovePost drops postID from the user's posts set with $pull.
func (r *UserRepository) RemovePost(ctx context.Context, userID, postID bson.ObjectID) error {
	return r.updatePosts(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
}

func (r *UserRepository) updatePosts(ctx context.Context, userID bson.ObjectID, op bson.M) error {
	op["$set"] = bson.M{"updated_at": time.Now().UTC()}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, op)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Save upserts a whole user document. Posts set changes go through AddPost
// and RemovePost instead.
func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.Posts == nil {
		u.Posts = []bson.ObjectID{}
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u, options.Replace().SetUpsert(true))
	return err
}
