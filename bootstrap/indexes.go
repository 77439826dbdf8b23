package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureFeedIndexes creates the indexes the feed relies on. Safe to call on every start.
func EnsureFeedIndexes(ctx context.Context, db *mongo.Database) error {
	// posts by owner, used when auditing a user's posts set
	if _, err := db.Collection("posts").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "creator", Value: 1}},
			Options: options.Index().SetName("posts_creator"),
		},
	); err != nil {
		return err
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
		},
	)
	return err
}
