package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. Called once
// at startup before the server begins accepting traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(collectionUsers).Indexes().CreateMany(ctx, users); err != nil {
		return err
	}

	posts := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner.uid", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(collectionPosts).Indexes().CreateMany(ctx, posts); err != nil {
		return err
	}

	comments := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "post_uid", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner.uid", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(collectionComments).Indexes().CreateMany(ctx, comments); err != nil {
		return err
	}

	activities := []mongo.IndexModel{
		{Keys: bson.D{{Key: "actor_uid", Value: 1}, {Key: "recorded_at", Value: -1}}},
	}
	if _, err := db.Collection(collectionActivities).Indexes().CreateMany(ctx, activities); err != nil {
		return err
	}

	return nil
}
