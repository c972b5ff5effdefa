package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chirpnet/social-api/internal/core/domain"
)

const collectionActivities = "activities"

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

// Record appends one entry to the activity trail.
func (r *ActivityRepository) Record(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, activity)
	return err
}

// ListByActor returns a page of one user's trail, newest first.
func (r *ActivityRepository) ListByActor(ctx context.Context, actorUID string, offset, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"actor_uid": actorUID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := make([]*domain.Activity, 0, limit)
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
