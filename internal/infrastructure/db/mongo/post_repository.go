package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chirpnet/social-api/internal/core/domain"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

// Create inserts a new post document.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, post)
	return err
}

// FindByUID retrieves a post by uid.
func (r *PostRepository) FindByUID(ctx context.Context, uid string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Post
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update rewrites the mutable fields of a post. The comment counter is owned
// by IncCommentCount and deliberately left out of the $set.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"content":    post.Content,
		"updated_at": post.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"uid": post.UID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// Delete removes a post document.
func (r *PostRepository) Delete(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// List returns a page of the global feed, newest first.
func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]*domain.Post, error) {
	return r.list(ctx, bson.M{}, offset, limit)
}

// ListByOwner returns a page of one user's posts, newest first.
func (r *PostRepository) ListByOwner(ctx context.Context, ownerUID string, offset, limit int) ([]*domain.Post, error) {
	return r.list(ctx, bson.M{"owner.uid": ownerUID}, offset, limit)
}

func (r *PostRepository) list(ctx context.Context, filter bson.M, offset, limit int) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]*domain.Post, 0, limit)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// IncCommentCount adjusts the denormalised comment counter by delta.
func (r *PostRepository) IncCommentCount(ctx context.Context, uid string, delta int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$inc": bson.M{"comment_count": delta}},
	)
	return err
}

// DeleteByOwner removes every post authored by ownerUID. Used when the
// account itself is deleted.
func (r *PostRepository) DeleteByOwner(ctx context.Context, ownerUID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"owner.uid": ownerUID})
	return err
}
