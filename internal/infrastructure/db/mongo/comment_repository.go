package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chirpnet/social-api/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

// Create inserts a new comment document.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, comment)
	return err
}

// FindByUID retrieves a comment by uid.
func (r *CommentRepository) FindByUID(ctx context.Context, uid string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cm domain.Comment
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&cm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &cm, nil
}

// Update rewrites the mutable fields of a comment.
func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"content":    comment.Content,
		"updated_at": comment.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"uid": comment.UID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment document.
func (r *CommentRepository) Delete(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// ListByPost returns a page of one post's comments, newest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postUID string, offset, limit int) ([]*domain.Comment, error) {
	return r.list(ctx, bson.M{"post_uid": postUID}, offset, limit)
}

// ListByOwner returns a page of one user's comments, newest first.
func (r *CommentRepository) ListByOwner(ctx context.Context, ownerUID string, offset, limit int) ([]*domain.Comment, error) {
	return r.list(ctx, bson.M{"owner.uid": ownerUID}, offset, limit)
}

func (r *CommentRepository) list(ctx context.Context, filter bson.M, offset, limit int) ([]*domain.Comment, error) {
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

	comments := make([]*domain.Comment, 0, limit)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByPost removes every comment under a deleted post.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postUID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"post_uid": postUID})
	return err
}

// DeleteByOwner removes every comment authored by a deleted account.
func (r *CommentRepository) DeleteByOwner(ctx context.Context, ownerUID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"owner.uid": ownerUID})
	return err
}
