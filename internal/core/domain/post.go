package domain

import "time"

// Owner is a snapshot of the authoring user embedded in a document at
// creation time. A later display-name change does not rewrite old documents.
type Owner struct {
	UID         string `json:"id" bson:"uid"`
	DisplayName string `json:"display_name" bson:"display_name"`
}

// Post is a user-authored feed entry.
type Post struct {
	UID          string    `json:"id" bson:"uid"`
	Owner        Owner     `json:"owner" bson:"owner"`
	Content      string    `json:"content" bson:"content"`
	CommentCount int64     `json:"comments" bson:"comment_count"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnerID satisfies Ownable.
func (p *Post) OwnerID() string {
	return p.Owner.UID
}
