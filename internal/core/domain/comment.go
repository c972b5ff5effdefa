package domain

import "time"

// Comment is a reply attached to a single post.
type Comment struct {
	UID       string    `json:"id" bson:"uid"`
	Owner     Owner     `json:"owner" bson:"owner"`
	PostUID   string    `json:"post_id" bson:"post_uid"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnerID satisfies Ownable.
func (c *Comment) OwnerID() string {
	return c.Owner.UID
}
