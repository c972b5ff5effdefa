package domain

import "time"

// Activity verbs recorded on the asynchronous trail.
const (
	VerbPostCreated    = "post_created"
	VerbPostUpdated    = "post_updated"
	VerbPostDeleted    = "post_deleted"
	VerbCommentCreated = "comment_created"
	VerbCommentUpdated = "comment_updated"
	VerbCommentDeleted = "comment_deleted"
)

// Activity is a single entry on the per-user activity trail. Entries are
// recorded asynchronously; losing one on shutdown is acceptable.
type Activity struct {
	ActorUID   string    `json:"actor_id" bson:"actor_uid"`
	Verb       string    `json:"verb" bson:"verb"`
	SubjectUID string    `json:"subject_id" bson:"subject_uid"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
