package handler

import "time"

// --- Request types ---
// Length bounds mirror the stored column limits; semantic rules live in
// validator.go.

type signupRequest struct {
	Email       string `json:"email"        validate:"required,min=5,max=100,email"`
	Password    string `json:"password"     validate:"required,min=8,max=2048,password"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=50,displayname"`
}

// updateUserRequest reuses the signup contract: every field is required and
// replaced in one shot.
type updateUserRequest struct {
	Email       string `json:"email"        validate:"required,min=5,max=100,email"`
	Password    string `json:"password"     validate:"required,min=8,max=2048,password"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=50,displayname"`
}

type createPostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type updatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type issuedTokenResponse struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
}

type tokenPairResponse struct {
	Bearer  issuedTokenResponse `json:"bearer"`
	Refresh issuedTokenResponse `json:"refresh"`
}

type publicProfileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type privateProfileResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

type postResponse struct {
	ID       string                `json:"id"`
	Content  string                `json:"content"`
	Created  time.Time             `json:"created"`
	Updated  time.Time             `json:"updated"`
	Comments int64                 `json:"comments"`
	Owner    publicProfileResponse `json:"owner"`
	Actions  []string              `json:"actions"`
}

type commentResponse struct {
	ID      string                `json:"id"`
	Content string                `json:"content"`
	Created time.Time             `json:"created"`
	Updated time.Time             `json:"updated"`
	PostID  string                `json:"post_id"`
	Owner   publicProfileResponse `json:"owner"`
	Actions []string              `json:"actions"`
}

type activityResponse struct {
	Verb       string    `json:"verb"`
	SubjectID  string    `json:"subject_id"`
	RecordedAt time.Time `json:"recorded_at"`
}
