package handler

import (
	"github.com/chirpnet/social-api/internal/core/domain"
)

// actionsFor advertises what the viewer may do with a resource. Everyone may
// view; only the owner may edit or delete.
func actionsFor(viewer *domain.User, res domain.Ownable) []string {
	if domain.IsOwner(viewer, res) {
		return []string{"View", "Edit", "Delete"}
	}
	return []string{"View"}
}

func newPublicProfileResponse(u *domain.User) publicProfileResponse {
	return publicProfileResponse{ID: u.UID, DisplayName: u.DisplayName}
}

func newPrivateProfileResponse(u *domain.User) privateProfileResponse {
	return privateProfileResponse{
		ID:          u.UID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Created:     u.CreatedAt,
		Updated:     u.UpdatedAt,
	}
}

func newPostResponse(p *domain.Post, viewer *domain.User) postResponse {
	return postResponse{
		ID:       p.UID,
		Content:  p.Content,
		Created:  p.CreatedAt,
		Updated:  p.UpdatedAt,
		Comments: p.CommentCount,
		Owner:    publicProfileResponse{ID: p.Owner.UID, DisplayName: p.Owner.DisplayName},
		Actions:  actionsFor(viewer, p),
	}
}

func newPostListResponse(posts []*domain.Post, viewer *domain.User) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p, viewer))
	}
	return out
}

func newCommentResponse(c *domain.Comment, viewer *domain.User) commentResponse {
	return commentResponse{
		ID:      c.UID,
		Content: c.Content,
		Created: c.CreatedAt,
		Updated: c.UpdatedAt,
		PostID:  c.PostUID,
		Owner:   publicProfileResponse{ID: c.Owner.UID, DisplayName: c.Owner.DisplayName},
		Actions: actionsFor(viewer, c),
	}
}

func newCommentListResponse(comments []*domain.Comment, viewer *domain.User) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, newCommentResponse(c, viewer))
	}
	return out
}

func newActivityListResponse(activities []*domain.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, activityResponse{
			Verb:       a.Verb,
			SubjectID:  a.SubjectUID,
			RecordedAt: a.RecordedAt,
		})
	}
	return out
}
