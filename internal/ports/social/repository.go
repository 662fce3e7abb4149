package social

import (
	"context"
	"snapline/internal/core/social"
)

// FollowRepository stores directed follow edges between profile identifiers.
type FollowRepository interface {
	Follow(ctx context.Context, edge *social.FollowEdge) (*social.FollowEdge, error)
	Unfollow(ctx context.Context, followerID, followeeID string) error
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}
