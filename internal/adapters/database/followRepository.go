package database

import (
	"context"

	"snapline/internal/config"
	"snapline/internal/core/social"
)

// FollowRepositoryDatabase stores directed follow edges via the shared gorm handle.
type FollowRepositoryDatabase struct{}

func NewFollowRepositoryDatabase() *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{}
}

func (repo *FollowRepositoryDatabase) Follow(ctx context.Context, edge *social.FollowEdge) (*social.FollowEdge, error) {
	if err := config.DB.Create(edge).Error; err != nil {
		return nil, err
	}
	return edge, nil
}

func (repo *FollowRepositoryDatabase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if err := config.DB.Where("follower_id = ? AND user_id = ?", followerID, followeeID).Delete(&social.FollowEdge{}).Error; err != nil {
		return err
	}
	return nil
}

func (repo *FollowRepositoryDatabase) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var edges []*social.FollowEdge
	if err := config.DB.Where("follower_id = ?", followerID).Find(&edges).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.UserID.String())
	}
	return ids, nil
}

func (repo *FollowRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := config.DB.Model(&social.FollowEdge{}).Where("follower_id = ? AND user_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
