package socialapp

import (
	"context"
	"errors"

	"snapline/internal/core/session"
	"snapline/internal/core/social"
	"snapline/internal/core/user"
	docstorePort "snapline/internal/ports/docstore"
	socialPort "snapline/internal/ports/social"
	userPort "snapline/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// SocialService resolves and mutates the follow graph. Edges are relational;
// the followed users themselves are profile documents.
type SocialService struct {
	Follows socialPort.FollowRepository
	Users   userPort.UserRepository
	Logger  *zap.Logger
}

func NewSocialService(follows socialPort.FollowRepository, users userPort.UserRepository, logger *zap.Logger) *SocialService {
	return &SocialService{
		Follows: follows,
		Users:   users,
		Logger:  logger,
	}
}

// FollowedBy returns the users the given profile follows. Profiles that fail
// to resolve are dropped rather than failing the set.
func (s *SocialService) FollowedBy(ctx context.Context, identifier string) ([]user.User, error) {
	ids, err := s.Follows.FollowingIDs(ctx, identifier)
	if err != nil {
		return nil, err
	}

	followed := make([]user.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.Users.ByIdentifier(ctx, id)
		if err != nil {
			if !errors.Is(err, docstorePort.ErrNotFound) {
				s.Logger.Warn("social: could not resolve followed profile", zap.String("identifier", id), zap.Error(err))
			}
			continue
		}
		followed = append(followed, *u)
	}
	return followed, nil
}

func (s *SocialService) Follow(ctx context.Context, sess session.Session, username string) error {
	followee, err := s.Users.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	if followee.Identifier == sess.UserID {
		s.Logger.Warn("⚠️ Cannot follow yourself", zap.String("userID", sess.UserID))
		return errors.New("cannot follow yourself")
	}

	edge := &social.FollowEdge{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     uuid.FromStringOrNil(followee.Identifier),
		FollowerID: uuid.FromStringOrNil(sess.UserID),
	}

	_, err = s.Follows.Follow(ctx, edge)
	return err
}

func (s *SocialService) Unfollow(ctx context.Context, sess session.Session, username string) error {
	followee, err := s.Users.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.Follows.Unfollow(ctx, sess.UserID, followee.Identifier)
}

func (s *SocialService) IsFollowing(ctx context.Context, sess session.Session, username string) (bool, error) {
	followee, err := s.Users.ByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.Follows.IsFollowing(ctx, sess.UserID, followee.Identifier)
}

// Following lists the acting user's followed profiles as DTOs for the API.
func (s *SocialService) Following(ctx context.Context, sess session.Session) ([]userPort.UserDTO, error) {
	followed, err := s.FollowedBy(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	dtos := make([]userPort.UserDTO, 0, len(followed))
	for _, u := range followed {
		dtos = append(dtos, userPort.NewUserDTO(u))
	}
	return dtos, nil
}
