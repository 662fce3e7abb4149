package postapp

import (
	"context"
	"errors"

	"snapline/internal/core/post"
	"snapline/internal/core/session"
	docstorePort "snapline/internal/ports/docstore"
	imagePort "snapline/internal/ports/image"
	postPort "snapline/internal/ports/post"

	"go.uber.org/zap"
)

// PostService is the mutation side of the post layer. Every mutation that
// returns a post re-fetches the canonical record afterwards, so callers always
// see server-confirmed state, including concurrent changes by others.
type PostService struct {
	Posts  postPort.PostRepository
	Images imagePort.Store
	Logger *zap.Logger
}

func NewPostService(posts postPort.PostRepository, images imagePort.Store, logger *zap.Logger) *PostService {
	return &PostService{
		Posts:  posts,
		Images: images,
		Logger: logger,
	}
}

// CreatePost uploads the image first and only then persists a post pointing at
// the returned endpoint. Upload failure is reported to the caller; a failed
// save is absorbed and the post comes back unsaved.
func (s *PostService) CreatePost(ctx context.Context, sess session.Session, image []byte, caption string) (bool, *post.Post) {
	endpoint, err := s.Images.Upload(ctx, image)
	if err != nil {
		s.Logger.Warn("post: image upload failed", zap.String("username", sess.Username), zap.Error(err))
		return false, nil
	}

	p := &post.Post{
		ImageEndpoint: endpoint,
		Caption:       caption,
		Username:      sess.Username,
	}
	if _, err := s.Posts.Save(ctx, p); err != nil {
		s.Logger.Warn("post: could not persist post", zap.String("username", sess.Username), zap.Error(err))
	}
	return true, p
}

// AddComment persists the post first when it has no identifier yet, attaches
// the comment to that identifier, then returns the refreshed post.
func (s *PostService) AddComment(ctx context.Context, sess session.Session, text string, p *post.Post) (bool, *post.Post) {
	if !s.ensureSaved(ctx, p) {
		return false, nil
	}

	c := &post.Comment{
		Username:       sess.Username,
		Text:           text,
		PostIdentifier: p.Identifier,
	}
	if _, err := s.Posts.SaveComment(ctx, c); err != nil {
		s.Logger.Warn("post: could not persist comment", zap.String("postID", p.Identifier), zap.Error(err))
	}

	return true, s.PostByIdentifier(ctx, p.Identifier)
}

// AddLike follows the same persist-if-needed, attach, re-fetch pattern as
// AddComment. Duplicate likes by the same user are allowed.
func (s *PostService) AddLike(ctx context.Context, sess session.Session, p *post.Post) (bool, *post.Post) {
	if !s.ensureSaved(ctx, p) {
		return false, nil
	}

	l := &post.Like{
		Username:       sess.Username,
		PostIdentifier: p.Identifier,
	}
	if _, err := s.Posts.SaveLike(ctx, l); err != nil {
		s.Logger.Warn("post: could not persist like", zap.String("postID", p.Identifier), zap.Error(err))
	}

	return true, s.PostByIdentifier(ctx, p.Identifier)
}

func (s *PostService) DeleteComment(ctx context.Context, c post.Comment) *post.Post {
	if err := s.Posts.DeleteComment(ctx, c.Identifier); err != nil {
		s.Logger.Warn("post: could not delete comment", zap.String("commentID", c.Identifier), zap.Error(err))
	}
	return s.PostByIdentifier(ctx, c.PostIdentifier)
}

func (s *PostService) DeleteLike(ctx context.Context, l post.Like) *post.Post {
	if err := s.Posts.DeleteLike(ctx, l.Identifier); err != nil {
		s.Logger.Warn("post: could not delete like", zap.String("likeID", l.Identifier), zap.Error(err))
	}
	return s.PostByIdentifier(ctx, l.PostIdentifier)
}

// DeletePost removes the post and, explicitly, its comments and likes. The
// store does not cascade.
func (s *PostService) DeletePost(ctx context.Context, p post.Post) {
	if !p.Saved() {
		return
	}

	// Re-fetch so the cascade covers children added since p was loaded.
	if current := s.PostByIdentifier(ctx, p.Identifier); current != nil {
		p = *current
	}

	for _, c := range p.Comments {
		if err := s.Posts.DeleteComment(ctx, c.Identifier); err != nil {
			s.Logger.Warn("post: could not delete comment during cascade", zap.String("commentID", c.Identifier), zap.Error(err))
		}
	}
	for _, l := range p.Likes {
		if err := s.Posts.DeleteLike(ctx, l.Identifier); err != nil {
			s.Logger.Warn("post: could not delete like during cascade", zap.String("likeID", l.Identifier), zap.Error(err))
		}
	}

	if err := s.Posts.Delete(ctx, p.Identifier); err != nil {
		s.Logger.Warn("post: could not delete post", zap.String("postID", p.Identifier), zap.Error(err))
	}
}

// PostByIdentifier is the refresh primitive behind every mutation above.
// Returns nil when the post is absent or malformed.
func (s *PostService) PostByIdentifier(ctx context.Context, id string) *post.Post {
	p, err := s.Posts.ByIdentifier(ctx, id)
	if err != nil {
		if !errors.Is(err, docstorePort.ErrNotFound) {
			s.Logger.Warn("post: could not fetch post", zap.String("postID", id), zap.Error(err))
		}
		return nil
	}
	return p
}

func (s *PostService) CommentByIdentifier(ctx context.Context, id string) (*post.Comment, error) {
	return s.Posts.CommentByIdentifier(ctx, id)
}

func (s *PostService) LikeByIdentifier(ctx context.Context, id string) (*post.Like, error) {
	return s.Posts.LikeByIdentifier(ctx, id)
}

// ensureSaved persists an unsaved post so children have an identifier to
// reference. Attaching to a post that cannot be persisted is the one mutation
// failure besides upload that callers get to see.
func (s *PostService) ensureSaved(ctx context.Context, p *post.Post) bool {
	if p.Saved() {
		return true
	}
	if _, err := s.Posts.Save(ctx, p); err != nil {
		s.Logger.Warn("post: could not persist unsaved post", zap.String("username", p.Username), zap.Error(err))
		return false
	}
	return p.Saved()
}
