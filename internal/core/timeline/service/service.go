package timelineapp

import (
	"context"
	"sync"

	"snapline/internal/core/post"
	"snapline/internal/core/session"
	"snapline/internal/core/user"

	"go.uber.org/zap"
)

// FollowedResolver yields the users followed by the given profile identifier.
type FollowedResolver interface {
	FollowedBy(ctx context.Context, identifier string) ([]user.User, error)
}

// PostSource is the per-user post query the aggregator fans out over.
type PostSource interface {
	ByUsername(ctx context.Context, username string) ([]post.Post, error)
}

type TimelineService struct {
	Social FollowedResolver
	Posts  PostSource
	Logger *zap.Logger
}

func NewTimelineService(social FollowedResolver, posts PostSource, logger *zap.Logger) *TimelineService {
	return &TimelineService{
		Social: social,
		Posts:  posts,
		Logger: logger,
	}
}

// FetchTimeline aggregates the acting user's posts with the posts of everyone
// they follow, newest first. The feed is best-effort: a failed resolver call
// degrades to own posts only, and a failed per-user query contributes nothing;
// neither surfaces to the caller, and the call always returns exactly once.
func (s *TimelineService) FetchTimeline(ctx context.Context, sess session.Session) []post.Post {
	followed, err := s.Social.FollowedBy(ctx, sess.UserID)
	if err != nil {
		s.Logger.Warn("timeline: could not resolve followed users, serving own posts only",
			zap.String("userID", sess.UserID), zap.Error(err))
		followed = nil
	}

	// The acting user is always a source. Duplicate followed entries are kept
	// as-is; sources are not deduplicated here.
	sources := make([]user.User, 0, len(followed)+1)
	sources = append(sources, user.User{Identifier: sess.UserID, Username: sess.Username})
	sources = append(sources, followed...)

	var (
		mu       sync.Mutex
		allPosts []post.Post
		wg       sync.WaitGroup
	)

	// Fan out one query per source; the wait group is the join barrier and the
	// mutex guards the shared accumulator across concurrent completions.
	for _, u := range sources {
		wg.Add(1)
		go func(u user.User) {
			defer wg.Done()

			posts := s.postsFor(ctx, u)
			if len(posts) == 0 {
				return
			}

			mu.Lock()
			allPosts = append(allPosts, posts...)
			mu.Unlock()
		}(u)
	}
	wg.Wait()

	return post.OrderPosts(allPosts)
}

// PostsForUser is the single-user path behind the profile view. It shares
// OrderPosts with FetchTimeline so both views agree on chronology.
func (s *TimelineService) PostsForUser(ctx context.Context, u user.User) []post.Post {
	return post.OrderPosts(s.postsFor(ctx, u))
}

func (s *TimelineService) postsFor(ctx context.Context, u user.User) []post.Post {
	posts, err := s.Posts.ByUsername(ctx, u.Username)
	if err != nil {
		s.Logger.Warn("timeline: skipping source", zap.String("username", u.Username), zap.Error(err))
		return nil
	}
	return posts
}
