package httpapi

import (
	"context"

	"snapline/internal/adapters/httpapi/middleware"
	"snapline/internal/core/post"
	"snapline/internal/core/session"
	"snapline/internal/core/user"
	userPort "snapline/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the use cases.

type UserUseCase interface {
	Register(ctx context.Context, username, password, bio, url string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	ByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, sess session.Session, image []byte, caption string) (bool, *post.Post)
	AddComment(ctx context.Context, sess session.Session, text string, p *post.Post) (bool, *post.Post)
	AddLike(ctx context.Context, sess session.Session, p *post.Post) (bool, *post.Post)
	DeleteComment(ctx context.Context, c post.Comment) *post.Post
	DeleteLike(ctx context.Context, l post.Like) *post.Post
	DeletePost(ctx context.Context, p post.Post)
	PostByIdentifier(ctx context.Context, id string) *post.Post
	CommentByIdentifier(ctx context.Context, id string) (*post.Comment, error)
	LikeByIdentifier(ctx context.Context, id string) (*post.Like, error)
}

type SocialUseCase interface {
	Follow(ctx context.Context, sess session.Session, username string) error
	Unfollow(ctx context.Context, sess session.Session, username string) error
	Following(ctx context.Context, sess session.Session) ([]userPort.UserDTO, error)
}

type TimelineUseCase interface {
	FetchTimeline(ctx context.Context, sess session.Session) []post.Post
	PostsForUser(ctx context.Context, u user.User) []post.Post
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	socialUC SocialUseCase,
	timelineUC TimelineUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	sc := NewSocialController(socialUC)
	tc := NewTimelineController(timelineUC, userUC)

	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)

	auth := r.Group("/", middleware.JWTAuthMiddleware())

	auth.GET("/timeline", tc.GetTimeline)
	auth.GET("/users/:username", uc.GetProfile)
	auth.GET("/users/:username/posts", tc.GetUserPosts)

	auth.POST("/posts", pc.CreatePost)
	auth.DELETE("/posts/:id", pc.DeletePost)
	auth.POST("/posts/:id/comments", pc.AddComment)
	auth.POST("/posts/:id/likes", pc.AddLike)
	auth.DELETE("/comments/:id", pc.DeleteComment)
	auth.DELETE("/likes/:id", pc.DeleteLike)

	auth.POST("/follow", sc.Follow)
	auth.POST("/unfollow", sc.Unfollow)
	auth.GET("/following", sc.Following)

	return r
}
