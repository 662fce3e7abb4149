package post

import (
	"context"
	"snapline/internal/core/post"
)

// PostRepository stores posts and their comment/like children in the document
// store. Save assigns an identifier when the record has none.
type PostRepository interface {
	Save(ctx context.Context, p *post.Post) (*post.Post, error)
	ByIdentifier(ctx context.Context, id string) (*post.Post, error)
	ByUsername(ctx context.Context, username string) ([]post.Post, error)
	Delete(ctx context.Context, id string) error

	SaveComment(ctx context.Context, c *post.Comment) (*post.Comment, error)
	CommentByIdentifier(ctx context.Context, id string) (*post.Comment, error)
	DeleteComment(ctx context.Context, id string) error

	SaveLike(ctx context.Context, l *post.Like) (*post.Like, error)
	LikeByIdentifier(ctx context.Context, id string) (*post.Like, error)
	DeleteLike(ctx context.Context, id string) error
}

type CommentDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
	PostID   string `json:"postId"`
}

type LikeDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	PostID   string `json:"postId"`
}

type PostDTO struct {
	ID            string       `json:"id"`
	ImageEndpoint string       `json:"imageEndpoint"`
	Caption       string       `json:"caption,omitempty"`
	Username      string       `json:"username"`
	Comments      []CommentDTO `json:"comments"`
	Likes         []LikeDTO    `json:"likes"`
}

func NewPostDTO(p post.Post) PostDTO {
	dto := PostDTO{
		ID:            p.Identifier,
		ImageEndpoint: p.ImageEndpoint,
		Caption:       p.Caption,
		Username:      p.Username,
		Comments:      []CommentDTO{},
		Likes:         []LikeDTO{},
	}
	for _, c := range p.Comments {
		dto.Comments = append(dto.Comments, CommentDTO{
			ID:       c.Identifier,
			Username: c.Username,
			Text:     c.Text,
			PostID:   c.PostIdentifier,
		})
	}
	for _, l := range p.Likes {
		dto.Likes = append(dto.Likes, LikeDTO{
			ID:       l.Identifier,
			Username: l.Username,
			PostID:   l.PostIdentifier,
		})
	}
	return dto
}

func NewPostDTOs(posts []post.Post) []PostDTO {
	dtos := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, NewPostDTO(p))
	}
	return dtos
}
