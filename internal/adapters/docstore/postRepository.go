package docstore

import (
	"context"
	"encoding/json"
	"sort"

	"snapline/internal/core/post"
	docstorePort "snapline/internal/ports/docstore"
)

const (
	postsCollection    = "posts"
	commentsCollection = "comments"
	likesCollection    = "likes"
)

type PostRepositoryDocstore struct {
	Store docstorePort.DocumentStore
}

func NewPostRepositoryDocstore(store docstorePort.DocumentStore) *PostRepositoryDocstore {
	return &PostRepositoryDocstore{Store: store}
}

func (r *PostRepositoryDocstore) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	id, err := r.Store.Write(ctx, postsCollection, p.Identifier, data)
	if err != nil {
		return nil, err
	}
	p.Identifier = id
	return p, nil
}

func (r *PostRepositoryDocstore) ByIdentifier(ctx context.Context, id string) (*post.Post, error) {
	doc, err := r.Store.Read(ctx, postsCollection, id)
	if err != nil {
		return nil, err
	}

	p := decodePost(doc)
	if p == nil {
		return nil, docstorePort.ErrNotFound
	}
	if err := r.hydrate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepositoryDocstore) ByUsername(ctx context.Context, username string) ([]post.Post, error) {
	docs, err := r.Store.Query(ctx, postsCollection, "username", username)
	if err != nil {
		return nil, err
	}

	posts := make([]post.Post, 0, len(docs))
	for _, doc := range docs {
		p := decodePost(doc)
		if p == nil {
			continue
		}
		if err := r.hydrate(ctx, p); err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, nil
}

func (r *PostRepositoryDocstore) Delete(ctx context.Context, id string) error {
	return r.Store.Delete(ctx, postsCollection, id)
}

func (r *PostRepositoryDocstore) SaveComment(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	id, err := r.Store.Write(ctx, commentsCollection, c.Identifier, data)
	if err != nil {
		return nil, err
	}
	c.Identifier = id
	return c, nil
}

func (r *PostRepositoryDocstore) CommentByIdentifier(ctx context.Context, id string) (*post.Comment, error) {
	doc, err := r.Store.Read(ctx, commentsCollection, id)
	if err != nil {
		return nil, err
	}

	c := decodeComment(doc)
	if c == nil {
		return nil, docstorePort.ErrNotFound
	}
	return c, nil
}

func (r *PostRepositoryDocstore) DeleteComment(ctx context.Context, id string) error {
	return r.Store.Delete(ctx, commentsCollection, id)
}

func (r *PostRepositoryDocstore) SaveLike(ctx context.Context, l *post.Like) (*post.Like, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	id, err := r.Store.Write(ctx, likesCollection, l.Identifier, data)
	if err != nil {
		return nil, err
	}
	l.Identifier = id
	return l, nil
}

func (r *PostRepositoryDocstore) LikeByIdentifier(ctx context.Context, id string) (*post.Like, error) {
	doc, err := r.Store.Read(ctx, likesCollection, id)
	if err != nil {
		return nil, err
	}

	l := decodeLike(doc)
	if l == nil {
		return nil, docstorePort.ErrNotFound
	}
	return l, nil
}

func (r *PostRepositoryDocstore) DeleteLike(ctx context.Context, id string) error {
	return r.Store.Delete(ctx, likesCollection, id)
}

// hydrate attaches the post's comments and likes, each in creation order
// (ascending identifier).
func (r *PostRepositoryDocstore) hydrate(ctx context.Context, p *post.Post) error {
	commentDocs, err := r.Store.Query(ctx, commentsCollection, "postId", p.Identifier)
	if err != nil {
		return err
	}
	for _, doc := range commentDocs {
		if c := decodeComment(doc); c != nil {
			p.Comments = append(p.Comments, *c)
		}
	}
	sort.SliceStable(p.Comments, func(i, j int) bool {
		return p.Comments[i].Identifier < p.Comments[j].Identifier
	})

	likeDocs, err := r.Store.Query(ctx, likesCollection, "postId", p.Identifier)
	if err != nil {
		return err
	}
	for _, doc := range likeDocs {
		if l := decodeLike(doc); l != nil {
			p.Likes = append(p.Likes, *l)
		}
	}
	sort.SliceStable(p.Likes, func(i, j int) bool {
		return p.Likes[i].Identifier < p.Likes[j].Identifier
	})

	return nil
}

// Malformed documents (missing owner username) are dropped, not reported.

func decodePost(doc *docstorePort.Document) *post.Post {
	var p post.Post
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return nil
	}
	if p.Username == "" {
		return nil
	}
	p.Identifier = doc.ID
	return &p
}

func decodeComment(doc *docstorePort.Document) *post.Comment {
	var c post.Comment
	if err := json.Unmarshal(doc.Data, &c); err != nil {
		return nil
	}
	if c.Username == "" {
		return nil
	}
	c.Identifier = doc.ID
	return &c
}

func decodeLike(doc *docstorePort.Document) *post.Like {
	var l post.Like
	if err := json.Unmarshal(doc.Data, &l); err != nil {
		return nil
	}
	if l.Username == "" {
		return nil
	}
	l.Identifier = doc.ID
	return &l
}
