package postapp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"snapline/internal/core/post"
	"snapline/internal/core/session"
	docstorePort "snapline/internal/ports/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memPostRepo is an in-memory PostRepository with counter-based identifiers,
// so assigned ids are lexicographically ordered like the real store's.
type memPostRepo struct {
	seq      int
	posts    map[string]post.Post
	comments map[string]post.Comment
	likes    map[string]post.Like

	saveErr   error
	saveCalls int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{
		posts:    make(map[string]post.Post),
		comments: make(map[string]post.Comment),
		likes:    make(map[string]post.Like),
	}
}

func (m *memPostRepo) nextID() string {
	m.seq++
	return fmt.Sprintf("id-%03d", m.seq)
}

func (m *memPostRepo) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	m.saveCalls++
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if p.Identifier == "" {
		p.Identifier = m.nextID()
	}
	m.posts[p.Identifier] = post.Post{
		Identifier:    p.Identifier,
		ImageEndpoint: p.ImageEndpoint,
		Caption:       p.Caption,
		Username:      p.Username,
	}
	return p, nil
}

func (m *memPostRepo) ByIdentifier(ctx context.Context, id string) (*post.Post, error) {
	stored, ok := m.posts[id]
	if !ok {
		return nil, docstorePort.ErrNotFound
	}

	p := stored
	for _, c := range m.comments {
		if c.PostIdentifier == id {
			p.Comments = append(p.Comments, c)
		}
	}
	sort.Slice(p.Comments, func(i, j int) bool { return p.Comments[i].Identifier < p.Comments[j].Identifier })
	for _, l := range m.likes {
		if l.PostIdentifier == id {
			p.Likes = append(p.Likes, l)
		}
	}
	sort.Slice(p.Likes, func(i, j int) bool { return p.Likes[i].Identifier < p.Likes[j].Identifier })
	return &p, nil
}

func (m *memPostRepo) ByUsername(ctx context.Context, username string) ([]post.Post, error) {
	var out []post.Post
	for id, p := range m.posts {
		if p.Username == username {
			hydrated, _ := m.ByIdentifier(ctx, id)
			out = append(out, *hydrated)
		}
	}
	return out, nil
}

func (m *memPostRepo) Delete(ctx context.Context, id string) error {
	delete(m.posts, id)
	return nil
}

func (m *memPostRepo) SaveComment(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if c.Identifier == "" {
		c.Identifier = m.nextID()
	}
	m.comments[c.Identifier] = *c
	return c, nil
}

func (m *memPostRepo) CommentByIdentifier(ctx context.Context, id string) (*post.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, docstorePort.ErrNotFound
	}
	return &c, nil
}

func (m *memPostRepo) DeleteComment(ctx context.Context, id string) error {
	delete(m.comments, id)
	return nil
}

func (m *memPostRepo) SaveLike(ctx context.Context, l *post.Like) (*post.Like, error) {
	if l.Identifier == "" {
		l.Identifier = m.nextID()
	}
	m.likes[l.Identifier] = *l
	return l, nil
}

func (m *memPostRepo) LikeByIdentifier(ctx context.Context, id string) (*post.Like, error) {
	l, ok := m.likes[id]
	if !ok {
		return nil, docstorePort.ErrNotFound
	}
	return &l, nil
}

func (m *memPostRepo) DeleteLike(ctx context.Context, id string) error {
	delete(m.likes, id)
	return nil
}

type mockImageStore struct {
	endpoint string
	err      error
	calls    int
}

func (m *mockImageStore) Upload(ctx context.Context, image []byte) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.endpoint, nil
}

var sess = session.Session{UserID: "u-1", Username: "kara"}

func newService(repo *memPostRepo, images *mockImageStore) *PostService {
	return NewPostService(repo, images, zap.NewNop())
}

func TestCreatePost(t *testing.T) {
	repo := newMemPostRepo()
	images := &mockImageStore{endpoint: "images/abc"}
	svc := newService(repo, images)

	ok, created := svc.CreatePost(context.Background(), sess, []byte{0x1}, "sunset")

	require.True(t, ok)
	require.NotNil(t, created)
	assert.True(t, created.Saved())
	assert.Equal(t, "images/abc", created.ImageEndpoint)
	assert.Equal(t, "kara", created.Username)
}

func TestCreatePostUploadFailure(t *testing.T) {
	repo := newMemPostRepo()
	images := &mockImageStore{err: errors.New("upload failed")}
	svc := newService(repo, images)

	ok, created := svc.CreatePost(context.Background(), sess, []byte{0x1}, "sunset")

	assert.False(t, ok)
	assert.Nil(t, created)
	// Persistence must not be attempted when the upload fails.
	assert.Zero(t, repo.saveCalls)
}

func TestAddCommentOnUnsavedPost(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	unsaved := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	ok, refreshed := svc.AddComment(context.Background(), sess, "love it", unsaved)

	require.True(t, ok)
	require.NotNil(t, refreshed)
	assert.True(t, unsaved.Saved())
	require.Len(t, refreshed.Comments, 1)
	assert.Equal(t, unsaved.Identifier, refreshed.Comments[0].PostIdentifier)
	assert.Equal(t, "love it", refreshed.Comments[0].Text)
	assert.Equal(t, "kara", refreshed.Comments[0].Username)
}

func TestAddCommentOnUnsavedPostPersistFailure(t *testing.T) {
	repo := newMemPostRepo()
	repo.saveErr = errors.New("store write failed")
	svc := newService(repo, &mockImageStore{})

	unsaved := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	ok, refreshed := svc.AddComment(context.Background(), sess, "love it", unsaved)

	assert.False(t, ok)
	assert.Nil(t, refreshed)
}

func TestAddLikeRefetchesCanonicalState(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	p := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	_, err := repo.Save(context.Background(), p)
	require.NoError(t, err)

	// A comment added "concurrently by someone else".
	_, err = repo.SaveComment(context.Background(), &post.Comment{Username: "ben", Text: "nice", PostIdentifier: p.Identifier})
	require.NoError(t, err)

	ok, refreshed := svc.AddLike(context.Background(), sess, p)

	require.True(t, ok)
	require.NotNil(t, refreshed)
	require.Len(t, refreshed.Likes, 1)
	assert.Equal(t, "kara", refreshed.Likes[0].Username)
	require.Len(t, refreshed.Comments, 1)
	assert.Equal(t, "ben", refreshed.Comments[0].Username)
}

func TestAddLikeAllowsDuplicates(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	p := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	_, err := repo.Save(context.Background(), p)
	require.NoError(t, err)

	_, _ = svc.AddLike(context.Background(), sess, p)
	ok, refreshed := svc.AddLike(context.Background(), sess, p)

	require.True(t, ok)
	require.NotNil(t, refreshed)
	assert.Len(t, refreshed.Likes, 2)
}

func TestDeleteLikeRemovesOnlyTarget(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	p := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	_, err := repo.Save(context.Background(), p)
	require.NoError(t, err)

	l1 := &post.Like{Username: "ben", PostIdentifier: p.Identifier}
	l2 := &post.Like{Username: "ana", PostIdentifier: p.Identifier}
	_, err = repo.SaveLike(context.Background(), l1)
	require.NoError(t, err)
	_, err = repo.SaveLike(context.Background(), l2)
	require.NoError(t, err)

	refreshed := svc.DeleteLike(context.Background(), *l1)

	require.NotNil(t, refreshed)
	require.Len(t, refreshed.Likes, 1)
	assert.Equal(t, l2.Identifier, refreshed.Likes[0].Identifier)
	assert.Equal(t, "ana", refreshed.Likes[0].Username)
}

func TestDeleteCommentRefetchesOwningPost(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	p := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	_, err := repo.Save(context.Background(), p)
	require.NoError(t, err)

	c := &post.Comment{Username: "ben", Text: "nice", PostIdentifier: p.Identifier}
	_, err = repo.SaveComment(context.Background(), c)
	require.NoError(t, err)

	refreshed := svc.DeleteComment(context.Background(), *c)

	require.NotNil(t, refreshed)
	assert.Equal(t, p.Identifier, refreshed.Identifier)
	assert.Empty(t, refreshed.Comments)
}

func TestDeletePostCascades(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	p := &post.Post{ImageEndpoint: "images/abc", Username: "kara"}
	_, err := repo.Save(context.Background(), p)
	require.NoError(t, err)
	_, err = repo.SaveComment(context.Background(), &post.Comment{Username: "ben", Text: "nice", PostIdentifier: p.Identifier})
	require.NoError(t, err)
	_, err = repo.SaveLike(context.Background(), &post.Like{Username: "ana", PostIdentifier: p.Identifier})
	require.NoError(t, err)

	svc.DeletePost(context.Background(), *p)

	assert.Empty(t, repo.posts)
	assert.Empty(t, repo.comments)
	assert.Empty(t, repo.likes)
}

func TestPostByIdentifierAbsent(t *testing.T) {
	repo := newMemPostRepo()
	svc := newService(repo, &mockImageStore{})

	assert.Nil(t, svc.PostByIdentifier(context.Background(), "missing"))
}
