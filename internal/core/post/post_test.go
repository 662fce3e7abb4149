package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPostsDescending(t *testing.T) {
	posts := []Post{
		{Identifier: "0190a111", Username: "ana"},
		{Identifier: "0190c333", Username: "ben"},
		{Identifier: "0190b222", Username: "ana"},
	}

	ordered := OrderPosts(posts)

	require.Len(t, ordered, 3)
	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, ordered[i-1].Identifier, ordered[i].Identifier)
	}
	assert.Equal(t, "0190c333", ordered[0].Identifier)
}

func TestOrderPostsIdempotent(t *testing.T) {
	posts := []Post{
		{Identifier: "b"},
		{Identifier: "a"},
		{Identifier: "c"},
	}

	once := OrderPosts(posts)
	twice := OrderPosts(once)

	assert.Equal(t, once, twice)
}

func TestOrderPostsStableOnEqualIdentifiers(t *testing.T) {
	posts := []Post{
		{Identifier: "x", Caption: "first"},
		{Identifier: "x", Caption: "second"},
		{Identifier: "y", Caption: "newer"},
	}

	ordered := OrderPosts(posts)

	require.Len(t, ordered, 3)
	assert.Equal(t, "newer", ordered[0].Caption)
	assert.Equal(t, "first", ordered[1].Caption)
	assert.Equal(t, "second", ordered[2].Caption)
}

func TestOrderPostsDoesNotMutateInput(t *testing.T) {
	posts := []Post{{Identifier: "b"}, {Identifier: "a"}}

	_ = OrderPosts(posts)

	assert.Equal(t, "b", posts[0].Identifier)
	assert.Equal(t, "a", posts[1].Identifier)
}

func TestOrderPostsEmpty(t *testing.T) {
	ordered := OrderPosts(nil)

	assert.NotNil(t, ordered)
	assert.Empty(t, ordered)
}
