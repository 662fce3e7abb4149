package post

import "sort"

// Post is a timeline entry. A post with an empty Identifier has not been
// persisted yet ("unsaved"); the store assigns the identifier on first save
// and it never changes afterwards.
type Post struct {
	Identifier    string    `json:"-"`
	ImageEndpoint string    `json:"imageEndpoint"`
	Caption       string    `json:"caption,omitempty"`
	Username      string    `json:"username"`
	Comments      []Comment `json:"-"`
	Likes         []Like    `json:"-"`
}

func (p Post) Saved() bool {
	return p.Identifier != ""
}

// Comment always belongs to exactly one persisted post.
type Comment struct {
	Identifier     string `json:"-"`
	Username       string `json:"username"`
	Text           string `json:"text"`
	PostIdentifier string `json:"postId"`
}

// Like carries no payload beyond who liked which post. Nothing here enforces
// one like per (username, post); duplicates are allowed.
type Like struct {
	Identifier     string `json:"-"`
	Username       string `json:"username"`
	PostIdentifier string `json:"postId"`
}

// OrderPosts returns a new slice sorted by identifier, descending, stable on
// equal identifiers. Identifiers are store-assigned UUIDv7 values, which sort
// lexicographically in creation order, so descending order is newest first.
func OrderPosts(posts []Post) []Post {
	ordered := make([]Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Identifier > ordered[j].Identifier
	})
	return ordered
}
