package docstore

import (
	"context"
	"encoding/json"

	"snapline/internal/core/user"
	docstorePort "snapline/internal/ports/docstore"
)

const usersCollection = "users"

type UserRepositoryDocstore struct {
	Store docstorePort.DocumentStore
}

func NewUserRepositoryDocstore(store docstorePort.DocumentStore) *UserRepositoryDocstore {
	return &UserRepositoryDocstore{Store: store}
}

func (r *UserRepositoryDocstore) Save(ctx context.Context, u *user.User) (*user.User, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}

	id, err := r.Store.Write(ctx, usersCollection, u.Identifier, data)
	if err != nil {
		return nil, err
	}
	u.Identifier = id
	return u, nil
}

func (r *UserRepositoryDocstore) ByIdentifier(ctx context.Context, id string) (*user.User, error) {
	doc, err := r.Store.Read(ctx, usersCollection, id)
	if err != nil {
		return nil, err
	}

	u := decodeUser(doc)
	if u == nil {
		return nil, docstorePort.ErrNotFound
	}
	return u, nil
}

func (r *UserRepositoryDocstore) ByUsername(ctx context.Context, username string) (*user.User, error) {
	docs, err := r.Store.Query(ctx, usersCollection, "username", username)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if u := decodeUser(doc); u != nil {
			return u, nil
		}
	}
	return nil, docstorePort.ErrNotFound
}

// decodeUser returns nil for malformed documents (a profile without a
// username is meaningless and gets dropped, not reported).
func decodeUser(doc *docstorePort.Document) *user.User {
	var u user.User
	if err := json.Unmarshal(doc.Data, &u); err != nil {
		return nil
	}
	if u.Username == "" {
		return nil
	}
	u.Identifier = doc.ID
	return &u
}
