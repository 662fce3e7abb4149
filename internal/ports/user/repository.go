package user

import (
	"context"
	"snapline/internal/core/user"
)

// UserRepository stores profile documents in the document store.
type UserRepository interface {
	Save(ctx context.Context, u *user.User) (*user.User, error)
	ByIdentifier(ctx context.Context, id string) (*user.User, error)
	ByUsername(ctx context.Context, username string) (*user.User, error)
}

// AccountRepository stores credential rows relationally.
type AccountRepository interface {
	Create(account *user.Account) (*user.Account, error)
	FindByUsername(username string) (*user.Account, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	Identifier string `json:"id"`
	Username   string `json:"username"`
	Bio        string `json:"bio,omitempty"`
	URL        string `json:"url,omitempty"`
}

func NewUserDTO(u user.User) UserDTO {
	return UserDTO{
		Identifier: u.Identifier,
		Username:   u.Username,
		Bio:        u.Bio,
		URL:        u.URL,
	}
}
