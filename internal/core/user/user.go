package user

import (
	"time"

	"github.com/gofrs/uuid"
)

// User is a profile document in the remote document store. Identifier is
// assigned by the store on first save and never changes afterwards.
type User struct {
	Identifier string `json:"-"`
	Username   string `json:"username"`
	Bio        string `json:"bio,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Equal reports whether two users are the same entity: both the username and
// the store identifier must match.
func (u User) Equal(other User) bool {
	return u.Username == other.Username && u.Identifier == other.Identifier
}

// Account is the credential side of a user, kept relational. UserIdentifier
// points at the profile document.
type Account struct {
	ID             uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Username       string     `gorm:"unique;not null"`
	Password       string     `gorm:"not null"`
	UserIdentifier string     `gorm:"type:char(36);not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `gorm:"index"`
}
