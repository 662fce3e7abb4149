package social

import (
	"time"

	"github.com/gofrs/uuid"
)

// FollowEdge is a directed follow relation: FollowerID follows UserID. Both
// sides reference profile document identifiers.
type FollowEdge struct {
	ID         uuid.UUID  `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_follow_edge"`
	FollowerID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_follow_edge"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	DeletedAt  *time.Time `gorm:"index"`
}
