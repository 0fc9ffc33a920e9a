package crumbkit

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// AdminGrant stores one role held by a user.
type AdminGrant struct {
	bun.BaseModel `bun:"table:admin_grants,alias:ag"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    string    `bun:"user_id,notnull"`
	Role      string    `bun:"role,notnull"` // Can be a pattern, e.g. "ROLE_ADMIN_POST_*"
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// RoleProvider loads the roles of a user.
type RoleProvider interface {
	Roles(ctx context.Context, userID string) ([]string, error)
}

// StaticRoles is a RoleProvider backed by a map of user ID to roles.
type StaticRoles map[string][]string

// Roles returns the roles of userID; unknown users have none.
func (s StaticRoles) Roles(_ context.Context, userID string) ([]string, error) {
	return s[userID], nil
}
