package crumbkit

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fernandezvara/dbkit"
)

// GrantStore persists the roles held by users.
// It integrates with the database through dbkit.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	store := crumbkit.NewGrantStore(db)
//	db.Migrate(ctx, store.Migrations())
//
//	store.Grant(ctx, userID, "ROLE_ADMIN_POST_EDIT")
//	handler, err := store.SecurityHandler(ctx, userID)
type GrantStore struct {
	db dbkit.IDB
}

// NewGrantStore creates a GrantStore.
func NewGrantStore(db dbkit.IDB) *GrantStore {
	return &GrantStore{db: db}
}

// Grant gives role to a user. The role may be a pattern.
func (s *GrantStore) Grant(ctx context.Context, userID, role string) error {
	if userID == "" {
		return NewError(ErrNoUserID, "user ID required for grant").WithRole(role)
	}
	if err := DefaultRoleMatcher.Validate(role); err != nil {
		return err
	}

	grant := &AdminGrant{
		UserID: userID,
		Role:   role,
	}

	result, err := s.db.NewInsert().Model(grant).Exec(ctx)
	err = dbkit.WithErr(result, err, "CreateAdminGrant").Err()
	if err != nil {
		if dbkit.IsDuplicate(err) {
			return NewError(ErrGrantExists, "user already holds this role").
				WithRole(role).
				WithUser(userID)
		}
		return NewError(ErrDatabaseError, "failed to create admin grant").
			WithRole(role).
			WithUser(userID)
	}

	return nil
}

// Revoke removes role from a user.
func (s *GrantStore) Revoke(ctx context.Context, userID, role string) error {
	result, err := s.db.NewDelete().Table("admin_grants").Where("user_id = ? AND role = ?", userID, role).Exec(ctx)
	err = dbkit.WithErr(result, err, "DeleteAdminGrant").Err()
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return NewError(ErrGrantNotFound, "user does not hold this role").
			WithRole(role).
			WithUser(userID)
	}
	return nil
}

// Roles returns the roles of a user, sorted by name.
func (s *GrantStore) Roles(ctx context.Context, userID string) ([]string, error) {
	var grants []AdminGrant
	err := dbkit.WithErr1(s.db.NewSelect().Model(&grants).Where("user_id = ?", userID).Order("role ASC").Scan(ctx), "GetAdminGrants").Err()
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(grants))
	for _, g := range grants {
		roles = append(roles, g.Role)
	}
	return roles, nil
}

// HasGrant checks if the exact role is stored for a user.
// Patterns are not expanded; use SecurityHandler for matching.
func (s *GrantStore) HasGrant(ctx context.Context, userID, role string) (bool, error) {
	return dbkit.Exists[AdminGrant](ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ? AND role = ?", userID, role)
	})
}

// SecurityHandler loads the roles of a user into a RoleSecurityHandler.
func (s *GrantStore) SecurityHandler(ctx context.Context, userID string, opts ...SecurityOption) (*RoleSecurityHandler, error) {
	roles, err := s.Roles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewRoleSecurityHandler(userID, roles, opts...), nil
}

// Migrations returns all database migrations required by the GrantStore.
// Use db.Migrate(ctx, store.Migrations()) to run them.
func (s *GrantStore) Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "crumbkit-001",
			Description: "Create admin_grants table",
			SQL: `
                CREATE TABLE IF NOT EXISTS admin_grants (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    user_id TEXT NOT NULL,
                    role TEXT NOT NULL,
                    created_at TIMESTAMPTZ DEFAULT current_timestamp,
                    UNIQUE (user_id, role)
                )`,
		},
		{
			ID:          "crumbkit-002",
			Description: "Index admin_grants by user",
			SQL:         `CREATE INDEX IF NOT EXISTS idx_admin_grants_user_id ON admin_grants (user_id)`,
		},
	}
}
