package crumbkit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestError tests the contextual error type
func TestError(t *testing.T) {
	err := NewError(ErrRouteNotFound, "route \"show\" not defined").
		WithAdmin("admin.post").
		WithAction("show").
		WithOption("show").
		WithRole("ROLE_ADMIN_POST_VIEW").
		WithUser("user1")

	assert.Equal(t, "crumbkit: route not found: route \"show\" not defined", err.Error())
	assert.ErrorIs(t, err, ErrRouteNotFound)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "admin.post", err.Admin)
	assert.Equal(t, "show", err.Action)
	assert.Equal(t, "show", err.Option)
	assert.Equal(t, "ROLE_ADMIN_POST_VIEW", err.Role)
	assert.Equal(t, "user1", err.UserID)

	assert.Equal(t, "crumbkit: unauthorized", NewError(ErrUnauthorized, "").Error())
}

// TestErrorHelpers tests the error predicates through wrapping
func TestErrorHelpers(t *testing.T) {
	wrap := func(err error) error {
		return fmt.Errorf("building trail: %w", NewError(err, "context"))
	}

	assert.True(t, IsConfigError(wrap(ErrInvalidConfig)))
	assert.True(t, IsCyclicHierarchy(wrap(ErrCyclicHierarchy)))
	assert.True(t, IsMaxDepthExceeded(wrap(ErrMaxDepthExceeded)))
	assert.True(t, IsRouteNotFound(wrap(ErrRouteNotFound)))
	assert.True(t, IsUnauthorized(wrap(ErrUnauthorized)))

	assert.False(t, IsConfigError(errors.New("other")))
	assert.False(t, IsUnauthorized(nil))
}
