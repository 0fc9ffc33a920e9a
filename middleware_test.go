package crumbkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRoles fails every role lookup
type failingRoles struct{}

func (failingRoles) Roles(context.Context, string) ([]string, error) {
	return nil, errTestCollaborator
}

func testRoles() StaticRoles {
	return StaticRoles{
		"editor": {"ROLE_ADMIN_POST_LIST", "ROLE_ADMIN_POST_EDIT"},
		"root":   {"ROLE_SUPER_ADMIN"},
	}
}

func headerUserID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func serve(handler http.Handler, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/post/list", nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestMiddlewareLoadSecurity tests loading the security handler into context
func TestMiddlewareLoadSecurity(t *testing.T) {
	mw := NewMiddleware(testRoles(), WithUserIDExtractor(headerUserID))

	var got *RoleSecurityHandler
	handler := mw.LoadSecurity()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSecurityHandler(r.Context())
	}))

	t.Run("Known user", func(t *testing.T) {
		got = nil
		rec := serve(handler, "editor")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "editor", got.UserID())
		assert.True(t, got.IsGranted("admin.post", AttributeEdit))
		assert.False(t, got.IsGranted("admin.post", AttributeDelete))
	})

	t.Run("Unknown user", func(t *testing.T) {
		got = nil
		rec := serve(handler, "guest")
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Empty(t, got.Roles())
	})

	t.Run("No user", func(t *testing.T) {
		got = nil
		rec := serve(handler, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, got)
	})
}

// TestMiddlewareLoadSecurityDefaultExtractor tests the context user ID extractor
func TestMiddlewareLoadSecurityDefaultExtractor(t *testing.T) {
	mw := NewMiddleware(testRoles())

	var got *RoleSecurityHandler
	handler := mw.LoadSecurity()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSecurityHandler(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), "root"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.True(t, got.IsSuperAdmin())
}

// TestMiddlewareRequireGrant tests grant enforcement
func TestMiddlewareRequireGrant(t *testing.T) {
	mw := NewMiddleware(testRoles(), WithUserIDExtractor(headerUserID))

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		userID    string
		attribute string
		want      int
	}{
		{"Granted", "editor", AttributeEdit, http.StatusNoContent},
		{"Denied", "editor", AttributeDelete, http.StatusForbidden},
		{"Super admin", "root", AttributeDelete, http.StatusNoContent},
		{"Unknown user", "guest", AttributeList, http.StatusForbidden},
		{"No user", "", AttributeList, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.RequireGrant("admin.post", tt.attribute)(ok)
			assert.Equal(t, tt.want, serve(handler, tt.userID).Code)
		})
	}
}

// TestMiddlewareRequireGrantReusesLoadedHandler tests that a loaded handler
// is not reloaded
func TestMiddlewareRequireGrantReusesLoadedHandler(t *testing.T) {
	roles := &countingRoles{RoleProvider: testRoles()}
	mw := NewMiddleware(roles, WithUserIDExtractor(headerUserID))

	handler := mw.LoadSecurity()(mw.RequireGrant("admin.post", AttributeList)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	rec := serve(handler, "editor")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, roles.calls)
}

// TestMiddlewareErrors tests role lookup failures
func TestMiddlewareErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()

	var handled error
	mw := NewMiddleware(failingRoles{},
		WithUserIDExtractor(headerUserID),
		WithMiddlewareLogger(logger),
	)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(mw.LoadSecurity()(next), "editor")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "editor", entry.Data["user_id"])

	mw = NewMiddleware(failingRoles{},
		WithUserIDExtractor(headerUserID),
		WithMiddlewareLogger(logger),
		WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			handled = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)

	rec = serve(mw.RequireGrant("admin.post", AttributeList)(next), "editor")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.ErrorIs(t, handled, errTestCollaborator)
}

// TestMiddlewareSecurityOptions tests options passed to loaded handlers
func TestMiddlewareSecurityOptions(t *testing.T) {
	mw := NewMiddleware(StaticRoles{"ops": {"ROLE_OPS"}},
		WithUserIDExtractor(headerUserID),
		WithSecurityOptions(WithSuperAdminRoles("ROLE_OPS")),
	)

	handler := mw.RequireGrant("admin.post", AttributeDelete)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, http.StatusOK, serve(handler, "ops").Code)
}

// countingRoles counts role lookups
type countingRoles struct {
	RoleProvider
	calls int
}

func (c *countingRoles) Roles(ctx context.Context, userID string) ([]string, error) {
	c.calls++
	return c.RoleProvider.Roles(ctx, userID)
}
