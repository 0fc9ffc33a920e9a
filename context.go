package crumbkit

import (
	"context"
	"net/http"
)

// Context keys for crumbkit values.
type contextKey string

const (
	contextKeyUserID          contextKey = "crumbkit:user_id"
	contextKeySecurityHandler contextKey = "crumbkit:security_handler"
)

// WithUserID adds a user ID to the context.
// This is the user whose grants are loaded.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}

// GetUserID retrieves the user ID from context.
// Returns empty string if not set.
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(contextKeyUserID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithSecurityHandler adds a RoleSecurityHandler to the context.
// This is set by middleware and can be retrieved in handlers.
func WithSecurityHandler(ctx context.Context, handler *RoleSecurityHandler) context.Context {
	return context.WithValue(ctx, contextKeySecurityHandler, handler)
}

// GetSecurityHandler retrieves the RoleSecurityHandler from context.
// Returns nil if not set.
func GetSecurityHandler(ctx context.Context) *RoleSecurityHandler {
	if v := ctx.Value(contextKeySecurityHandler); v != nil {
		if h, ok := v.(*RoleSecurityHandler); ok {
			return h
		}
	}
	return nil
}

// Params is a static Request.
type Params map[string]string

// Get returns the parameter value, or "".
func (p Params) Get(key string) string {
	return p[key]
}

type httpRequest struct {
	r *http.Request
}

// RequestParams adapts an HTTP request to Request. Path values take
// precedence over query parameters.
//
// Example:
//
//	// For route /post/{id}/edit
//	admin.SetRequest(crumbkit.RequestParams(r))
func RequestParams(r *http.Request) Request {
	return httpRequest{r: r}
}

func (h httpRequest) Get(key string) string {
	if v := h.r.PathValue(key); v != "" {
		return v
	}
	return h.r.URL.Query().Get(key)
}
