package crumbkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContextUserID tests user ID context helpers
func TestContextUserID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetUserID(ctx))

	ctx = WithUserID(ctx, "user1")
	assert.Equal(t, "user1", GetUserID(ctx))
}

// TestContextSecurityHandler tests security handler context helpers
func TestContextSecurityHandler(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSecurityHandler(ctx))

	handler := NewRoleSecurityHandler("user1", nil)
	ctx = WithSecurityHandler(ctx, handler)
	assert.Same(t, handler, GetSecurityHandler(ctx))
}

// TestParams tests the static request
func TestParams(t *testing.T) {
	params := Params{"id": "42"}
	assert.Equal(t, "42", params.Get("id"))
	assert.Equal(t, "", params.Get("subclass"))
}

// TestRequestParams tests the HTTP request adapter
func TestRequestParams(t *testing.T) {
	var got Request

	mux := http.NewServeMux()
	mux.HandleFunc("GET /post/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		got = RequestParams(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/post/42/edit?subclass=Image&id=7", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)

	if assert.NotNil(t, got) {
		assert.Equal(t, "42", got.Get("id"))
		assert.Equal(t, "Image", got.Get("subclass"))
		assert.Equal(t, "", got.Get("missing"))
	}
}
