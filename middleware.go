package crumbkit

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Middleware loads user grants for HTTP handlers.
type Middleware struct {
	roles        RoleProvider
	getUserID    func(*http.Request) string
	errorHandler func(http.ResponseWriter, *http.Request, error)
	security     []SecurityOption
	logger       logrus.FieldLogger
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// NewMiddleware creates a new Middleware instance.
//
// Example:
//
//	mw := crumbkit.NewMiddleware(store,
//	    crumbkit.WithUserIDExtractor(func(r *http.Request) string {
//	        return r.Header.Get("X-User-ID")
//	    }),
//	)
func NewMiddleware(roles RoleProvider, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		roles:        roles,
		getUserID:    defaultGetUserID,
		errorHandler: defaultErrorHandler,
		logger:       logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithUserIDExtractor sets a custom function to extract user ID from request.
func WithUserIDExtractor(fn func(*http.Request) string) MiddlewareOption {
	return func(m *Middleware) {
		m.getUserID = fn
	}
}

// WithErrorHandler sets a custom error handler for middleware.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

// WithSecurityOptions sets the options of the loaded security handlers.
func WithSecurityOptions(opts ...SecurityOption) MiddlewareOption {
	return func(m *Middleware) {
		m.security = opts
	}
}

// WithMiddlewareLogger sets the logger used for grant loading failures.
func WithMiddlewareLogger(logger logrus.FieldLogger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func defaultGetUserID(r *http.Request) string {
	return GetUserID(r.Context())
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if IsUnauthorized(err) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// LoadSecurity creates middleware that loads the user's RoleSecurityHandler
// into context. Requests without a user continue without a handler.
//
// Example:
//
//	router.With(mw.LoadSecurity()).Get("/admin/post/list", listHandler)
//
//	func listHandler(w http.ResponseWriter, r *http.Request) {
//	    security := crumbkit.GetSecurityHandler(r.Context())
//	    admin := newPostAdmin(security)
//	    crumbs, err := builder.Breadcrumbs(admin, "list")
//	}
func (m *Middleware) LoadSecurity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := m.getUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			handler, err := m.load(r, userID)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSecurityHandler(r.Context(), handler)))
		})
	}
}

// RequireGrant creates middleware that requires attribute on the admin
// identified by adminCode.
//
// Example:
//
//	router.With(mw.RequireGrant("admin.post", "EDIT")).
//	    Post("/admin/post/{id}/edit", editHandler)
func (m *Middleware) RequireGrant(adminCode, attribute string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := m.getUserID(r)
			if userID == "" {
				m.errorHandler(w, r, NewError(ErrUnauthorized, "no user in request").WithAdmin(adminCode))
				return
			}

			handler := GetSecurityHandler(r.Context())
			if handler == nil || handler.UserID() != userID {
				var err error
				handler, err = m.load(r, userID)
				if err != nil {
					m.errorHandler(w, r, err)
					return
				}
			}

			if !handler.IsGranted(adminCode, attribute) {
				m.errorHandler(w, r, NewError(ErrUnauthorized, "missing required grant").
					WithAdmin(adminCode).
					WithRole(RoleFor(adminCode, attribute)).
					WithUser(userID))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSecurityHandler(r.Context(), handler)))
		})
	}
}

func (m *Middleware) load(r *http.Request, userID string) (*RoleSecurityHandler, error) {
	roles, err := m.roles.Roles(r.Context(), userID)
	if err != nil {
		m.logger.WithError(err).WithField("user_id", userID).Warn("loading grants failed")
		return nil, err
	}
	return NewRoleSecurityHandler(userID, roles, m.security...), nil
}
