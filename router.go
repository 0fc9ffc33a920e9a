package crumbkit

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Router holds named route patterns such as "/post/{id}/edit".
// It is created at startup and should be treated as immutable after initialization.
type Router struct {
	mu     sync.RWMutex
	routes map[string]string
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]string),
	}
}

// Add registers a route pattern under name, replacing any previous one.
//
// Example:
//
//	router := crumbkit.NewRouter().
//	    Add("list", "/post/list").
//	    Add("edit", "/post/{id}/edit")
func (r *Router) Add(name, pattern string) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes[name] = pattern
	return r
}

// HasRoute checks if a route is defined.
func (r *Router) HasRoute(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.routes[name]
	return ok
}

// Routes returns all route names, sorted.
func (r *Router) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the URL of a route. Placeholders are filled from params;
// the remaining params are appended as the query string.
func (r *Router) Generate(name string, params map[string]string) (string, error) {
	r.mu.RLock()
	pattern, ok := r.routes[name]
	r.mu.RUnlock()

	if !ok {
		return "", NewError(ErrRouteNotFound, fmt.Sprintf("route %q not defined", name)).WithOption(name)
	}

	var (
		sb   strings.Builder
		used = make(map[string]bool)
		rest = pattern
	)

	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			sb.WriteString(rest)
			break
		}
		end += start

		key := rest[start+1 : end]
		value, ok := params[key]
		if !ok || value == "" {
			return "", NewError(ErrMissingParameter, fmt.Sprintf("route %q requires parameter %q", name, key)).
				WithOption(name)
		}

		sb.WriteString(rest[:start])
		sb.WriteString(url.PathEscape(value))
		used[key] = true
		rest = rest[end+1:]
	}

	query := url.Values{}
	for key, value := range params {
		if !used[key] {
			query.Set(key, value)
		}
	}
	if len(query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(query.Encode())
	}

	return sb.String(), nil
}

// GenerateURL is Generate; it lets a Router serve as an admin RouteResolver.
func (r *Router) GenerateURL(name string, params map[string]string) (string, error) {
	return r.Generate(name, params)
}
