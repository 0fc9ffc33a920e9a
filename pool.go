package crumbkit

import (
	"fmt"
	"sort"
	"sync"
)

// Pool holds the admin definitions of an application by code.
// It is created at startup and should be treated as immutable after initialization.
type Pool struct {
	mu     sync.RWMutex
	admins map[string]*poolEntry
}

type poolEntry struct {
	config   ResourceAdminConfig
	parent   string
	children []string
}

// NewPool creates an empty admin pool.
func NewPool() *Pool {
	return &Pool{
		admins: make(map[string]*poolEntry),
	}
}

// Register adds an admin definition. Codes must be non-empty and unique.
//
// Example:
//
//	pool := crumbkit.NewPool()
//	pool.Register(crumbkit.ResourceAdminConfig{Code: "admin.post", ClassnameLabel: "Post", Routes: postRoutes})
//	pool.Register(crumbkit.ResourceAdminConfig{Code: "admin.comment", ClassnameLabel: "Comment", Routes: commentRoutes})
//	pool.AddChild("admin.post", "admin.comment")
func (p *Pool) Register(config ResourceAdminConfig) error {
	if config.Code == "" {
		return NewError(ErrInvalidAdmin, "admin code cannot be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.admins[config.Code]; exists {
		return NewError(ErrAdminExists, fmt.Sprintf("admin %q already registered", config.Code)).WithAdmin(config.Code)
	}
	p.admins[config.Code] = &poolEntry{config: config}
	return nil
}

// AddChild nests the admin childCode under parentCode.
// An admin has at most one parent and may not become its own ancestor.
func (p *Pool) AddChild(parentCode, childCode string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	parent, ok := p.admins[parentCode]
	if !ok {
		return NewError(ErrInvalidAdmin, fmt.Sprintf("admin %q not registered", parentCode)).WithAdmin(parentCode)
	}
	child, ok := p.admins[childCode]
	if !ok {
		return NewError(ErrInvalidAdmin, fmt.Sprintf("admin %q not registered", childCode)).WithAdmin(childCode)
	}
	if child.parent != "" {
		return NewError(ErrInvalidAdmin, fmt.Sprintf("admin %q already nested under %q", childCode, child.parent)).
			WithAdmin(childCode)
	}

	for code := parentCode; code != ""; code = p.admins[code].parent {
		if code == childCode {
			return NewError(ErrCyclicHierarchy, "admin would be its own ancestor").WithAdmin(childCode)
		}
	}

	child.parent = parentCode
	parent.children = append(parent.children, childCode)
	return nil
}

// Has checks if an admin is registered.
func (p *Pool) Has(code string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.admins[code]
	return ok
}

// Codes returns all registered admin codes, sorted.
func (p *Pool) Codes() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	codes := make([]string, 0, len(p.admins))
	for code := range p.admins {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Parent returns the parent code of an admin, or "" for a root admin.
func (p *Pool) Parent(code string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if entry, ok := p.admins[code]; ok {
		return entry.parent
	}
	return ""
}

// Children returns the child codes of an admin in registration order.
func (p *Pool) Children(code string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.admins[code]
	if !ok {
		return nil
	}
	return append([]string(nil), entry.children...)
}

// Chain creates fresh admins from the root ancestor of code down to code.
// Each parent has the next admin as current child, and every admin gets
// request. mutate runs on each config copy, e.g. to set per-request Security.
// The last admin of the chain is the one for code.
//
// Example:
//
//	chain, err := pool.Chain("admin.comment", crumbkit.RequestParams(r),
//	    func(c *crumbkit.ResourceAdminConfig) { c.Security = handler })
//	comment := chain[len(chain)-1]
//	crumbs, err := builder.Breadcrumbs(comment, "list")
func (p *Pool) Chain(code string, request Request, mutate ...func(*ResourceAdminConfig)) ([]*ResourceAdmin, error) {
	p.mu.RLock()
	var configs []ResourceAdminConfig
	for current := code; current != ""; {
		entry, ok := p.admins[current]
		if !ok {
			p.mu.RUnlock()
			return nil, NewError(ErrInvalidAdmin, fmt.Sprintf("admin %q not registered", current)).WithAdmin(current)
		}
		configs = append(configs, entry.config)
		current = entry.parent
	}
	p.mu.RUnlock()

	chain := make([]*ResourceAdmin, 0, len(configs))
	for i := len(configs) - 1; i >= 0; i-- {
		config := configs[i]
		for _, m := range mutate {
			m(&config)
		}

		admin := NewResourceAdmin(config)
		if request != nil {
			admin.SetRequest(request)
		}

		if n := len(chain); n > 0 {
			parent := chain[n-1]
			parent.AddChild(admin)
			if err := parent.SetCurrentChild(admin.Code()); err != nil {
				return nil, err
			}
		}
		chain = append(chain, admin)
	}

	return chain, nil
}
