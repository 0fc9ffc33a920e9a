package crumbkit

import (
	"strings"
)

// DefaultSuperAdminRole is granted every attribute on every admin.
const DefaultSuperAdminRole = "ROLE_SUPER_ADMIN"

// AttributeAll grants every attribute on one admin.
const AttributeAll = "ALL"

// RoleSecurityHandler grants admin attributes from the roles of one user.
//
// An attribute is granted on an admin when the user holds
// ROLE_{CODE}_{ATTRIBUTE} or ROLE_{CODE}_ALL, where CODE is the admin code
// upper-cased with "." and "-" replaced by "_". Role patterns with wildcards
// are honoured, see RoleMatcher.
type RoleSecurityHandler struct {
	userID          string
	roles           []string
	superAdminRoles []string
	matcher         *RoleMatcher
}

// SecurityOption configures a RoleSecurityHandler.
type SecurityOption func(*RoleSecurityHandler)

// WithSuperAdminRoles replaces the roles that are granted everything.
func WithSuperAdminRoles(roles ...string) SecurityOption {
	return func(h *RoleSecurityHandler) {
		h.superAdminRoles = roles
	}
}

// WithRoleMatcher sets the matcher used to compare roles.
func WithRoleMatcher(matcher *RoleMatcher) SecurityOption {
	return func(h *RoleSecurityHandler) {
		h.matcher = matcher
	}
}

// NewRoleSecurityHandler creates a RoleSecurityHandler for a user.
//
// Example:
//
//	handler := crumbkit.NewRoleSecurityHandler("user123", []string{
//	    "ROLE_ADMIN_POST_LIST",
//	    "ROLE_ADMIN_POST_EDIT",
//	})
//	handler.IsGranted("admin.post", "EDIT") // true
func NewRoleSecurityHandler(userID string, roles []string, opts ...SecurityOption) *RoleSecurityHandler {
	h := &RoleSecurityHandler{
		userID:          userID,
		roles:           roles,
		superAdminRoles: []string{DefaultSuperAdminRole},
		matcher:         DefaultRoleMatcher,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// UserID returns the user ID this handler is for.
func (h *RoleSecurityHandler) UserID() string {
	return h.userID
}

// Roles returns the roles of the user.
func (h *RoleSecurityHandler) Roles() []string {
	return h.roles
}

// IsSuperAdmin checks if the user holds one of the super admin roles.
func (h *RoleSecurityHandler) IsSuperAdmin() bool {
	for _, role := range h.superAdminRoles {
		if h.HasRole(role) {
			return true
		}
	}
	return false
}

// HasRole checks if any of the user's roles matches role.
func (h *RoleSecurityHandler) HasRole(role string) bool {
	return h.matcher.MatchAny(h.roles, role)
}

// IsGranted checks if attribute is granted on the admin identified by adminCode.
// Attributes that already are role names (ROLE_...) are checked as is; other
// attributes are denied on an empty adminCode.
func (h *RoleSecurityHandler) IsGranted(adminCode, attribute string) bool {
	if h.IsSuperAdmin() {
		return true
	}

	if strings.HasPrefix(attribute, RolePrefix) {
		return h.HasRole(attribute)
	}

	if adminCode == "" {
		return false
	}

	return h.HasRole(RoleFor(adminCode, attribute)) ||
		h.HasRole(RoleFor(adminCode, AttributeAll))
}

// GrantedAttributes returns the attributes in attributes granted on an admin.
//
// Example:
//
//	attrs := handler.GrantedAttributes("admin.post", []string{"LIST", "EDIT", "DELETE"})
//	// attrs might be ["LIST", "EDIT"]
func (h *RoleSecurityHandler) GrantedAttributes(adminCode string, attributes []string) []string {
	var granted []string
	for _, attribute := range attributes {
		if h.IsGranted(adminCode, attribute) {
			granted = append(granted, attribute)
		}
	}
	return granted
}

// BaseRole returns the role prefix of an admin, e.g. "ROLE_ADMIN_POST_".
func BaseRole(adminCode string) string {
	code := strings.NewReplacer(".", "_", "-", "_").Replace(adminCode)
	return RolePrefix + strings.ToUpper(code) + "_"
}

// RoleFor returns the role granting attribute on an admin,
// e.g. RoleFor("admin.post", "EDIT") is "ROLE_ADMIN_POST_EDIT".
func RoleFor(adminCode, attribute string) string {
	return BaseRole(adminCode) + strings.ToUpper(attribute)
}

// NoopSecurityHandler grants everything.
type NoopSecurityHandler struct{}

// IsGranted always returns true.
func (NoopSecurityHandler) IsGranted(_, _ string) bool {
	return true
}
