package crumbkit

import (
	"strings"
)

// RolePrefix starts every role name.
const RolePrefix = "ROLE_"

// RoleMatcher handles role matching with wildcard support.
//
// Role names are underscore separated segments. Supported patterns:
//   - "*" matches all roles
//   - "ROLE_*_POST_EDIT" a "*" segment matches exactly one segment
//   - "ROLE_ADMIN_POST_*" matches ROLE_ADMIN_POST_EDIT but not
//     ROLE_ADMIN_POST_COMMENT_EDIT; patterns only match roles with the same
//     number of segments
//   - "ROLE_ADMIN_POST_EDIT" matches exactly
type RoleMatcher struct{}

// NewRoleMatcher creates a new RoleMatcher.
func NewRoleMatcher() *RoleMatcher {
	return &RoleMatcher{}
}

// Match checks if a role pattern matches a required role.
//
// Examples:
//
//	Match("*", "ROLE_ADMIN_POST_EDIT")                           // true - wildcard matches all
//	Match("ROLE_ADMIN_POST_*", "ROLE_ADMIN_POST_EDIT")           // true - segment wildcard
//	Match("ROLE_*_POST_EDIT", "ROLE_ADMIN_POST_EDIT")            // true - segment wildcard
//	Match("ROLE_ADMIN_POST_*", "ROLE_ADMIN_POST_COMMENT_EDIT")   // false - different segment count
//	Match("ROLE_ADMIN_POST_EDIT", "ROLE_ADMIN_POST_LIST")        // false - no match
func (rm *RoleMatcher) Match(pattern, role string) bool {
	// Exact match
	if pattern == role {
		return true
	}

	// Universal wildcard
	if pattern == "*" {
		return true
	}

	patternParts := strings.Split(pattern, "_")
	roleParts := strings.Split(role, "_")

	// Must have same number of segments
	if len(patternParts) != len(roleParts) {
		return false
	}

	for i, pp := range patternParts {
		if pp == "*" {
			continue
		}
		if pp != roleParts[i] {
			return false
		}
	}

	return true
}

// MatchAny checks if any of the patterns match the required role.
func (rm *RoleMatcher) MatchAny(patterns []string, role string) bool {
	for _, pattern := range patterns {
		if rm.Match(pattern, role) {
			return true
		}
	}
	return false
}

// ExpandRoles returns the roles in all that a set of patterns would grant.
func (rm *RoleMatcher) ExpandRoles(patterns []string, all []string) []string {
	var result []string
	for _, role := range all {
		if rm.MatchAny(patterns, role) {
			result = append(result, role)
		}
	}
	return result
}

// Validate checks if a role or role pattern is valid.
// A valid role is "*" or starts with ROLE_ and has non-empty segments of
// upper case letters, digits or "*".
func (rm *RoleMatcher) Validate(role string) error {
	if role == "" {
		return NewError(ErrInvalidRole, "role cannot be empty")
	}

	if role == "*" {
		return nil
	}

	if !strings.HasPrefix(role, RolePrefix) || len(role) == len(RolePrefix) {
		return NewError(ErrInvalidRole, "role must start with ROLE_").WithRole(role)
	}

	for _, part := range strings.Split(role, "_") {
		if part == "" {
			return NewError(ErrInvalidRole, "role segments cannot be empty").WithRole(role)
		}
		if part == "*" {
			continue
		}
		for _, c := range part {
			if !isValidRoleChar(c) {
				return NewError(ErrInvalidRole, "role contains invalid character").WithRole(role)
			}
		}
	}

	return nil
}

func isValidRoleChar(c rune) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// DefaultRoleMatcher is the default role matcher instance.
var DefaultRoleMatcher = NewRoleMatcher()

// MatchRole is a convenience function using the default matcher.
func MatchRole(pattern, role string) bool {
	return DefaultRoleMatcher.Match(pattern, role)
}

// MatchAnyRole is a convenience function using the default matcher.
func MatchAnyRole(patterns []string, role string) bool {
	return DefaultRoleMatcher.MatchAny(patterns, role)
}
