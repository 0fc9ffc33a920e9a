// Package crumbkit builds navigational breadcrumb trails and filter form types
// for administration panels.
//
// An administration panel is organised around admins: one admin per managed
// resource type (posts, comments, users, ...). Admins can be nested, so a
// comment admin can be the child of a post admin while a specific post is
// selected. crumbkit walks that hierarchy and produces the trail the panel shows
// at the top of every page:
//
//	Dashboard / Posts / "My first post" / Comments / Edit
//
// # Core Concepts
//
// Admin: A descriptor for one managed resource. It exposes its routes, its
// access checks, its current subject (the record being edited) and, when a
// nested admin is active, its current child.
//
// Menu: An arena of menu items addressed by ItemID. Every breadcrumb is a
// MenuItem; related quick actions (create, edit, history, ...) hang off each
// breadcrumb as its dropdown.
//
// Builder: The stateless component that turns an (admin, action) pair into an
// ordered []*MenuItem, root container excluded.
//
// Pool: Admin definitions registered by code at startup. Pool.Chain creates
// the request admins from the root ancestor down to a nested admin.
//
// # Basic Usage
//
//	router := crumbkit.NewRouter().
//	    Add("list", "/post/list").
//	    Add("create", "/post/create").
//	    Add("edit", "/post/{id}/edit")
//
//	dashboard := crumbkit.NewRouter().Add(crumbkit.DashboardRoute, "/admin/dashboard")
//
//	admin := crumbkit.NewResourceAdmin(crumbkit.ResourceAdminConfig{
//	    Code:           "admin.post",
//	    ClassnameLabel: "Post",
//	    Routes:         router,
//	    Dashboard:      dashboard,
//	    Security:       crumbkit.NewRoleSecurityHandler(userID, roles),
//	})
//
//	builder, err := crumbkit.NewBuilder(crumbkit.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	crumbs, err := builder.Breadcrumbs(admin, "list")
//
// # Configuration
//
// The builder accepts a small option set:
//
//   - child_admin_route: route linked from the parent subject breadcrumb (default "edit")
//   - max_depth: maximum admin nesting depth (default 10)
//   - subclass_create_token: token used in sub class create labels (default "crease")
//
// Options can be resolved from a plain map with ResolveConfig or loaded from a
// file with LoadConfigFile. Unknown keys are rejected with ErrInvalidConfig.
//
// # Security
//
// RoleSecurityHandler grants attributes (LIST, EDIT, ...) when the user holds
// the matching role, ROLE_{CODE}_{ATTRIBUTE}. Roles can be stored in the
// database with GrantStore and loaded per request by Middleware.
//
// # Filter Types
//
// ChoiceFilterType and ExistsOperatorType describe the sub fields used by list
// filters. They only resolve options; rendering is left to the caller.
package crumbkit
