package crumbkit

import (
	"fmt"
)

// DefaultAccessMapping maps actions to the attributes HasAccess checks.
// All attributes of an action must be granted.
var DefaultAccessMapping = map[string][]string{
	ActionList:    {AttributeList},
	ActionCreate:  {AttributeCreate},
	ActionEdit:    {AttributeEdit},
	ActionHistory: {AttributeEdit},
	ActionShow:    {AttributeView},
	"delete":      {AttributeDelete},
	"batch":       {AttributeDelete},
	"export":      {AttributeExport},
	ActionACL:     {AttributeMaster},
}

// ResourceAdminConfig describes a ResourceAdmin.
type ResourceAdminConfig struct {
	Code              string
	ClassnameLabel    string
	TranslationDomain string

	// Routes holds the admin routes ("list", "edit", ...).
	Routes *Router
	// Dashboard generates application wide routes such as DashboardRoute.
	Dashboard URLGenerator

	Security   SecurityHandler
	Translator LabelTranslator
	Menus      MenuFactory

	SubClasses  []string
	ShowFields  []string
	ACLEnabled  bool
	IDParameter string

	// AccessMapping entries are merged over DefaultAccessMapping.
	AccessMapping map[string][]string

	// Stringer renders the subject for breadcrumb labels; fmt.Sprint by default.
	Stringer func(subject any) string
}

// ResourceAdmin is a configurable Admin.
type ResourceAdmin struct {
	config   ResourceAdminConfig
	access   map[string][]string
	parent   Admin
	children map[string]*ResourceAdmin
	current  Admin
	subject  any
	request  Request
}

// NewResourceAdmin creates an admin from its config, filling in defaults:
// an empty router, noop security, noop labels, in-memory menus and "id" as
// id parameter.
func NewResourceAdmin(config ResourceAdminConfig) *ResourceAdmin {
	if config.Routes == nil {
		config.Routes = NewRouter()
	}
	if config.Dashboard == nil {
		config.Dashboard = NewRouter().Add(DashboardRoute, "/")
	}
	if config.Security == nil {
		config.Security = NoopSecurityHandler{}
	}
	if config.Translator == nil {
		config.Translator = NoopLabelTranslator{}
	}
	if config.Menus == nil {
		config.Menus = DefaultMenuFactory
	}
	if config.IDParameter == "" {
		config.IDParameter = SubjectIDParam
	}
	if config.Stringer == nil {
		config.Stringer = func(subject any) string {
			if subject == nil {
				return ""
			}
			return fmt.Sprint(subject)
		}
	}

	access := make(map[string][]string, len(DefaultAccessMapping)+len(config.AccessMapping))
	for action, attrs := range DefaultAccessMapping {
		access[action] = attrs
	}
	for action, attrs := range config.AccessMapping {
		access[action] = attrs
	}

	return &ResourceAdmin{
		config:   config,
		access:   access,
		children: make(map[string]*ResourceAdmin),
		request:  Params{},
	}
}

// AddChild registers child as a nested admin of a.
func (a *ResourceAdmin) AddChild(child *ResourceAdmin) *ResourceAdmin {
	child.parent = a
	a.children[child.Code()] = child
	return a
}

// Child returns the registered child admin with the given code, or nil.
func (a *ResourceAdmin) Child(code string) *ResourceAdmin {
	return a.children[code]
}

// SetCurrentChild marks the registered child with the given code as active.
// An empty code clears the current child.
func (a *ResourceAdmin) SetCurrentChild(code string) error {
	if code == "" {
		a.current = nil
		return nil
	}

	child, ok := a.children[code]
	if !ok {
		return NewError(ErrInvalidAdmin, fmt.Sprintf("no child admin %q", code)).WithAdmin(a.Code())
	}
	a.current = child
	return nil
}

// SetParent sets the parent admin without registering a as its child.
func (a *ResourceAdmin) SetParent(parent Admin) *ResourceAdmin {
	a.parent = parent
	return a
}

// SetSubject binds the record the admin is working on.
func (a *ResourceAdmin) SetSubject(subject any) *ResourceAdmin {
	a.subject = subject
	return a
}

// SetRequest sets the current request.
func (a *ResourceAdmin) SetRequest(request Request) *ResourceAdmin {
	a.request = request
	return a
}

// Code returns the admin code.
func (a *ResourceAdmin) Code() string { return a.config.Code }

// ClassnameLabel returns the label used to build label keys.
func (a *ResourceAdmin) ClassnameLabel() string { return a.config.ClassnameLabel }

// TranslationDomain returns the admin translation domain.
func (a *ResourceAdmin) TranslationDomain() string { return a.config.TranslationDomain }

// Parent returns the parent admin, or nil for a root admin.
func (a *ResourceAdmin) Parent() Admin {
	if a.parent == nil {
		return nil
	}
	return a.parent
}

// CurrentChild returns the active child admin, or nil.
func (a *ResourceAdmin) CurrentChild() Admin {
	if a.current == nil {
		return nil
	}
	return a.current
}

// HasSubject reports whether a subject is bound.
func (a *ResourceAdmin) HasSubject() bool { return a.subject != nil }

// Subject returns the bound subject, or nil.
func (a *ResourceAdmin) Subject() any { return a.subject }

// SubjectString renders subject for a breadcrumb label.
func (a *ResourceAdmin) SubjectString(subject any) string { return a.config.Stringer(subject) }

// SubClasses returns the sub classes offered on create.
func (a *ResourceAdmin) SubClasses() []string { return a.config.SubClasses }

// ShowFields returns the fields of the show view.
func (a *ResourceAdmin) ShowFields() []string { return a.config.ShowFields }

// ACLEnabled reports whether ACL management is enabled.
func (a *ResourceAdmin) ACLEnabled() bool { return a.config.ACLEnabled }

// IDParameter returns the request parameter holding the subject ID.
func (a *ResourceAdmin) IDParameter() string { return a.config.IDParameter }

// Request returns the current request.
func (a *ResourceAdmin) Request() Request { return a.request }

// MenuFactory returns the menu factory.
func (a *ResourceAdmin) MenuFactory() MenuFactory { return a.config.Menus }

// RouteGenerator returns the application route generator.
func (a *ResourceAdmin) RouteGenerator() URLGenerator { return a.config.Dashboard }

// LabelTranslator returns the label translator.
func (a *ResourceAdmin) LabelTranslator() LabelTranslator { return a.config.Translator }

// HasRoute checks if the admin defines a route.
func (a *ResourceAdmin) HasRoute(name string) bool {
	return a.config.Routes.HasRoute(name)
}

// GenerateURL builds the URL of an admin route.
func (a *ResourceAdmin) GenerateURL(name string, params map[string]string) (string, error) {
	return a.config.Routes.Generate(name, params)
}

// HasAccess checks that every attribute mapped to action is granted.
// Unmapped actions are denied.
func (a *ResourceAdmin) HasAccess(action string, subject any) (bool, error) {
	attrs, ok := a.access[action]
	if !ok {
		return false, nil
	}

	for _, attr := range attrs {
		granted, err := a.IsGranted(attr, subject)
		if err != nil || !granted {
			return false, err
		}
	}
	return true, nil
}

// IsGranted checks one attribute through the security handler.
func (a *ResourceAdmin) IsGranted(attribute string, _ any) (bool, error) {
	return a.config.Security.IsGranted(a.Code(), attribute), nil
}
