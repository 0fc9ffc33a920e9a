package crumbkit

// RouteResolver answers route existence and builds URLs for one admin.
type RouteResolver interface {
	HasRoute(name string) bool
	GenerateURL(name string, params map[string]string) (string, error)
}

// URLGenerator builds URLs for application wide routes such as the dashboard.
type URLGenerator interface {
	Generate(name string, params map[string]string) (string, error)
}

// PermissionChecker answers access questions for one admin.
// HasAccess maps an action to its attributes; IsGranted checks one attribute.
type PermissionChecker interface {
	HasAccess(action string, subject any) (bool, error)
	IsGranted(attribute string, subject any) (bool, error)
}

// SecurityHandler decides whether an attribute is granted on an admin.
type SecurityHandler interface {
	IsGranted(adminCode, attribute string) bool
}

// LabelTranslator turns a label key into the label shown to the user.
type LabelTranslator interface {
	Label(name, context, kind string) string
}

// MenuFactory creates the root of a new menu.
type MenuFactory interface {
	CreateItem(name string) *Menu
}

// MenuFactoryFunc adapts a function to MenuFactory.
type MenuFactoryFunc func(name string) *Menu

// CreateItem calls f(name).
func (f MenuFactoryFunc) CreateItem(name string) *Menu {
	return f(name)
}

// DefaultMenuFactory creates plain in-memory menus.
var DefaultMenuFactory MenuFactory = MenuFactoryFunc(NewMenu)

// Request exposes the parameters of the current request.
type Request interface {
	Get(key string) string
}

// Admin describes one managed resource type.
//
// An admin is a root admin when Parent returns nil. CurrentChild returns the
// nested admin that is active for the current request, or nil.
type Admin interface {
	RouteResolver
	PermissionChecker

	// Code uniquely identifies the admin; it is used for cycle detection.
	Code() string
	ClassnameLabel() string
	TranslationDomain() string

	Parent() Admin
	CurrentChild() Admin

	HasSubject() bool
	Subject() any
	SubjectString(subject any) string

	SubClasses() []string
	ShowFields() []string
	ACLEnabled() bool

	IDParameter() string
	Request() Request

	MenuFactory() MenuFactory
	RouteGenerator() URLGenerator
	LabelTranslator() LabelTranslator
}
