package crumbkit

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Well known actions.
const (
	ActionList    = "list"
	ActionCreate  = "create"
	ActionEdit    = "edit"
	ActionShow    = "show"
	ActionHistory = "history"
	ActionACL     = "acl"
)

// Dashboard link of every trail.
const (
	DashboardRoute  = "admin_dashboard"
	DashboardLabel  = "link_breadcrumb_dashboard"
	AdminDomain     = "AdminBundle"
	RootItemName    = "root"
	LabelContext    = "breadcrumb"
	LabelKind       = "link"
	SubClassParam   = "subclass"
	SubjectIDParam  = "id"
	subClassPattern = "%s_%s_%s"
)

// Builder builds breadcrumb trails. It is stateless apart from its Config and
// safe for concurrent use.
type Builder struct {
	config Config
	logger logrus.FieldLogger
}

// BuilderOption configures the Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for debug output and collaborator failures.
func WithLogger(logger logrus.FieldLogger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder from a resolved Config.
//
// Example:
//
//	builder, err := crumbkit.NewBuilder(crumbkit.DefaultConfig(),
//	    crumbkit.WithLogger(logrus.WithField("component", "breadcrumbs")),
//	)
func NewBuilder(config Config, opts ...BuilderOption) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		config: config,
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// NewBuilderFromOptions resolves options with ResolveConfig and creates a Builder.
func NewBuilderFromOptions(options map[string]any, opts ...BuilderOption) (*Builder, error) {
	config, err := ResolveConfig(options)
	if err != nil {
		return nil, err
	}
	return NewBuilder(config, opts...)
}

// Config returns the builder options.
func (b *Builder) Config() Config {
	return b.config
}

// trail records the breadcrumb items top-down while the menu is built.
type trail struct {
	items []*MenuItem
	seen  map[string]struct{}
}

func (t *trail) push(item *MenuItem) {
	t.items = append(t.items, item)
}

// Breadcrumbs returns the trail for action on admin, from the first item below
// the root container down to the current page.
//
// Child admins are resolved to their top-most parent first; the active child
// chain is then followed down from there.
//
// Example:
//
//	crumbs, err := builder.Breadcrumbs(commentAdmin, "edit")
//	for _, crumb := range crumbs {
//	    fmt.Println(crumb.Name, crumb.URI)
//	}
func (b *Builder) Breadcrumbs(admin Admin, action string) ([]*MenuItem, error) {
	if admin == nil {
		return nil, NewError(ErrInvalidAdmin, "admin cannot be nil")
	}
	if action == "" {
		return nil, NewError(ErrInvalidAction, "action cannot be empty").WithAdmin(admin.Code())
	}

	root, err := b.rootAdmin(admin)
	if err != nil {
		return nil, err
	}

	t := &trail{seen: make(map[string]struct{})}
	if _, err := b.buildTree(root, action, nil, t, 0); err != nil {
		return nil, err
	}

	// The first trail item is the root container.
	return t.items[1:], nil
}

func (b *Builder) rootAdmin(admin Admin) (Admin, error) {
	if admin.Code() == "" {
		return nil, NewError(ErrInvalidAdmin, "admin code cannot be empty")
	}
	seen := map[string]struct{}{admin.Code(): {}}

	for depth := 0; admin.Parent() != nil; depth++ {
		if depth >= b.config.MaxDepth {
			return nil, NewError(ErrMaxDepthExceeded, fmt.Sprintf("parent chain deeper than %d", b.config.MaxDepth)).
				WithAdmin(admin.Code())
		}

		child := admin.Code()
		admin = admin.Parent()
		if admin.Code() == "" {
			return nil, NewError(ErrInvalidAdmin, "parent admin code cannot be empty").WithAdmin(child)
		}
		if _, dup := seen[admin.Code()]; dup {
			return nil, NewError(ErrCyclicHierarchy, "admin is its own ancestor").WithAdmin(admin.Code())
		}
		seen[admin.Code()] = struct{}{}
	}

	return admin, nil
}

func (b *Builder) buildTree(admin Admin, action string, menu *MenuItem, t *trail, depth int) (*MenuItem, error) {
	code := admin.Code()
	if code == "" {
		return nil, NewError(ErrInvalidAdmin, "admin code cannot be empty").WithAction(action)
	}
	if depth >= b.config.MaxDepth {
		return nil, NewError(ErrMaxDepthExceeded, fmt.Sprintf("child chain deeper than %d", b.config.MaxDepth)).
			WithAdmin(code).
			WithAction(action)
	}
	if _, dup := t.seen[code]; dup {
		return nil, NewError(ErrCyclicHierarchy, "admin is its own descendant").WithAdmin(code).WithAction(action)
	}
	t.seen[code] = struct{}{}

	log := b.logger.WithFields(logrus.Fields{
		"admin":  code,
		"action": action,
		"depth":  depth,
	})
	log.Debug("building breadcrumbs")

	if menu == nil {
		dashboard, err := admin.RouteGenerator().Generate(DashboardRoute, nil)
		if err != nil {
			log.WithError(err).Warn("dashboard URL generation failed")
			return nil, err
		}

		menu = admin.MenuFactory().CreateItem(RootItemName).Root()
		menu.AddChild(DashboardLabel, ItemOptions{
			URI:    dashboard,
			Extras: map[string]any{ExtraTranslationDomain: InDomain(AdminDomain)},
		})
		t.push(menu)
	}

	listURI, err := b.routeURL(admin, ActionList, nil, nil)
	if err != nil {
		log.WithError(err).Warn("list route resolution failed")
		return nil, err
	}

	menu = b.createMenuItem(admin, menu.AddChild,
		fmt.Sprintf("%s_list", admin.ClassnameLabel()),
		InDomain(admin.TranslationDomain()),
		ItemOptions{URI: listURI},
	)
	t.push(menu)

	if err := b.addDropdown(admin, menu, ActionList); err != nil {
		log.WithError(err).Warn("list dropdown failed")
		return nil, err
	}

	if child := admin.CurrentChild(); child != nil {
		subject := admin.Subject()
		params := map[string]string{SubjectIDParam: requestValue(admin, admin.IDParameter())}

		uri, err := b.routeURL(admin, b.config.ChildAdminRoute, subject, params)
		if err != nil {
			log.WithError(err).Warn("child admin route resolution failed")
			return nil, err
		}

		menu = menu.AddChild(admin.SubjectString(subject), ItemOptions{
			URI:    uri,
			Extras: map[string]any{ExtraTranslationDomain: NoTranslation()},
		})
		menu.SetExtra(ExtraSafeLabel, false)
		t.push(menu)

		if err := b.addDropdown(admin, menu, ActionEdit); err != nil {
			log.WithError(err).Warn("subject dropdown failed")
			return nil, err
		}

		return b.buildTree(child, action, menu, t, depth+1)
	}

	if action == ActionList {
		menu.ClearURI()
		return menu, nil
	}

	if action != ActionCreate && admin.HasSubject() {
		menu = menu.AddChild(admin.SubjectString(admin.Subject()), ItemOptions{
			Extras: map[string]any{ExtraTranslationDomain: NoTranslation()},
		})
	} else {
		menu = b.createMenuItem(admin, menu.AddChild,
			fmt.Sprintf("%s_%s", admin.ClassnameLabel(), action),
			InDomain(admin.TranslationDomain()),
			ItemOptions{},
		)
	}
	t.push(menu)

	if err := b.addDropdown(admin, menu, action); err != nil {
		log.WithError(err).Warn("action dropdown failed")
		return nil, err
	}

	return menu, nil
}

// routeURL returns the URL of route when it exists and access is granted,
// "" otherwise.
func (b *Builder) routeURL(admin Admin, route string, subject any, params map[string]string) (string, error) {
	if !admin.HasRoute(route) {
		return "", nil
	}

	allowed, err := admin.HasAccess(route, subject)
	if err != nil || !allowed {
		return "", err
	}

	return admin.GenerateURL(route, params)
}

// createMenuItem translates name and adds the item through add.
// The translation domain is a default; a translation_domain in opts.Extras wins.
func (b *Builder) createMenuItem(admin Admin, add func(string, ItemOptions) *MenuItem, name string, domain LabelDomain, opts ItemOptions) *MenuItem {
	extras := map[string]any{ExtraTranslationDomain: domain}
	for k, v := range opts.Extras {
		extras[k] = v
	}
	opts.Extras = extras

	label := admin.LabelTranslator().Label(name, LabelContext, LabelKind)
	return add(label, opts)
}

func requestValue(admin Admin, key string) string {
	request := admin.Request()
	if request == nil {
		return ""
	}
	return request.Get(key)
}
