package crumbkit

// ItemID addresses a MenuItem inside its Menu.
type ItemID int

// NoItem is the parent of a menu root.
const NoItem ItemID = -1

// Extra keys understood by breadcrumb renderers.
const (
	ExtraIcon              = "icon"
	ExtraTranslationDomain = "translation_domain"
	ExtraSafeLabel         = "safe_label"
)

// LabelDomain selects how a menu label is translated.
// The zero value inherits the renderer's default domain.
type LabelDomain struct {
	name     string
	disabled bool
}

// InheritDomain defers to the renderer's default translation domain.
func InheritDomain() LabelDomain {
	return LabelDomain{}
}

// NoTranslation marks a label as final text that must not be translated.
func NoTranslation() LabelDomain {
	return LabelDomain{disabled: true}
}

// InDomain translates a label in the named domain.
// An empty name is the same as InheritDomain.
func InDomain(name string) LabelDomain {
	return LabelDomain{name: name}
}

// Name returns the domain name and whether one is set.
func (d LabelDomain) Name() (string, bool) {
	return d.name, d.name != "" && !d.disabled
}

// Translate reports whether the label should be translated at all.
func (d LabelDomain) Translate() bool {
	return !d.disabled
}

// IsInherited reports whether the renderer's default domain applies.
func (d LabelDomain) IsInherited() bool {
	return !d.disabled && d.name == ""
}

// String returns the domain name, "-" when translation is disabled.
func (d LabelDomain) String() string {
	if d.disabled {
		return "-"
	}
	return d.name
}

// ItemOptions configures a new menu item.
type ItemOptions struct {
	URI    string
	Extras map[string]any
}

// MenuItem is one labelled, optionally linked node of a Menu.
//
// Children holds the items that continue the trail (and the dashboard link on
// the root); Dropdown holds the quick action links of the item. Both keep
// insertion order.
type MenuItem struct {
	ID       ItemID
	Name     string
	URI      string
	Parent   ItemID
	Children []ItemID
	Dropdown []ItemID
	Extras   map[string]any

	menu *Menu
}

// Menu is an arena of menu items. The root is always item 0.
type Menu struct {
	items []*MenuItem
}

// NewMenu creates a menu whose root item is labelled name.
func NewMenu(name string) *Menu {
	m := &Menu{}
	m.add(NoItem, name, ItemOptions{})
	return m
}

// Root returns the root item.
func (m *Menu) Root() *MenuItem {
	return m.items[0]
}

// Item returns the item with the given ID, or nil.
func (m *Menu) Item(id ItemID) *MenuItem {
	if id < 0 || int(id) >= len(m.items) {
		return nil
	}
	return m.items[id]
}

// Len returns the number of items in the menu, root included.
func (m *Menu) Len() int {
	return len(m.items)
}

// Path returns the items from the root down to id, both included.
func (m *Menu) Path(id ItemID) []*MenuItem {
	var path []*MenuItem
	for item := m.Item(id); item != nil; item = m.Item(item.Parent) {
		path = append(path, item)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (m *Menu) add(parent ItemID, name string, opts ItemOptions) *MenuItem {
	extras := make(map[string]any, len(opts.Extras))
	for k, v := range opts.Extras {
		extras[k] = v
	}

	item := &MenuItem{
		ID:     ItemID(len(m.items)),
		Name:   name,
		URI:    opts.URI,
		Parent: parent,
		Extras: extras,
		menu:   m,
	}
	m.items = append(m.items, item)
	return item
}

// Menu returns the menu the item belongs to.
func (i *MenuItem) Menu() *Menu {
	return i.menu
}

// AddChild appends a child item and returns it.
func (i *MenuItem) AddChild(name string, opts ItemOptions) *MenuItem {
	child := i.menu.add(i.ID, name, opts)
	i.Children = append(i.Children, child.ID)
	return child
}

// AddDropdown appends a dropdown link and returns it.
func (i *MenuItem) AddDropdown(name string, opts ItemOptions) *MenuItem {
	link := i.menu.add(i.ID, name, opts)
	i.Dropdown = append(i.Dropdown, link.ID)
	return link
}

// ParentItem returns the parent item, or nil for the root.
func (i *MenuItem) ParentItem() *MenuItem {
	return i.menu.Item(i.Parent)
}

// ChildItems returns the child items in insertion order.
func (i *MenuItem) ChildItems() []*MenuItem {
	return i.resolve(i.Children)
}

// DropdownItems returns the dropdown links in insertion order.
func (i *MenuItem) DropdownItems() []*MenuItem {
	return i.resolve(i.Dropdown)
}

func (i *MenuItem) resolve(ids []ItemID) []*MenuItem {
	items := make([]*MenuItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, i.menu.Item(id))
	}
	return items
}

// SetURI sets the item URI.
func (i *MenuItem) SetURI(uri string) *MenuItem {
	i.URI = uri
	return i
}

// ClearURI removes the item URI so it renders as plain text.
func (i *MenuItem) ClearURI() *MenuItem {
	i.URI = ""
	return i
}

// HasURI reports whether the item is a link.
func (i *MenuItem) HasURI() bool {
	return i.URI != ""
}

// SetExtra sets an extra value.
func (i *MenuItem) SetExtra(key string, value any) *MenuItem {
	i.Extras[key] = value
	return i
}

// Extra returns an extra value.
func (i *MenuItem) Extra(key string) (any, bool) {
	v, ok := i.Extras[key]
	return v, ok
}

// Icon returns the icon extra, if any.
func (i *MenuItem) Icon() string {
	if v, ok := i.Extras[ExtraIcon].(string); ok {
		return v
	}
	return ""
}

// SafeLabel reports whether the label may be rendered without escaping.
// Items without the extra are safe.
func (i *MenuItem) SafeLabel() bool {
	if v, ok := i.Extras[ExtraSafeLabel].(bool); ok {
		return v
	}
	return true
}

// Domain returns the translation domain of the label.
func (i *MenuItem) Domain() LabelDomain {
	if v, ok := i.Extras[ExtraTranslationDomain].(LabelDomain); ok {
		return v
	}
	return InheritDomain()
}
