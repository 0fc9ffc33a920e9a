package crumbkit

import "fmt"

// Icons used by dropdown links.
const (
	IconList    = "fa fa-list"
	IconCreate  = "fa fa-plus-circle"
	IconEdit    = "fa fa-edit"
	IconShow    = "fa fa-eye"
	IconHistory = "fa fa-clock-o"
)

// Attributes checked before adding dropdown links.
const (
	AttributeList   = "LIST"
	AttributeCreate = "CREATE"
	AttributeEdit   = "EDIT"
	AttributeView   = "VIEW"
	AttributeDelete = "DELETE"
	AttributeExport = "EXPORT"
	AttributeMaster = "MASTER"
)

type dropdownLink struct {
	route     string
	attribute string
	icon      string
}

// addDropdown attaches the quick action links for action to item.
func (b *Builder) addDropdown(admin Admin, item *MenuItem, action string) error {
	switch action {
	case ActionList:
		return b.addListDropdown(admin, item)
	case ActionCreate:
		return nil
	default:
		return b.addSubjectDropdown(admin, item)
	}
}

func (b *Builder) addListDropdown(admin Admin, item *MenuItem) error {
	label := admin.ClassnameLabel()

	ok, err := routeGranted(admin, ActionList, AttributeList)
	if err != nil {
		return err
	}
	if ok {
		uri, err := admin.GenerateURL(ActionList, nil)
		if err != nil {
			return err
		}
		b.createMenuItem(admin, item.AddDropdown, fmt.Sprintf("%s_list", label), InheritDomain(), ItemOptions{URI: uri}).
			SetExtra(ExtraIcon, IconList)
	}

	ok, err = routeGranted(admin, ActionCreate, AttributeCreate)
	if err != nil || !ok {
		return err
	}

	subClasses := admin.SubClasses()
	if len(subClasses) == 0 {
		uri, err := admin.GenerateURL(ActionCreate, nil)
		if err != nil {
			return err
		}
		b.createMenuItem(admin, item.AddDropdown, fmt.Sprintf("%s_create", label), InheritDomain(), ItemOptions{URI: uri}).
			SetExtra(ExtraIcon, IconCreate)
		return nil
	}

	for _, subClass := range subClasses {
		uri, err := admin.GenerateURL(ActionCreate, map[string]string{SubClassParam: subClass})
		if err != nil {
			return err
		}
		name := fmt.Sprintf(subClassPattern, label, b.config.SubClassCreateToken, subClass)
		b.createMenuItem(admin, item.AddDropdown, name, InheritDomain(), ItemOptions{URI: uri}).
			SetExtra(ExtraIcon, IconCreate)
	}
	return nil
}

func (b *Builder) addSubjectDropdown(admin Admin, item *MenuItem) error {
	label := admin.ClassnameLabel()
	params := map[string]string{SubjectIDParam: requestValue(admin, admin.IDParameter())}

	links := []dropdownLink{
		{route: ActionEdit, attribute: AttributeEdit, icon: IconEdit},
	}
	if len(admin.ShowFields()) > 0 {
		links = append(links, dropdownLink{route: ActionShow, attribute: AttributeView, icon: IconShow})
	}
	links = append(links, dropdownLink{route: ActionHistory, attribute: AttributeEdit, icon: IconHistory})

	for _, link := range links {
		ok, err := routeGranted(admin, link.route, link.attribute)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		uri, err := admin.GenerateURL(link.route, params)
		if err != nil {
			return err
		}
		b.createMenuItem(admin, item.AddDropdown, fmt.Sprintf("%s_%s", label, link.route), InheritDomain(), ItemOptions{URI: uri}).
			SetExtra(ExtraIcon, link.icon)
	}

	ok, err := routeGranted(admin, ActionACL, AttributeMaster)
	if err != nil || !ok || !admin.ACLEnabled() {
		return err
	}

	uri, err := admin.GenerateURL(ActionACL, params)
	if err != nil {
		return err
	}
	b.createMenuItem(admin, item.AddDropdown, fmt.Sprintf("%s_acl", label), InheritDomain(), ItemOptions{URI: uri})
	return nil
}

// routeGranted reports whether route exists and attribute is granted.
// The permission check is skipped for missing routes.
func routeGranted(admin Admin, route, attribute string) (bool, error) {
	if !admin.HasRoute(route) {
		return false, nil
	}
	return admin.IsGranted(attribute, nil)
}
