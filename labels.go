package crumbkit

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelTranslatorFunc adapts a function to LabelTranslator.
type LabelTranslatorFunc func(name, context, kind string) string

// Label calls f(name, context, kind).
func (f LabelTranslatorFunc) Label(name, context, kind string) string {
	return f(name, context, kind)
}

// NoopLabelTranslator returns label keys unchanged.
type NoopLabelTranslator struct{}

// Label returns name.
func (NoopLabelTranslator) Label(name, _, _ string) string {
	return name
}

// UnderscoreLabelTranslator builds translation keys:
// "BlogPost_list" becomes "breadcrumb.link_blog_post_list".
type UnderscoreLabelTranslator struct{}

// Label returns "{context}.{kind}_{snake_case name}".
func (UnderscoreLabelTranslator) Label(name, context, kind string) string {
	return fmt.Sprintf("%s.%s_%s", context, kind, strings.ToLower(splitCamel(name, "_")))
}

// NativeLabelTranslator humanizes label keys:
// "BlogPost_list" becomes "Blog Post List".
type NativeLabelTranslator struct{}

// Label returns name in title case with words split on capitals and underscores.
func (NativeLabelTranslator) Label(name, _, _ string) string {
	words := strings.FieldsFunc(splitCamel(name, "_"), func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
	return cases.Title(language.Und).String(strings.ToLower(strings.Join(words, " ")))
}

// FormatLabelTranslator applies a printf format to the label key,
// e.g. "admin.%s".
type FormatLabelTranslator struct {
	Format string
}

// Label returns fmt.Sprintf(t.Format, name).
func (t FormatLabelTranslator) Label(name, _, _ string) string {
	return fmt.Sprintf(t.Format, name)
}

// splitCamel inserts sep before every upper case letter except the first rune.
func splitCamel(s, sep string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			sb.WriteString(sep)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
