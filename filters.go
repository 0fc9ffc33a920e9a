package crumbkit

import (
	"github.com/go-viper/mapstructure/v2"
)

// Field types referenced by filter forms.
const (
	FieldTypeChoice = "choice"
	FieldTypeHidden = "hidden"
)

// Operator values of ChoiceFilterType.
const (
	ChoiceContains    = 1
	ChoiceNotContains = 2
	ChoiceEqual       = 3
)

// Operator values of ExistsOperatorType.
const (
	Exists    = 1
	NotExists = 2
)

// Choice is one label/value pair of a choice field, in display order.
type Choice struct {
	Label string
	Value int
}

// FieldSpec describes one sub field built by a form type.
type FieldSpec struct {
	Name    string
	Type    string
	Options map[string]any
}

// ChoiceFilterOptions are the options of ChoiceFilterType.
type ChoiceFilterOptions struct {
	FieldType       string         `mapstructure:"field_type"`
	FieldOptions    map[string]any `mapstructure:"field_options"`
	OperatorType    string         `mapstructure:"operator_type"`
	OperatorOptions map[string]any `mapstructure:"operator_options"`
}

// NewChoiceFilterOptions creates ChoiceFilterOptions with default values.
func NewChoiceFilterOptions() ChoiceFilterOptions {
	return ChoiceFilterOptions{
		FieldType:       FieldTypeChoice,
		FieldOptions:    map[string]any{},
		OperatorType:    FieldTypeChoice,
		OperatorOptions: map[string]any{},
	}
}

// WithFieldType sets the value field type.
func (o ChoiceFilterOptions) WithFieldType(fieldType string) ChoiceFilterOptions {
	o.FieldType = fieldType
	return o
}

// WithFieldOptions sets the value field options.
func (o ChoiceFilterOptions) WithFieldOptions(options map[string]any) ChoiceFilterOptions {
	o.FieldOptions = options
	return o
}

// WithOperatorType sets the operator field type.
func (o ChoiceFilterOptions) WithOperatorType(operatorType string) ChoiceFilterOptions {
	o.OperatorType = operatorType
	return o
}

// WithOperatorOptions sets the operator field options.
func (o ChoiceFilterOptions) WithOperatorOptions(options map[string]any) ChoiceFilterOptions {
	o.OperatorOptions = options
	return o
}

// ChoiceFilterType is the filter form made of an operator ("type") field and
// a value field.
type ChoiceFilterType struct{}

// BlockPrefix returns the template block prefix.
func (ChoiceFilterType) BlockPrefix() string {
	return "admin_type_filter_choice"
}

// OperatorChoices returns the operator choices in display order.
func (ChoiceFilterType) OperatorChoices() []Choice {
	return []Choice{
		{Label: "label_type_contains", Value: ChoiceContains},
		{Label: "label_type_not_contains", Value: ChoiceNotContains},
		{Label: "label_type_equals", Value: ChoiceEqual},
	}
}

// ResolveOptions applies options over the defaults.
// Unknown keys fail with ErrInvalidOption.
func (ChoiceFilterType) ResolveOptions(options map[string]any) (ChoiceFilterOptions, error) {
	resolved := NewChoiceFilterOptions()
	if len(options) == 0 {
		return resolved, nil
	}

	if err := decodeOptions(options, &resolved); err != nil {
		return ChoiceFilterOptions{}, err
	}
	return resolved, nil
}

// Build returns the "type" and "value" fields for resolved options.
// Both are optional unless the caller options say otherwise; the operator
// carries the operator choices unless it is hidden.
func (t ChoiceFilterType) Build(options ChoiceFilterOptions) []FieldSpec {
	operator := mergeOptions(map[string]any{"required": false}, options.OperatorOptions)
	if options.OperatorType != FieldTypeHidden {
		operator["choice_translation_domain"] = AdminDomain
		operator["choices"] = t.OperatorChoices()
	}

	value := mergeOptions(map[string]any{"required": false}, options.FieldOptions)

	return []FieldSpec{
		{Name: "type", Type: options.OperatorType, Options: operator},
		{Name: "value", Type: options.FieldType, Options: value},
	}
}

// BuildFromMap resolves options and builds the fields.
func (t ChoiceFilterType) BuildFromMap(options map[string]any) ([]FieldSpec, error) {
	resolved, err := t.ResolveOptions(options)
	if err != nil {
		return nil, err
	}
	return t.Build(resolved), nil
}

// ExistsOperatorType is the choice field selecting "exists" or "not exists".
type ExistsOperatorType struct{}

// Parent returns the field type this type extends.
func (ExistsOperatorType) Parent() string {
	return FieldTypeChoice
}

// BlockPrefix returns the template block prefix.
func (ExistsOperatorType) BlockPrefix() string {
	return "admin_type_operator_equal"
}

// Choices returns the choices in display order.
func (ExistsOperatorType) Choices() []Choice {
	return []Choice{
		{Label: "label_type_exists", Value: Exists},
		{Label: "label_type_not_exists", Value: NotExists},
	}
}

// DefaultOptions returns the default field options.
func (t ExistsOperatorType) DefaultOptions() map[string]any {
	return map[string]any{
		"choice_translation_domain": AdminDomain,
		"choices":                   t.Choices(),
	}
}

// Build returns the operator field with options merged over the defaults.
func (t ExistsOperatorType) Build(name string, options map[string]any) FieldSpec {
	return FieldSpec{
		Name:    name,
		Type:    t.Parent(),
		Options: mergeOptions(t.DefaultOptions(), options),
	}
}

// mergeOptions returns a copy of defaults overridden by options.
func mergeOptions(defaults, options map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(options))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}
	return merged
}

func decodeOptions(options map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "mapstructure",
		Result:      result,
	})
	if err != nil {
		return NewError(ErrInvalidOption, err.Error())
	}

	if err := decoder.Decode(options); err != nil {
		return NewError(ErrInvalidOption, err.Error())
	}
	return nil
}
