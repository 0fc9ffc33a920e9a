package crumbkit

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default builder options.
const (
	DefaultChildAdminRoute     = "edit"
	DefaultMaxDepth            = 10
	DefaultSubClassCreateToken = "crease"
)

// ConfigKey is the section read by LoadConfig.
const ConfigKey = "breadcrumbs"

// EnvPrefix prefixes environment overrides read by LoadConfigFile,
// e.g. CRUMBKIT_BREADCRUMBS_MAX_DEPTH.
const EnvPrefix = "CRUMBKIT"

var configKeys = []string{"child_admin_route", "max_depth", "subclass_create_token"}

// Config holds the resolved builder options. It is immutable once a Builder
// has been created from it.
type Config struct {
	// ChildAdminRoute is the route linked from the parent subject breadcrumb
	// when a child admin is active.
	ChildAdminRoute string `mapstructure:"child_admin_route"`

	// MaxDepth bounds the admin nesting depth.
	MaxDepth int `mapstructure:"max_depth"`

	// SubClassCreateToken is the token between the class label and the sub
	// class in create links: "{label}_{token}_{subclass}".
	SubClassCreateToken string `mapstructure:"subclass_create_token"`
}

// DefaultConfig returns the default builder options.
func DefaultConfig() Config {
	return Config{
		ChildAdminRoute:     DefaultChildAdminRoute,
		MaxDepth:            DefaultMaxDepth,
		SubClassCreateToken: DefaultSubClassCreateToken,
	}
}

// Validate checks the option values.
func (c Config) Validate() error {
	if c.ChildAdminRoute == "" {
		return NewError(ErrInvalidConfig, "child_admin_route cannot be empty").WithOption("child_admin_route")
	}
	if c.MaxDepth < 1 {
		return NewError(ErrInvalidConfig, "max_depth must be at least 1").WithOption("max_depth")
	}
	if c.SubClassCreateToken == "" {
		return NewError(ErrInvalidConfig, "subclass_create_token cannot be empty").WithOption("subclass_create_token")
	}
	return nil
}

// ResolveConfig applies options over the defaults.
// Unknown keys and values of the wrong type fail with ErrInvalidConfig.
//
// Example:
//
//	cfg, err := crumbkit.ResolveConfig(map[string]any{"child_admin_route": "show"})
func ResolveConfig(options map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if len(options) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, NewError(ErrInvalidConfig, err.Error())
	}

	if err := decoder.Decode(options); err != nil {
		return Config{}, NewError(ErrInvalidConfig, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig resolves the breadcrumbs section of v.
// Keys set through v's environment bindings override the section values.
func LoadConfig(v *viper.Viper) (Config, error) {
	options := make(map[string]any)
	for key, value := range v.GetStringMap(ConfigKey) {
		options[key] = value
	}

	for _, key := range configKeys {
		full := ConfigKey + "." + key
		if v.IsSet(full) {
			options[key] = v.Get(full)
		}
	}

	return ResolveConfig(options)
}

// LoadConfigFile reads a YAML, JSON or TOML file and resolves its breadcrumbs
// section. Environment variables prefixed with EnvPrefix override file values.
func LoadConfigFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(ConfigKey + "." + key); err != nil {
			return Config{}, NewError(ErrInvalidConfig, err.Error()).WithOption(key)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, NewError(ErrInvalidConfig, fmt.Sprintf("error reading config file %s: %v", path, err))
	}

	return LoadConfig(v)
}
