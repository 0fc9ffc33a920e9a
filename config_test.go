package crumbkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig tests the default options
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "edit", cfg.ChildAdminRoute)
	assert.Equal(t, 10, cfg.MaxDepth)
	assert.Equal(t, "crease", cfg.SubClassCreateToken)
	assert.NoError(t, cfg.Validate())
}

// TestResolveConfig tests option resolution
func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]any
		want    Config
		wantErr bool
	}{
		{"Nil options", nil, DefaultConfig(), false},
		{"Empty options", map[string]any{}, DefaultConfig(), false},
		{
			"Child admin route",
			map[string]any{"child_admin_route": "show"},
			Config{ChildAdminRoute: "show", MaxDepth: 10, SubClassCreateToken: "crease"},
			false,
		},
		{
			"All options",
			map[string]any{"child_admin_route": "list", "max_depth": 3, "subclass_create_token": "create"},
			Config{ChildAdminRoute: "list", MaxDepth: 3, SubClassCreateToken: "create"},
			false,
		},
		{
			"Weakly typed depth",
			map[string]any{"max_depth": "4"},
			Config{ChildAdminRoute: "edit", MaxDepth: 4, SubClassCreateToken: "crease"},
			false,
		},
		{"Unknown key", map[string]any{"child_route": "edit"}, Config{}, true},
		{"Empty route", map[string]any{"child_admin_route": ""}, Config{}, true},
		{"Zero depth", map[string]any{"max_depth": 0}, Config{}, true},
		{"Wrong type", map[string]any{"max_depth": map[string]any{"value": 1}}, Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ResolveConfig(tt.options)
			if tt.wantErr {
				assert.True(t, IsConfigError(err), "expected config error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// TestConfigValidateOption tests that validation errors name the option
func TestConfigValidateOption(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = -1

	err := cfg.Validate()
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "max_depth", e.Option)
}

// TestLoadConfig tests loading from a viper instance
func TestLoadConfig(t *testing.T) {
	v := viper.New()
	v.Set("breadcrumbs", map[string]any{"child_admin_route": "show"})

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "show", cfg.ChildAdminRoute)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)

	cfg, err = LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadConfigFile tests loading from files and environment overrides
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("YAML file", func(t *testing.T) {
		path := write("config.yaml", "breadcrumbs:\n  child_admin_route: show\n  max_depth: 5\n")

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "show", cfg.ChildAdminRoute)
		assert.Equal(t, 5, cfg.MaxDepth)
		assert.Equal(t, "crease", cfg.SubClassCreateToken)
	})

	t.Run("Unknown key", func(t *testing.T) {
		path := write("unknown.yaml", "breadcrumbs:\n  child_admin_routes: show\n")

		_, err := LoadConfigFile(path)
		assert.True(t, IsConfigError(err))
	})

	t.Run("Environment override", func(t *testing.T) {
		path := write("env.yaml", "breadcrumbs:\n  max_depth: 5\n")
		t.Setenv("CRUMBKIT_BREADCRUMBS_MAX_DEPTH", "2")

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MaxDepth)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
		assert.True(t, IsConfigError(err))
	})
}
