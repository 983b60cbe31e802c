package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, filepath.Join("resources", "config", "menus.json"), s.MenuPath())
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.JSONLogs)
	assert.Equal(t, "Admin Panel", s.WindowTitle)
	assert.Nil(t, s.Permissions)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvResourceDir, "/opt/admin/res")
	t.Setenv(EnvMenuFile, "menus.yaml")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvJSONLogs, "true")
	t.Setenv(EnvWindowTitle, "Ops Console")
	t.Setenv(EnvPermissions, "admin, article:read,,")

	s := FromEnv()

	assert.Equal(t, filepath.Join("/opt/admin/res", "menus.yaml"), s.MenuPath())
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.JSONLogs)
	assert.Equal(t, "Ops Console", s.WindowTitle)
	assert.Equal(t, []string{"admin", "article:read"}, s.Permissions)
}

func TestFromEnvIgnoresBlankAndInvalid(t *testing.T) {
	t.Setenv(EnvResourceDir, "   ")
	t.Setenv(EnvJSONLogs, "maybe")
	t.Setenv(EnvPermissions, "")

	s := FromEnv()

	assert.Equal(t, "resources", s.ResourceDir)
	assert.False(t, s.JSONLogs)
	assert.Equal(t, []string{}, s.Permissions)
}

func TestAbsoluteMenuFile(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "menus.json")
	s := Defaults()
	s.MenuFile = abs

	assert.Equal(t, abs, s.MenuPath())
}
