// Package config holds the shell's runtime settings, read from the
// environment on top of built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	EnvResourceDir = "ADMIN_RESOURCE_DIR"
	EnvMenuFile    = "ADMIN_MENU_FILE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvJSONLogs    = "ADMIN_JSON_LOGS"
	EnvWindowTitle = "ADMIN_WINDOW_TITLE"
	EnvPermissions = "ADMIN_PERMISSIONS"
)

type Settings struct {
	ResourceDir string
	// MenuFile is relative to ResourceDir unless absolute.
	MenuFile    string
	LogLevel    string
	JSONLogs    bool
	WindowTitle string
	// Permissions granted to the current operator. Nil shows every entry.
	Permissions []string
}

func Defaults() Settings {
	return Settings{
		ResourceDir: "resources",
		MenuFile:    filepath.Join("config", "menus.json"),
		LogLevel:    "info",
		WindowTitle: "Admin Panel",
	}
}

// FromEnv applies environment overrides to the defaults.
func FromEnv() Settings {
	s := Defaults()
	s.ResourceDir = envString(EnvResourceDir, s.ResourceDir)
	s.MenuFile = envString(EnvMenuFile, s.MenuFile)
	s.LogLevel = envString(EnvLogLevel, s.LogLevel)
	s.JSONLogs = envBool(EnvJSONLogs, s.JSONLogs)
	s.WindowTitle = envString(EnvWindowTitle, s.WindowTitle)
	if v, ok := os.LookupEnv(EnvPermissions); ok {
		s.Permissions = splitList(v)
	}
	return s
}

// MenuPath resolves the menu file against the resource directory.
func (s Settings) MenuPath() string {
	if filepath.IsAbs(s.MenuFile) {
		return s.MenuFile
	}
	return filepath.Join(s.ResourceDir, s.MenuFile)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
