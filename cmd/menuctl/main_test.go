package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMenus = `{
  "version": "3.2",
  "menus": [
    {"id": "system", "title": "System", "sort": 2, "children": [
      {"id": "users", "title": "Users", "route": "/system/users", "permissions": ["user:read"]},
      {"id": "roles", "title": "Roles", "route": "/system/roles", "permissions": ["role:read"], "sort": -1}
    ]},
    {"id": "dashboard", "title": "Dashboard", "route": "/dashboard", "sort": 1}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateAcceptsValidFile(t *testing.T) {
	path := writeFile(t, "menus.json", sampleMenus)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ "+path+" is valid (4 entries, version 3.2)\n", out)
}

func TestValidateReportsKindAndMessage(t *testing.T) {
	path := writeFile(t, "menus.json", `{"version": "1", "menus": [{"title": "No id"}]}`)

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, "ValidationError: menu item missing id field: ", err.Error())
}

func TestValidateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, "NotFound: config file not found: "+path, err.Error())
}

func TestValidateWarnsAboutDuplicates(t *testing.T) {
	path := writeFile(t, "menus.json", `{"version": "1", "menus": [
		{"id": "a", "title": "A"},
		{"id": "a", "title": "A again"}
	]}`)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `! duplicate id "a"`)
}

func TestValidateUsesEnvironmentPath(t *testing.T) {
	path := writeFile(t, "menus.yaml", "version: \"1\"\nmenus:\n  - id: home\n    title: Home\n")
	t.Setenv("ADMIN_RESOURCE_DIR", filepath.Dir(path))
	t.Setenv("ADMIN_MENU_FILE", "menus.yaml")

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 entries, version 1)")
}

func TestTreePrintsDisplayOrder(t *testing.T) {
	path := writeFile(t, "menus.json", sampleMenus)

	out, err := execute(t, "tree", path)
	require.NoError(t, err)

	expected := []string{
		"Dashboard [dashboard] /dashboard",
		"System [system]",
		"  Roles [roles] /system/roles",
		"  Users [users] /system/users",
	}
	assert.Equal(t, expected, strings.Split(strings.TrimRight(out, "\n"), "\n"))
}

func TestTreeFiltersByPermission(t *testing.T) {
	path := writeFile(t, "menus.json", sampleMenus)

	out, err := execute(t, "tree", path, "--permission", "user:read")
	require.NoError(t, err)
	assert.Contains(t, out, "Users [users]")
	assert.NotContains(t, out, "Roles [roles]")
}

func TestTreeRejectsExtraArgs(t *testing.T) {
	_, err := execute(t, "tree", "a.json", "b.json")
	assert.Error(t, err)
}
