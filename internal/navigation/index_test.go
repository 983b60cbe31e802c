package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-panel/internal/menu"
)

func sortHint(v float64) *float64 { return &v }

func sampleMenus() []menu.Node {
	return []menu.Node{
		{ID: "content", Title: "Content", Sort: sortHint(3), Children: []menu.Node{
			{ID: "tags", Title: "Tags", Route: "/content/tags", Sort: sortHint(2)},
			{ID: "articles", Title: "Articles", Route: "/content/articles", Sort: sortHint(1), Permissions: []string{"article:read"}},
		}},
		{ID: "dashboard", Title: "Dashboard", Route: "/dashboard", Sort: sortHint(1)},
		{ID: "system", Title: "System", Sort: sortHint(2), Permissions: []string{"admin"}, Children: []menu.Node{
			{ID: "users", Title: "Users", Route: "/system/users"},
			{ID: "roles", Title: "Roles", Route: "/system/roles"},
		}},
	}
}

func TestIndexOrdersSiblingsBySort(t *testing.T) {
	idx := NewIndex(sampleMenus())

	assert.Equal(t, 7, idx.Len())
	assert.Equal(t, []string{"dashboard", "system", "content"}, idx.Roots())
	assert.Equal(t, []string{"dashboard", "system", "content"}, idx.ChildIDs(RootID))
	assert.Equal(t, []string{"articles", "tags"}, idx.ChildIDs("content"))
	// no hints: file order is kept
	assert.Equal(t, []string{"users", "roles"}, idx.ChildIDs("system"))
	assert.Nil(t, idx.ChildIDs("missing"))
}

func TestIndexLookups(t *testing.T) {
	idx := NewIndex(sampleMenus())

	node, ok := idx.Node("roles")
	require.True(t, ok)
	assert.Equal(t, "/system/roles", node.Route)

	node, ok = idx.ByRoute("/content/articles")
	require.True(t, ok)
	assert.Equal(t, "articles", node.ID)

	_, ok = idx.ByRoute("/nowhere")
	assert.False(t, ok)

	parent, ok := idx.Parent("users")
	require.True(t, ok)
	assert.Equal(t, "system", parent)

	parent, ok = idx.Parent("dashboard")
	require.True(t, ok)
	assert.Equal(t, RootID, parent)
}

func TestIndexBranches(t *testing.T) {
	idx := NewIndex(sampleMenus())

	assert.True(t, idx.IsBranch(RootID))
	assert.True(t, idx.IsBranch("system"))
	assert.False(t, idx.IsBranch("dashboard"))
	assert.False(t, idx.IsBranch("missing"))
}

func TestBreadcrumb(t *testing.T) {
	idx := NewIndex(sampleMenus())

	assert.Equal(t, []string{"System", "Users"}, idx.Breadcrumb("users"))
	assert.Equal(t, []string{"Dashboard"}, idx.Breadcrumb("dashboard"))
	assert.Equal(t, []string{"system", "roles"}, idx.Path("roles"))
	assert.Empty(t, idx.Breadcrumb("missing"))
}

func TestIndexDuplicates(t *testing.T) {
	idx := NewIndex([]menu.Node{
		{ID: "a", Title: "First", Route: "/a"},
		{ID: "a", Title: "Second", Route: "/b"},
	})

	node, ok := idx.Node("a")
	require.True(t, ok)
	assert.Equal(t, "First", node.Title)
	assert.Equal(t, []string{"a"}, idx.Duplicates())
	_, ok = idx.ByRoute("/b")
	assert.False(t, ok)
}

func TestIndexDoesNotReorderInput(t *testing.T) {
	menus := sampleMenus()
	NewIndex(menus)
	assert.Equal(t, "content", menus[0].ID)
}

func TestFilterByPermissions(t *testing.T) {
	menus := sampleMenus()

	visible := FilterByPermissions(menus, nil)
	require.Len(t, visible, 2)
	assert.Equal(t, "content", visible[0].ID)
	assert.Equal(t, []string{"tags"}, []string{visible[0].Children[0].ID})
	assert.Equal(t, "dashboard", visible[1].ID)

	visible = FilterByPermissions(menus, []string{"admin", "article:read"})
	require.Len(t, visible, 3)
	assert.Len(t, visible[0].Children, 2)

	// the input tree is untouched
	assert.Len(t, menus[0].Children, 2)
}

func TestFilterDropsEmptiedGroups(t *testing.T) {
	menus := []menu.Node{
		{ID: "g", Title: "Group", Children: []menu.Node{
			{ID: "secret", Title: "Secret", Route: "/s", Permissions: []string{"root"}},
		}},
		{ID: "landing", Title: "Landing", Route: "/landing", Children: []menu.Node{
			{ID: "secret2", Title: "Secret", Route: "/s2", Permissions: []string{"root"}},
		}},
		{ID: "empty", Title: "Empty group"},
	}

	visible := FilterByPermissions(menus, []string{"user"})
	require.Len(t, visible, 2)
	assert.Equal(t, "landing", visible[0].ID)
	assert.Empty(t, visible[0].Children)
	assert.Equal(t, "empty", visible[1].ID)
}
