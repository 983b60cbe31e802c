// Package navigation indexes a validated menu tree for the shell: lookups by
// id and route, breadcrumb trails, and the child lists a tree widget asks for.
package navigation

import (
	"sort"

	"admin-panel/internal/menu"
)

// RootID is the id under which the top-level entries are listed.
const RootID = ""

type entry struct {
	node     menu.Node
	parent   string
	children []string
}

// Index is an immutable view over one menu tree. Siblings are ordered by
// their sort hint; entries without a hint count as zero and ties keep file
// order.
type Index struct {
	entries    map[string]*entry
	roots      []string
	routes     map[string]string
	duplicates []string
}

func NewIndex(menus []menu.Node) *Index {
	idx := &Index{
		entries: make(map[string]*entry),
		routes:  make(map[string]string),
	}
	idx.roots = idx.add(menus, RootID)
	return idx
}

func (idx *Index) add(nodes []menu.Node, parent string) []string {
	ordered := make([]menu.Node, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortKey() < ordered[j].SortKey()
	})

	ids := make([]string, 0, len(ordered))
	for _, n := range ordered {
		if _, exists := idx.entries[n.ID]; exists {
			idx.duplicates = append(idx.duplicates, n.ID)
			continue
		}
		e := &entry{node: n, parent: parent}
		idx.entries[n.ID] = e
		if n.Route != "" {
			if _, taken := idx.routes[n.Route]; !taken {
				idx.routes[n.Route] = n.ID
			}
		}
		e.children = idx.add(n.Children, n.ID)
		ids = append(ids, n.ID)
	}
	return ids
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Roots returns the top-level ids in display order.
func (idx *Index) Roots() []string {
	return append([]string(nil), idx.roots...)
}

// Node returns the entry with the given id.
func (idx *Index) Node(id string) (menu.Node, bool) {
	e, ok := idx.entries[id]
	if !ok {
		return menu.Node{}, false
	}
	return e.node, true
}

// ByRoute returns the first entry, in display order, that navigates to route.
func (idx *Index) ByRoute(route string) (menu.Node, bool) {
	id, ok := idx.routes[route]
	if !ok {
		return menu.Node{}, false
	}
	return idx.Node(id)
}

// Parent returns the parent id of id, RootID for top-level entries.
func (idx *Index) Parent(id string) (string, bool) {
	e, ok := idx.entries[id]
	if !ok {
		return "", false
	}
	return e.parent, true
}

// ChildIDs lists the children of id in display order. RootID lists the roots.
func (idx *Index) ChildIDs(id string) []string {
	if id == RootID {
		return idx.Roots()
	}
	e, ok := idx.entries[id]
	if !ok {
		return nil
	}
	return append([]string(nil), e.children...)
}

// IsBranch reports whether id has children. RootID is always a branch.
func (idx *Index) IsBranch(id string) bool {
	if id == RootID {
		return true
	}
	e, ok := idx.entries[id]
	return ok && len(e.children) > 0
}

// Path returns the ids from the root down to id, inclusive.
func (idx *Index) Path(id string) []string {
	var path []string
	for cur := id; cur != RootID; {
		e, ok := idx.entries[cur]
		if !ok {
			return nil
		}
		path = append(path, cur)
		cur = e.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Breadcrumb returns the titles from the root down to id.
func (idx *Index) Breadcrumb(id string) []string {
	path := idx.Path(id)
	titles := make([]string, len(path))
	for i, p := range path {
		titles[i] = idx.entries[p].node.Title
	}
	return titles
}

// Duplicates lists ids that appeared more than once; only the first
// occurrence is indexed.
func (idx *Index) Duplicates() []string {
	return append([]string(nil), idx.duplicates...)
}
