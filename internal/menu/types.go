package menu

// Node is one entry of the navigation tree. Leaves carry a Route, groups
// carry Children.
type Node struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Route       string   `json:"route,omitempty" yaml:"route,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Sort        *float64 `json:"sort,omitempty" yaml:"sort,omitempty"`
	Children    []Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsGroup reports whether the node only groups other entries.
func (n Node) IsGroup() bool {
	return n.Route == "" && len(n.Children) > 0
}

// SortKey returns the ordering hint, treating a missing hint as zero.
func (n Node) SortKey() float64 {
	if n.Sort == nil {
		return 0
	}
	return *n.Sort
}

// Clone returns a deep copy of the node and its subtree.
func (n Node) Clone() Node {
	out := n
	if n.Permissions != nil {
		out.Permissions = append([]string(nil), n.Permissions...)
	}
	if n.Sort != nil {
		v := *n.Sort
		out.Sort = &v
	}
	out.Children = CloneNodes(n.Children)
	return out
}

// CloneNodes deep-copies a list of nodes. A nil list stays nil.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Walk visits nodes depth-first in pre-order. Returning false from fn skips
// the node's children.
func Walk(nodes []Node, fn func(node Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}

// Document is a validated menu configuration. A Document handed out by a
// Loader is shared and must be treated as read-only.
type Document struct {
	Version string `json:"version" yaml:"version"`
	Menus   []Node `json:"menus" yaml:"menus"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{Version: d.Version, Menus: CloneNodes(d.Menus)}
}

// Count returns the number of nodes in the whole tree.
func (d *Document) Count() int {
	if d == nil {
		return 0
	}
	total := 0
	Walk(d.Menus, func(Node, int) bool {
		total++
		return true
	})
	return total
}
