package navigation

import "admin-panel/internal/menu"

// FilterByPermissions returns a copy of the tree holding only entries the
// holder of granted may see. An entry without permissions is public; an
// entry with permissions needs at least one of them. Groups left without
// children and without a route of their own are dropped.
func FilterByPermissions(menus []menu.Node, granted []string) []menu.Node {
	set := make(map[string]struct{}, len(granted))
	for _, g := range granted {
		set[g] = struct{}{}
	}
	return filter(menus, set)
}

func filter(nodes []menu.Node, granted map[string]struct{}) []menu.Node {
	var out []menu.Node
	for _, n := range nodes {
		if !allowed(n, granted) {
			continue
		}
		hadChildren := len(n.Children) > 0
		n = n.Clone()
		n.Children = filter(n.Children, granted)
		if hadChildren && len(n.Children) == 0 && n.Route == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

func allowed(n menu.Node, granted map[string]struct{}) bool {
	if len(n.Permissions) == 0 {
		return true
	}
	for _, p := range n.Permissions {
		if _, ok := granted[p]; ok {
			return true
		}
	}
	return false
}
