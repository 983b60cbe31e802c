package menu

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Validate checks a decoded configuration value and converts it into a
// Document. Validation is depth-first, pre-order and stops at the first
// violation, which is returned as a *ConfigError of kind KindValidationError.
func Validate(raw any) (*Document, error) {
	doc, err := validateDocument(raw)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func validateDocument(raw any) (*Document, *ConfigError) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, invalid("config must be an object")
	}

	version, ok := obj["version"]
	if !ok {
		return nil, invalid("missing version field")
	}

	rawMenus, ok := obj["menus"]
	if !ok {
		return nil, invalid("missing menus field")
	}

	items, ok := rawMenus.([]any)
	if !ok {
		return nil, invalid("menus must be an array")
	}

	menus, err := validateNodes(items, "")
	if err != nil {
		return nil, err
	}

	return &Document{Version: scalarText(version), Menus: menus}, nil
}

func validateNodes(items []any, parentID string) ([]Node, *ConfigError) {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		node, err := validateNode(item, parentID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func validateNode(raw any, parentID string) (Node, *ConfigError) {
	item, ok := raw.(map[string]any)
	if !ok {
		return Node{}, invalidf("menu item must be an object", parentID)
	}

	rawID, ok := item["id"]
	if !ok {
		return Node{}, invalidf("menu item missing id field", parentID)
	}
	// Until id is known to be a string, errors quote its raw value.
	idText := scalarText(rawID)

	rawTitle, ok := item["title"]
	if !ok {
		return Node{}, invalidf("menu item missing title field", idText)
	}

	id, ok := rawID.(string)
	if !ok {
		return Node{}, invalidf("id must be a string", idText)
	}

	title, ok := rawTitle.(string)
	if !ok {
		return Node{}, invalidf("title must be a string", id)
	}

	if id == "" {
		return Node{}, invalidf("id must not be empty", parentID)
	}
	if title == "" {
		return Node{}, invalidf("title must not be empty", id)
	}

	node := Node{ID: id, Title: title}

	if v, ok := item["icon"]; ok {
		s, ok := v.(string)
		if !ok {
			return Node{}, invalidf("icon must be a string", id)
		}
		node.Icon = s
	}

	if v, ok := item["route"]; ok {
		s, ok := v.(string)
		if !ok {
			return Node{}, invalidf("route must be a string", id)
		}
		node.Route = s
	}

	if v, ok := item["permissions"]; ok {
		list, ok := v.([]any)
		if !ok {
			return Node{}, invalidf("permissions must be an array", id)
		}
		perms := make([]string, 0, len(list))
		for _, p := range list {
			s, ok := p.(string)
			if !ok {
				return Node{}, invalidf("permissions must contain only strings", id)
			}
			perms = append(perms, s)
		}
		node.Permissions = perms
	}

	if v, ok := item["sort"]; ok {
		f, ok := number(v)
		if !ok {
			return Node{}, invalidf("sort must be a number", id)
		}
		node.Sort = &f
	}

	if v, ok := item["children"]; ok {
		list, ok := v.([]any)
		if !ok {
			return Node{}, invalidf("children must be an array", id)
		}
		children, err := validateNodes(list, id)
		if err != nil {
			return Node{}, err
		}
		node.Children = children
	}

	return node, nil
}

// number accepts integer and floating point values. Booleans are not numbers.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// scalarText renders a raw value for messages and for the opaque version field.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func invalid(msg string) *ConfigError {
	return &ConfigError{Kind: KindValidationError, Message: msg}
}

func invalidf(reason, ref string) *ConfigError {
	return &ConfigError{Kind: KindValidationError, Message: reason + ": " + ref}
}
