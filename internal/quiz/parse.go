package quiz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// maxDepth bounds alias expansion while converting YAML nodes.
const maxDepth = 64

// isBlank matches the characters stripped around a block: Unicode white
// space and the byte order mark.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// Parse turns raw block text into a generic tree of map[string]any,
// []any, string, float64, bool and nil values.
func Parse(raw string) (any, error) {
	trimmed := strings.TrimFunc(raw, isBlank)
	if trimmed == "" {
		return nil, &EmptyInputError{}
	}

	decoder := yaml.NewDecoder(bytes.NewReader([]byte(trimmed)))
	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Comment-only blocks decode to nothing.
			return nil, nil
		}
		return nil, &ParseError{Err: err}
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, &ParseError{Err: fmt.Errorf("multiple YAML documents are not supported")}
		}
		return nil, &ParseError{Err: err}
	}

	value, err := convertNode(&doc, 0)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return value, nil
}

func convertNode(node *yaml.Node, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("line %d: document nesting is too deep", node.Line)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return convertNode(node.Content[0], depth+1)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias", node.Line)
		}
		return convertNode(node.Alias, depth+1)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := convertNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return convertMapping(node, depth)
	case yaml.ScalarNode:
		return convertScalar(node)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}

func convertMapping(node *yaml.Node, depth int) (any, error) {
	out := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		key := keyNode.Value
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("line %d: duplicated mapping key %q", keyNode.Line, key)
		}
		v, err := convertNode(valueNode, depth+1)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// convertScalar resolves a scalar the way a JSON-compatible YAML schema
// does: null, bool, number, and everything else as a string.
func convertScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return b, nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err == nil {
			return float64(n), nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return float64(u), nil
		}
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", node.Line, node.Value)
		}
		return f, nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return f, nil
	}
	return node.Value, nil
}
