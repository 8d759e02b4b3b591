package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/geoql/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadMapping reads a function mapping from YAML. Each key is a canonical
// function name. A scalar value is a plain-function rule; a two-element
// sequence of method name and receiver kind is a method-call rule, and a
// third element "property" marks a property access:
//
//	ST_Area: [STArea, geometry]
//	ST_X: [STX, geometry, property]
//	ST_GeomFromText: STGeomFromText
func LoadMapping(r io.Reader) (Mapping, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Mapping{}, nil
		}
		return nil, fmt.Errorf("failed to decode function mapping: %w", err)
	}

	m := make(Mapping, len(raw))
	for name, node := range raw {
		rule, err := ruleFromNode(name, &node)
		if err != nil {
			return nil, err
		}
		m[name] = rule
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func ruleFromNode(name string, node *yaml.Node) (Rule, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Function(node.Value), nil
	case yaml.SequenceNode:
		if len(node.Content) < 2 || len(node.Content) > 3 {
			return Rule{}, NewConfigError(name,
				fmt.Sprintf("line %d: method rule needs [method, receiver], got %d elements", node.Line, len(node.Content)))
		}
		for _, el := range node.Content {
			if el.Kind != yaml.ScalarNode {
				return Rule{}, NewConfigError(name, fmt.Sprintf("line %d: method rule elements must be scalars", node.Line))
			}
		}
		method, receiver := node.Content[0], node.Content[1]
		kind, ok := types.ParseGeometryKind(receiver.Value)
		if !ok {
			return Rule{}, NewConfigError(name, fmt.Sprintf("line %d: unknown receiver kind %q", node.Line, receiver.Value))
		}
		if len(node.Content) == 3 {
			if node.Content[2].Value != "property" {
				return Rule{}, NewConfigError(name,
					fmt.Sprintf("line %d: unknown rule flag %q", node.Line, node.Content[2].Value))
			}
			return Property(method.Value, kind), nil
		}
		return Method(method.Value, kind), nil
	default:
		return Rule{}, NewConfigError(name, fmt.Sprintf("line %d: rule must be a name or [method, receiver]", node.Line))
	}
}
