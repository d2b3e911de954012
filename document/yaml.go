package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML converts YAML text into a document tree with the same node kinds
// the JSON parser produces, so envelope files may be authored in YAML. The
// input must hold a single YAML document; mapping keys must be unique strings.
func ParseYAML(data []byte) (*Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("YAML input is empty")
		}
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("YAML input holds more than one document")
	}

	return fromYAMLNode(&node)
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, errors.New("YAML document has no content")
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return nil, fmt.Errorf("YAML mapping key at line %d is not a string", keyNode.Line)
			}
			if _, dup := obj.Find(keyNode.Value); dup {
				return nil, fmt.Errorf("duplicate YAML mapping key %q at line %d", keyNode.Value, keyNode.Line)
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := Array()
		for _, item := range n.Content {
			val, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			arr.Append(val)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("unsupported YAML node at line %d", n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("bad YAML boolean at line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		// YAML integer/float literals are valid JSON number lexemes except for
		// special forms (hex, .inf, .nan), which have no JSON representation.
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("bad YAML number at line %d: %w", n.Line, err)
		}
		if n.Tag == "!!int" {
			var i int64
			if err := n.Decode(&i); err == nil {
				return Int(i), nil
			}
		}
		return Float(f), nil
	case "!!str":
		return String(n.Value), nil
	default:
		return nil, fmt.Errorf("unsupported YAML scalar tag %s at line %d", n.Tag, n.Line)
	}
}
