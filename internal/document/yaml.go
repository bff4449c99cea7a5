package document

import (
	"gopkg.in/yaml.v3"
)

// YAML short tags after resolution.
const (
	tagStr   = "!!str"
	tagNull  = "!!null"
	tagMerge = "!!merge"
)

// FromYAMLNode converts a parsed YAML node tree into a Value.
//
// Typing follows the resolved tag of each scalar, so `ip: 10` is a scalar
// and `ip: "10"` is a string. Aliases are followed and `<<` merge keys are
// expanded, with keys written explicitly in the mapping winning over merged
// ones. A nil node or an empty document is null.
func FromYAMLNode(node *yaml.Node) Value {
	c := &yamlConverter{active: make(map[*yaml.Node]bool)}
	return c.convert(node)
}

type yamlConverter struct {
	// active holds alias targets currently being expanded; revisiting one
	// means the document refers to itself.
	active map[*yaml.Node]bool
}

func (c *yamlConverter) convert(node *yaml.Node) Value {
	if node == nil {
		return Null()
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null()
		}
		return c.convert(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil || c.active[node.Alias] {
			return Null()
		}
		c.active[node.Alias] = true
		defer delete(c.active, node.Alias)
		return c.convert(node.Alias)
	case yaml.ScalarNode:
		return c.scalar(node)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, item := range node.Content {
			items = append(items, c.convert(item))
		}
		return Sequence(items...)
	case yaml.MappingNode:
		return c.mapping(node)
	default:
		return Null()
	}
}

func (c *yamlConverter) scalar(node *yaml.Node) Value {
	switch node.ShortTag() {
	case tagStr:
		return String(node.Value)
	case tagNull:
		return Null()
	}

	var raw any
	if err := node.Decode(&raw); err != nil || raw == nil {
		// Unknown local tags decode to nothing useful; keep the literal.
		return Scalar(node.Value)
	}
	if s, ok := raw.(string); ok {
		return Scalar(s)
	}
	return FromAny(raw)
}

func (c *yamlConverter) mapping(node *yaml.Node) Value {
	m := NewMapping()

	// Merged keys first so explicit keys overwrite them.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveAlias(node.Content[i])
		if key.Kind == yaml.ScalarNode && key.ShortTag() == tagMerge {
			c.merge(m, node.Content[i+1])
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveAlias(node.Content[i])
		if key.Kind != yaml.ScalarNode || key.ShortTag() != tagStr {
			continue
		}
		m.Set(key.Value, c.convert(node.Content[i+1]))
	}

	return m
}

// merge copies the entries of a merge source into m. A sequence of sources
// is applied so that earlier sources take precedence over later ones.
func (c *yamlConverter) merge(m Value, src *yaml.Node) {
	src = resolveAlias(src)
	if src == nil || c.active[src] {
		return
	}
	c.active[src] = true
	defer delete(c.active, src)

	switch src.Kind {
	case yaml.MappingNode:
		merged := c.mapping(src)
		for _, k := range merged.Keys() {
			v, _ := merged.Lookup(k)
			m.Set(k, v)
		}
	case yaml.SequenceNode:
		for i := len(src.Content) - 1; i >= 0; i-- {
			c.merge(m, src.Content[i])
		}
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
