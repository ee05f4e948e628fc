package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/objdoc/internal/errors"
)

// Load reads and parses the YAML document at path.
func Load(path string) (*Node, error) {
	// #nosec G304 -- input paths are chosen by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.IOFailed("read input", path, err)
	}
	return Parse(path, data)
}

// Parse parses data as a single YAML document. name is only used in errors.
// An empty input yields a null node.
func Parse(name string, data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return NewScalar(nil), nil
		}
		return nil, derrors.ParseFailed(name, err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, derrors.ParseFailed(name, fmt.Errorf("line %d: expected a single document", extra.Line))
	case !errors.Is(err, io.EOF):
		return nil, derrors.ParseFailed(name, err)
	}

	n, err := fromYAML(&root)
	if err != nil {
		return nil, derrors.ParseFailed(name, err)
	}
	return n, nil
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return NewScalar(nil), nil
		}
		return fromYAML(y.Content[0])
	case yaml.AliasNode:
		return fromYAML(y.Alias)
	case yaml.ScalarNode:
		var v any
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", y.Line, err)
		}
		n := NewScalar(v)
		n.Line = y.Line
		return n, nil
	case yaml.SequenceNode:
		n := NewSequence()
		n.Line = y.Line
		for _, c := range y.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, item)
		}
		return n, nil
	case yaml.MappingNode:
		return mappingFromYAML(y)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", y.Line, y.Kind)
	}
}

// mappingFromYAML keeps key order. Keys brought in by a `<<` merge never
// override keys written explicitly in the same mapping.
func mappingFromYAML(y *yaml.Node) (*Node, error) {
	n := NewMapping()
	n.Line = y.Line

	explicit := make(map[string]bool, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		if k := y.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}

	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if isMergeKey(k) {
			if err := mergeInto(n, v, explicit); err != nil {
				return nil, err
			}
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		val, err := fromYAML(v)
		if err != nil {
			return nil, err
		}
		n.Set(k.Value, val)
	}
	return n, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && k.ShortTag() == "!!merge"
}

func mergeInto(dst *Node, src *yaml.Node, explicit map[string]bool) error {
	if src.Kind == yaml.SequenceNode {
		for _, c := range src.Content {
			if err := mergeInto(dst, c, explicit); err != nil {
				return err
			}
		}
		return nil
	}
	m, err := fromYAML(src)
	if err != nil {
		return err
	}
	if !m.IsMapping() {
		return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
	}
	for _, e := range m.Entries() {
		if explicit[e.Key] || dst.Has(e.Key) {
			continue
		}
		dst.Set(e.Key, e.Value)
	}
	return nil
}
