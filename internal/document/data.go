package document

import (
	"fmt"
	"reflect"
	"sort"
)

// Field is a key/value pair handed to templates by the entries helper.
type Field struct {
	Key   string
	Value any
}

// KeyOrder remembers the source key order of every mapping produced by
// TemplateData, keyed by map identity. A map address is only unique while the
// map is reachable, so a KeyOrder is valid only together with the data
// returned alongside it.
type KeyOrder map[uintptr][]string

// TemplateData converts the tree into plain values for text/template:
// mappings become map[string]any, sequences []any and scalars their decoded
// value. Key order, which Go maps drop, is returned separately.
func (n *Node) TemplateData() (any, KeyOrder) {
	order := KeyOrder{}
	return n.templateValue(order), order
}

func (n *Node) templateValue(order KeyOrder) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindScalar:
		return n.Scalar
	case KindSequence:
		items := make([]any, len(n.Items))
		for i, it := range n.Items {
			items[i] = it.templateValue(order)
		}
		return items
	case KindMapping:
		m := make(map[string]any, len(n.entries))
		for _, e := range n.entries {
			m[e.Key] = e.Value.templateValue(order)
		}
		order[reflect.ValueOf(m).Pointer()] = n.Keys()
		return m
	default:
		return nil
	}
}

// Fields returns the pairs of a mapping built by TemplateData in source order.
// Maps built elsewhere fall back to sorted key order. A nil value yields no
// fields so optional mappings can be ranged over directly.
func (o KeyOrder) Fields(v any) ([]Field, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("entries: expected a mapping, got %T", v)
	}

	keys, known := o[reflect.ValueOf(m).Pointer()]
	if !known || len(keys) != len(m) {
		keys = make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: m[k]})
	}
	return fields, nil
}
