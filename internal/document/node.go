// Package document loads object-class descriptions from YAML into a small
// ordered document tree.
//
// A Node is one of four kinds: null, scalar, sequence or mapping. Mappings keep
// the key order of the source file, which is the order properties are listed
// on the generated page.
package document

import (
	"fmt"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a loaded YAML value.
type Node struct {
	Kind Kind
	// Scalar holds the decoded value of a scalar node: string, int, float64, bool
	// or a time.Time for timestamps.
	Scalar any
	Items  []*Node
	// Line is the 1-based source line, zero for nodes built in code.
	Line int

	entries []Entry
	index   map[string]int
}

// NewScalar returns a scalar node.
func NewScalar(v any) *Node {
	if v == nil {
		return &Node{Kind: KindNull}
	}
	return &Node{Kind: KindScalar, Scalar: v}
}

// NewSequence returns a sequence node holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{Kind: KindMapping, index: map[string]int{}}
}

// IsMapping reports whether n is a non-nil mapping.
func (n *Node) IsMapping() bool { return n != nil && n.Kind == KindMapping }

// Get returns the value stored under key in a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].Value, true
}

// Has reports whether a mapping contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Lookup follows a chain of mapping keys.
func (n *Node) Lookup(keys ...string) (*Node, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (n *Node) Set(key string, value *Node) {
	if n.Kind != KindMapping {
		panic(fmt.Sprintf("document: Set on %s node", n.Kind))
	}
	if n.index == nil {
		n.index = map[string]int{}
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: value})
}

// Entries returns the mapping's pairs in source order.
func (n *Node) Entries() []Entry {
	if !n.IsMapping() {
		return nil
	}
	return n.entries
}

// Keys returns the mapping's keys in source order.
func (n *Node) Keys() []string {
	entries := n.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Len is the number of entries of a mapping or items of a sequence.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindMapping:
		return len(n.entries)
	case KindSequence:
		return len(n.Items)
	default:
		return 0
	}
}

// AsString returns the scalar value if it is a string.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.Kind != KindScalar {
		return "", false
	}
	s, ok := n.Scalar.(string)
	return s, ok
}

// StringAt returns the string stored under key.
func (n *Node) StringAt(key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// SetString replaces the value of a string scalar in place.
func (n *Node) SetString(s string) {
	n.Kind = KindScalar
	n.Scalar = s
}
