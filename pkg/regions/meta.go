package regions

import (
	"gopkg.in/yaml.v3"
)

// Value is a metadata value: either a raw string or a boolean
type Value struct {
	str    string
	b      bool
	isBool bool
}

// StringValue wraps a raw string value
func StringValue(s string) Value {
	return Value{str: s}
}

// BoolValue wraps a boolean value
func BoolValue(b bool) Value {
	return Value{b: b, isBool: true}
}

// IsBool reports whether the value holds a boolean
func (v Value) IsBool() bool {
	return v.isBool
}

// Bool returns the boolean held by v
func (v Value) Bool() (bool, bool) {
	return v.b, v.isBool
}

// String renders the value as it appears in a region file; booleans are 1 or 0
func (v Value) String() string {
	if v.isBool {
		if v.b {
			return "1"
		}
		return "0"
	}
	return v.str
}

// Equal reports whether two values hold the same kind and content
func (v Value) Equal(other Value) bool {
	return v == other
}

// MarshalYAML renders booleans as YAML booleans and strings as strings
func (v Value) MarshalYAML() (interface{}, error) {
	if v.isBool {
		return v.b, nil
	}
	return v.str, nil
}

// Entry is one key/value pair of a Meta
type Entry struct {
	Key   string
	Value Value
}

// Meta is an ordered key/value mapping attached to shapes and regions. Keys
// normally appear once; the "tag" key may repeat.
type Meta struct {
	entries []Entry
}

// NewMeta builds a Meta from alternating key/value string pairs
func NewMeta(pairs ...string) Meta {
	var m Meta
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], StringValue(pairs[i+1]))
	}
	return m
}

// Len returns the number of entries
func (m *Meta) Len() int {
	return len(m.entries)
}

// Get returns the first value stored under key
func (m *Meta) Get(key string) (Value, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// GetString returns the value under key rendered as a string, or ""
func (m *Meta) GetString(key string) string {
	v, _ := m.Get(key)
	return v.String()
}

// All returns every value stored under key in insertion order
func (m *Meta) All(key string) []Value {
	var out []Value
	for _, e := range m.entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

// Has reports whether key is present
func (m *Meta) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key, replacing every existing value for key. A new key
// is appended; an existing key keeps its position.
func (m *Meta) Set(key string, v Value) {
	out := m.entries[:0:0]
	replaced := false
	for _, e := range m.entries {
		if e.Key != key {
			out = append(out, e)
			continue
		}
		if !replaced {
			out = append(out, Entry{Key: key, Value: v})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Entry{Key: key, Value: v})
	}
	m.entries = out
}

// Add appends v under key without removing earlier values
func (m *Meta) Add(key string, v Value) {
	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Delete removes every value stored under key
func (m *Meta) Delete(key string) {
	out := m.entries[:0:0]
	for _, e := range m.entries {
		if e.Key != key {
			out = append(out, e)
		}
	}
	m.entries = out
}

// Keys returns the distinct keys in order of first appearance
func (m *Meta) Keys() []string {
	seen := make(map[string]bool, len(m.entries))
	var keys []string
	for _, e := range m.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Entries returns a copy of the entries in order
func (m *Meta) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Clone returns an independent copy
func (m Meta) Clone() Meta {
	return Meta{entries: append([]Entry(nil), m.entries...)}
}

// Merge overlays other onto m. For every key present in other, m's values
// are replaced by other's values for that key.
func (m *Meta) Merge(other Meta) {
	for _, key := range other.Keys() {
		values := other.All(key)
		m.Set(key, values[0])
		for _, v := range values[1:] {
			m.Add(key, v)
		}
	}
}

// Map returns the first value of every key
func (m *Meta) Map() map[string]Value {
	out := make(map[string]Value, len(m.entries))
	for _, e := range m.entries {
		if _, ok := out[e.Key]; !ok {
			out[e.Key] = e.Value
		}
	}
	return out
}

// IsZero reports whether m has no entries
func (m Meta) IsZero() bool {
	return len(m.entries) == 0
}

// MarshalYAML renders the metadata as an ordered mapping. Repeated keys
// become a sequence.
func (m Meta) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		values := m.All(key)
		var valueNode yaml.Node
		var err error
		if len(values) == 1 {
			err = valueNode.Encode(values[0])
		} else {
			err = valueNode.Encode(values)
		}
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode)
	}
	return node, nil
}
