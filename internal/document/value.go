package document

import "fmt"

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindNull is an explicit null or an absent document.
	KindNull Kind = iota
	// KindString is a string scalar.
	KindString
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a string-keyed mapping.
	KindMapping
	// KindScalar is any other scalar: numbers, booleans, timestamps, binary.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindSequence:
		return "list"
	case KindMapping:
		return "dictionary"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Value is one node of a deserialized document.
// The zero Value is null.
type Value struct {
	kind   Kind
	str    string
	scalar any
	items  []Value
	fields *mapping
}

// mapping keeps insertion order so reports and dumps are deterministic.
type mapping struct {
	keys   []string
	values map[string]Value
}

// Null returns a null Value.
func Null() Value {
	return Value{}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Scalar returns a non-string scalar Value wrapping v.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Sequence returns a sequence Value holding items in order.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// NewMapping returns an empty mapping Value.
// Populate it with Set.
func NewMapping() Value {
	return Value{
		kind:   KindMapping,
		fields: &mapping{values: make(map[string]Value)},
	}
}

// Set stores value under key. Setting an existing key replaces its value
// and keeps its original position. Set panics if v is not a mapping.
func (v Value) Set(key string, value Value) {
	if v.kind != KindMapping {
		panic(fmt.Sprintf("document: Set on %s value", v.kind))
	}
	if _, ok := v.fields.values[key]; !ok {
		v.fields.keys = append(v.fields.keys, key)
	}
	v.fields.values[key] = value
}

// Kind returns the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string held by v. ok is false unless v is a string.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Raw returns the decoded Go value behind a scalar, or nil.
func (v Value) Raw() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindScalar:
		return v.scalar
	default:
		return nil
	}
}

// Items returns the elements of a sequence. ok is false unless v is a sequence.
func (v Value) Items() (items []Value, ok bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.items, true
}

// Lookup returns the value stored under key.
// ok is false if v is not a mapping or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	val, ok := v.fields.values[key]
	return val, ok
}

// Has reports whether v is a mapping containing key.
func (v Value) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Keys returns mapping keys in insertion order, or nil for non-mappings.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.fields.keys))
	copy(keys, v.fields.keys)
	return keys
}

// Len returns the number of elements of a sequence or entries of a mapping.
// Scalars and null have length zero.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.fields.keys)
	default:
		return 0
	}
}
