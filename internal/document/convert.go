package document

import (
	"reflect"
	"sort"
	"time"
)

// FromAny converts the generic output of a decoder (the result of
// unmarshaling into an any) into a Value.
//
// Mappings with string keys become mappings; map[string]any keys are
// sorted since Go maps carry no order. Mappings with non-string keys keep
// only the string-keyed entries.
func FromAny(in any) Value {
	switch t := in.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return String(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Sequence(items...)
	case []map[string]any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Sequence(items...)
	case map[string]any:
		m := NewMapping()
		for _, k := range sortedKeys(t) {
			m.Set(k, FromAny(t[k]))
		}
		return m
	case map[any]any:
		m := NewMapping()
		keys := make([]string, 0, len(t))
		for k := range t {
			if s, ok := k.(string); ok {
				keys = append(keys, s)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(k, FromAny(t[k]))
		}
		return m
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Time, []byte:
		return Scalar(t)
	default:
		return fromReflect(reflect.ValueOf(in))
	}
}

// fromReflect handles typed collections such as []string or
// map[string]int, and decoder-specific scalars (local dates, big numbers).
func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, FromAny(rv.Index(i).Interface()))
		}
		return Sequence(items...)
	case reflect.Map:
		m := NewMapping()
		if rv.Type().Key().Kind() != reflect.String {
			return m
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(k, FromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}
		return m
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	default:
		return Scalar(rv.Interface())
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
