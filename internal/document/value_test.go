package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindNull, "null"},
		{KindString, "string"},
		{KindSequence, "list"},
		{KindMapping, "dictionary"},
		{KindScalar, "scalar"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.k.String())
		})
	}
}

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Keys())

	_, ok := v.Lookup("anything")
	assert.False(t, ok)
	_, ok = v.Str()
	assert.False(t, ok)
	_, ok = v.Items()
	assert.False(t, ok)
}

func TestValue_Accessors(t *testing.T) {
	s := String("/mnt/x")
	got, ok := s.Str()
	require.True(t, ok)
	assert.Equal(t, "/mnt/x", got)
	assert.Equal(t, "/mnt/x", s.Raw())

	n := Scalar(12345)
	_, ok = n.Str()
	assert.False(t, ok)
	assert.Equal(t, 12345, n.Raw())

	seq := Sequence(String("a"), Scalar(1))
	items, ok := seq.Items()
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, seq.Len())
	assert.Nil(t, seq.Raw())

	empty := Sequence()
	items, ok = empty.Items()
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestValue_MappingOrderAndOverwrite(t *testing.T) {
	m := NewMapping()
	m.Set("b", String("1"))
	m.Set("a", String("2"))
	m.Set("b", String("3"))

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))

	v, ok := m.Lookup("b")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "3", s)

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, m.Keys(), "Keys must return a copy")
}

func TestValue_SetOnNonMappingPanics(t *testing.T) {
	assert.Panics(t, func() {
		String("x").Set("k", Null())
	})
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"servers": []any{
			map[string]any{"ip": "10.0.0.1", "hostname": "h1"},
			"oops",
		},
		"ll_filespace": "fs1",
		"count":        int64(3),
		"enabled":      true,
		"nothing":      nil,
		"tags":         []string{"x", "y"},
		"labels":       map[string]int{"a": 1},
	}

	v := FromAny(in)
	require.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, []string{"count", "enabled", "labels", "ll_filespace", "nothing", "servers", "tags"}, v.Keys())

	servers, _ := v.Lookup("servers")
	items, ok := servers.Items()
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, KindMapping, items[0].Kind())
	assert.Equal(t, KindString, items[1].Kind())

	count, _ := v.Lookup("count")
	assert.Equal(t, KindScalar, count.Kind())

	enabled, _ := v.Lookup("enabled")
	assert.Equal(t, KindScalar, enabled.Kind())

	nothing, ok := v.Lookup("nothing")
	require.True(t, ok, "explicit null keys are present")
	assert.True(t, nothing.IsNull())

	tags, _ := v.Lookup("tags")
	assert.Equal(t, KindSequence, tags.Kind())
	assert.Equal(t, 2, tags.Len())

	labels, _ := v.Lookup("labels")
	assert.Equal(t, KindMapping, labels.Kind())
	assert.True(t, labels.Has("a"))
}

func TestFromAny_NonStringKeys(t *testing.T) {
	v := FromAny(map[any]any{"ip": "10.0.0.1", 1: "one"})
	assert.Equal(t, []string{"ip"}, v.Keys())

	v = FromAny(map[int]string{1: "one"})
	assert.Equal(t, KindMapping, v.Kind())
	assert.Equal(t, 0, v.Len())
}
