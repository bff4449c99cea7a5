package envfile

import "github.com/thoreinstein/llcheck/internal/document"

// Top-level field names.
const (
	FieldFilespace      = "ll_filespace"
	FieldUsername       = "ll_username"
	FieldMountPoint     = "ll_mount_point"
	FieldCacheLocation  = "ll_cache_location"
	FieldDataCacheSize  = "ll_data_cache_size"
	FieldServers        = "servers"
	ServerFieldIP       = "ip"
	ServerFieldHostname = "hostname"
)

// FieldType is the semantic type a field must have.
type FieldType int

const (
	// TypeString requires a string scalar.
	TypeString FieldType = iota
	// TypeList requires a sequence.
	TypeList
)

// String returns the display name used in messages.
// The names are fixed so messages do not depend on the decoder in use.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Matches reports whether v has type t.
func (t FieldType) Matches(v document.Value) bool {
	switch t {
	case TypeString:
		return v.Kind() == document.KindString
	case TypeList:
		return v.Kind() == document.KindSequence
	default:
		return false
	}
}

// Field is one entry of the required field table.
type Field struct {
	Name string
	Type FieldType
}

// requiredFields is the required top-level field table, in check order.
// It is never modified; RequiredFields hands out copies.
var requiredFields = [...]Field{
	{Name: FieldFilespace, Type: TypeString},
	{Name: FieldUsername, Type: TypeString},
	{Name: FieldMountPoint, Type: TypeString},
	{Name: FieldCacheLocation, Type: TypeString},
	{Name: FieldDataCacheSize, Type: TypeString},
	{Name: FieldServers, Type: TypeList},
}

// serverFields are the fields every server entry must carry, in check order.
var serverFields = [...]Field{
	{Name: ServerFieldIP, Type: TypeString},
	{Name: ServerFieldHostname, Type: TypeString},
}

// RequiredFields returns the required top-level fields in check order.
func RequiredFields() []Field {
	out := make([]Field, len(requiredFields))
	copy(out, requiredFields[:])
	return out
}

// ServerFields returns the fields required in each server entry, in check order.
func ServerFields() []Field {
	out := make([]Field, len(serverFields))
	copy(out, serverFields[:])
	return out
}

// PathField is a field that must hold an absolute path.
type PathField struct {
	// Name is the top-level field name.
	Name string
	// Label is how messages refer to the field.
	Label string
}

var absolutePathFields = [...]PathField{
	{Name: FieldMountPoint, Label: "Mount point"},
	{Name: FieldCacheLocation, Label: "Cache location"},
}

// AbsolutePathFields returns the fields that must hold absolute paths,
// in check order.
func AbsolutePathFields() []PathField {
	out := make([]PathField, len(absolutePathFields))
	copy(out, absolutePathFields[:])
	return out
}
