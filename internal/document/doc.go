// Package document models a deserialized configuration document as a
// tagged union.
//
// Decoders produce loosely typed trees: a YAML scalar may be a string, an
// int, a timestamp or null, and any node may turn out to be a list where a
// mapping was expected. [Value] records which of those shapes each node has
// so checks can switch on [Kind] instead of asserting Go types.
//
//	doc, err := document.FromYAMLNode(&root)
//	if v, ok := doc.Lookup("ll_mount_point"); ok {
//		if s, ok := v.Str(); ok && !strings.HasPrefix(s, "/") {
//			// relative path
//		}
//	}
package document
