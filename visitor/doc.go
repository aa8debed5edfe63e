// Package visitor offers visitors over container values used by the dumper.
// It provides reflection-backed iteration over struct fields, maps, slices and arrays,
// with simple callback-based traversal. Struct field metadata is compiled once per type.
package visitor
