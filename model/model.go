// Package model is the type/object model the persistence layer resolves types
// through: stable ids, stable names, default-instance construction and field
// enumeration. The persistence core only ever looks types up here; it never
// creates descriptors itself.
package model

import (
	"hash/crc32"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// TypeID is the stable opaque identifier of a registered type.
type TypeID = uuid.UUID

// TypeDescriptor describes one registered type. Descriptors are owned by the
// registry that created them; callers treat them as read-only.
type TypeDescriptor struct {
	Name string
	ID   TypeID
	Type reflect.Type // underlying struct type, never a pointer
}

// Registry is the lookup surface the persistence layer depends on.
type Registry interface {
	// FindTypeByID returns the descriptor for an id, or nil when unknown.
	FindTypeByID(id TypeID) *TypeDescriptor
	// FindTypeIDsByName returns the candidate ids a name hashes to, in
	// registration order. Several types may share a name hash.
	FindTypeIDsByName(name string) []TypeID
	// ConstructDefault returns a pointer to a default-constructed instance.
	ConstructDefault(id TypeID) (any, error)
}

// NameHash is the 32-bit hash used for by-name lookups. Hashing lowercases
// first so lookups match the case-insensitive name comparison used elsewhere.
func NameHash(name string) uint32 {
	return crc32.ChecksumIEEE([]byte(strings.ToLower(name)))
}

// FieldInfo names one serializable field of a struct type.
type FieldInfo struct {
	Name  string
	Index int // index into reflect.Type.Field
}

// FieldsOf enumerates the serializable fields of a struct type: exported
// fields only, named by their json tag when one is present. A tag of "-"
// excludes the field.
func FieldsOf(t reflect.Type) []FieldInfo {
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]FieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, FieldInfo{Name: name, Index: i})
	}
	return fields
}
