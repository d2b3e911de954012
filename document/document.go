// Package document provides the in-memory tree that persisted objects are
// serialized through: a JSON-shaped value with ordered object members, a
// parser that reports 1-based line numbers, and a pretty printer that is the
// parser's structural inverse.
package document

import (
	"strconv"
)

// Kind enumerates the node kinds a Value can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a single key/value pair of an object node. Insertion order is
// preserved for printing; key lookup does not depend on it.
type Member struct {
	Key   string
	Value *Value
}

// Value is one node of a document tree. Numbers keep their lexical text so a
// parse/print round trip does not reformat them.
type Value struct {
	kind    Kind
	text    string // string payload, or number lexeme
	boolean bool
	members []Member       // object members, in insertion order
	index   map[string]int // object key -> members slot
	items   []*Value       // array elements
}

// Null returns a null node.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean node.
func Bool(b bool) *Value { return &Value{kind: KindBool, boolean: b} }

// String returns a string node.
func String(s string) *Value { return &Value{kind: KindString, text: s} }

// Number returns a number node from its lexical form. The lexeme is written
// verbatim on output; callers are responsible for it being a valid JSON number.
func Number(lexeme string) *Value { return &Value{kind: KindNumber, text: lexeme} }

// Int returns a number node for a signed integer.
func Int(v int64) *Value { return Number(strconv.FormatInt(v, 10)) }

// Uint returns a number node for an unsigned integer.
func Uint(v uint64) *Value { return Number(strconv.FormatUint(v, 10)) }

// Float returns a number node for a floating point value.
func Float(v float64) *Value { return Number(strconv.FormatFloat(v, 'g', -1, 64)) }

// Object returns an empty object node.
func Object() *Value { return &Value{kind: KindObject, index: map[string]int{}} }

// Array returns an empty array node.
func Array() *Value { return &Value{kind: KindArray} }

// Kind returns the node kind.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool   { return v.kind == KindNull }
func (v *Value) IsObject() bool { return v.kind == KindObject }
func (v *Value) IsArray() bool  { return v.kind == KindArray }
func (v *Value) IsString() bool { return v.kind == KindString }
func (v *Value) IsNumber() bool { return v.kind == KindNumber }
func (v *Value) IsBool() bool   { return v.kind == KindBool }

// StringValue returns the payload of a string node.
func (v *Value) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// BoolValue returns the payload of a boolean node.
func (v *Value) BoolValue() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// NumberLexeme returns the lexical text of a number node.
func (v *Value) NumberLexeme() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.text, true
}

// Int64 interprets a number node as a signed integer.
func (v *Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Uint64 interprets a number node as an unsigned integer.
func (v *Value) Uint64() (uint64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseUint(v.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 interprets a number node as a floating point value.
func (v *Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Set adds or replaces the member with the given key. Object keys stay unique;
// replacing keeps the member's original position.
func (v *Value) Set(key string, val *Value) *Value {
	if v.kind != KindObject {
		return v
	}
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return v
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
	return v
}

// Find returns the member value for a key.
func (v *Value) Find(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.members[i].Value, true
}

// Members returns an object's key/value pairs in insertion order.
func (v *Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Append adds an element to an array node.
func (v *Value) Append(val *Value) *Value {
	if v.kind == KindArray {
		v.items = append(v.items, val)
	}
	return v
}

// Items returns an array's elements.
func (v *Value) Items() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Len returns the member count of an object or element count of an array.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Equal reports deep structural equality. Numbers compare by lexeme.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber, KindString:
		return a.text == b.text
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Find(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
