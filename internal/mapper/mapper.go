// Package mapper walks reflected object instances against the type registry,
// producing payload documents on save and populating instances on load. It is
// internal; the root package wraps it with envelope handling and outcome
// aggregation.
package mapper

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
)

// Settings carries the collaborators for one store or load call. A fresh
// value is built per call; nothing here is shared across calls.
type Settings struct {
	Registry  model.Registry
	Reporting result.IssueCallback
}

func (s Settings) report(message string, rc result.ResultCode, path string) result.ResultCode {
	if s.Reporting != nil {
		return s.Reporting(message, rc, path)
	}
	return rc
}

var uuidType = reflect.TypeOf(uuid.UUID{})

func childPath(parent, name string) string {
	return parent + "/" + name
}

// deref unwraps pointers and interfaces down to a concrete value. The second
// return is false when the chain ends in nil.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}
