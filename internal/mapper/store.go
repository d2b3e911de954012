package mapper

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/argonlab/typeson/document"
	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
)

// Store encodes obj's fields into a payload document. When defaultObj is
// non-nil, fields equal to the corresponding default field are omitted so the
// payload documents only overrides. The returned document is always an object
// node, possibly empty.
func Store(obj, defaultObj any, id model.TypeID, s Settings) (*document.Value, result.ResultCode) {
	rc := result.New(result.TaskWriteValue)
	if s.Registry == nil {
		return nil, s.report("a type registry is required for storing objects",
			rc.WithOutcome(result.Catastrophic), "")
	}
	desc := s.Registry.FindTypeByID(id)
	if desc == nil {
		return nil, s.report(fmt.Sprintf("type id %s is not registered", id),
			rc.WithOutcome(result.Unknown), "")
	}

	v, ok := deref(reflect.ValueOf(obj))
	if !ok || v.Type() != desc.Type {
		return nil, s.report(fmt.Sprintf("object does not match registered type %q", desc.Name),
			rc.WithOutcome(result.TypeMismatch), "")
	}

	def := reflect.Value{}
	if defaultObj != nil {
		dv, ok := deref(reflect.ValueOf(defaultObj))
		if !ok || dv.Type() != desc.Type {
			return nil, s.report(fmt.Sprintf("default object does not match registered type %q", desc.Name),
				rc.WithOutcome(result.TypeMismatch), "")
		}
		def = dv
	}

	return storeStruct(v, def, "", s)
}

func storeStruct(v, def reflect.Value, path string, s Settings) (*document.Value, result.ResultCode) {
	obj := document.Object()
	rc := result.New(result.TaskWriteValue)
	fields := model.FieldsOf(v.Type())
	omitted := 0

	for _, f := range fields {
		fieldPath := childPath(path, f.Name)
		fv := v.Field(f.Index)

		var dfv reflect.Value
		if def.IsValid() {
			dfv = def.Field(f.Index)
			if reflect.DeepEqual(fv.Interface(), dfv.Interface()) {
				omitted++
				continue
			}
		}

		node, fieldRC := storeValue(fv, dfv, fieldPath, s)
		rc = rc.Combine(fieldRC)
		if rc.HaltedOrWorse() {
			return obj, rc
		}
		if node != nil {
			obj.Set(f.Name, node)
		}
	}

	switch {
	case len(fields) > 0 && omitted == len(fields):
		rc = rc.Combine(result.Code(result.TaskWriteValue, result.Completed, result.DefaultsUsed))
	case omitted > 0:
		rc = rc.Combine(result.Code(result.TaskWriteValue, result.Completed, result.PartialDefaults))
	}
	return obj, rc
}

func storeValue(v, def reflect.Value, path string, s Settings) (*document.Value, result.ResultCode) {
	success := result.New(result.TaskWriteValue)

	if v.Type() == uuidType {
		return document.String(v.Interface().(uuid.UUID).String()), success
	}

	switch v.Kind() {
	case reflect.Bool:
		return document.Bool(v.Bool()), success
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return document.Int(v.Int()), success
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return document.Uint(v.Uint()), success
	case reflect.Float32, reflect.Float64:
		return document.Float(v.Float()), success
	case reflect.String:
		return document.String(v.String()), success
	case reflect.Struct:
		return storeStruct(v, def, path, s)
	case reflect.Pointer:
		if v.IsNil() {
			return document.Null(), success
		}
		var delem reflect.Value
		if def.IsValid() && !def.IsNil() {
			delem = def.Elem()
		}
		return storeValue(v.Elem(), delem, path, s)
	case reflect.Slice, reflect.Array:
		arr := document.Array()
		rc := success
		for i := 0; i < v.Len(); i++ {
			node, elemRC := storeValue(v.Index(i), reflect.Value{}, childPath(path, strconv.Itoa(i)), s)
			rc = rc.Combine(elemRC)
			if rc.HaltedOrWorse() {
				return arr, rc
			}
			if node == nil {
				node = document.Null()
			}
			arr.Append(node)
		}
		return arr, rc
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, s.report(fmt.Sprintf("map key type %s is not supported, keys must be strings", v.Type().Key()),
				result.Code(result.TaskWriteValue, result.Completed, result.Unsupported), path)
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := document.Object()
		rc := success
		for _, k := range keys {
			node, elemRC := storeValue(v.MapIndex(reflect.ValueOf(k)), reflect.Value{}, childPath(path, k), s)
			rc = rc.Combine(elemRC)
			if rc.HaltedOrWorse() {
				return obj, rc
			}
			if node == nil {
				node = document.Null()
			}
			obj.Set(k, node)
		}
		return obj, rc
	case reflect.Interface:
		if v.IsNil() {
			return document.Null(), success
		}
		return storeValue(v.Elem(), reflect.Value{}, path, s)
	default:
		return nil, s.report(fmt.Sprintf("type %s is not supported for serialization", v.Type()),
			result.Code(result.TaskWriteValue, result.Completed, result.Unsupported), path)
	}
}
