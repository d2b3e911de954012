package mapper

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"

	"github.com/argonlab/typeson/document"
	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
)

// UUIDParseFailure is the exact diagnostic emitted when a stored string cannot
// be interpreted as a uuid. The default aggregator filters this message; see
// the root package for why.
const UUIDParseFailure = "No part of the string could be interpreted as a uuid."

// Load decodes a payload document into target, which must be a pointer to an
// instance of the registered type. Members absent from the payload leave their
// fields at default values; a nil payload leaves the whole target at defaults.
func Load(target any, id model.TypeID, payload *document.Value, s Settings) result.ResultCode {
	rc := result.New(result.TaskReadField)
	if s.Registry == nil {
		return s.report("a type registry is required for loading objects",
			rc.WithOutcome(result.Catastrophic), "")
	}
	desc := s.Registry.FindTypeByID(id)
	if desc == nil {
		return s.report(fmt.Sprintf("type id %s is not registered", id),
			rc.WithOutcome(result.Unknown), "")
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Type() != desc.Type {
		return s.report(fmt.Sprintf("load target must be a non-nil pointer to %q", desc.Name),
			rc.WithOutcome(result.TypeMismatch), "")
	}

	if payload == nil || payload.IsNull() {
		return result.Code(result.TaskReadField, result.Completed, result.DefaultsUsed)
	}
	if !payload.IsObject() {
		return s.report(fmt.Sprintf("payload for %q must be an object, got %s", desc.Name, payload.Kind()),
			rc.WithOutcome(result.TypeMismatch), "")
	}

	return loadStruct(v.Elem(), payload, "", s)
}

func loadStruct(v reflect.Value, obj *document.Value, path string, s Settings) result.ResultCode {
	rc := result.New(result.TaskReadField)
	fields := model.FieldsOf(v.Type())
	byName := make(map[string]model.FieldInfo, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	seen := 0
	for _, m := range obj.Members() {
		memberPath := childPath(path, m.Key)
		f, ok := byName[m.Key]
		if !ok {
			rc = rc.Combine(s.report(fmt.Sprintf("unrecognized field %q", m.Key),
				result.Code(result.TaskReadField, result.Completed, result.Skipped), memberPath))
			if rc.HaltedOrWorse() {
				return rc
			}
			continue
		}
		seen++
		rc = rc.Combine(loadValue(v.Field(f.Index), m.Value, memberPath, s))
		if rc.HaltedOrWorse() {
			return rc
		}
	}

	switch {
	case len(fields) > 0 && seen == 0:
		rc = rc.Combine(result.Code(result.TaskReadField, result.Completed, result.DefaultsUsed))
	case seen < len(fields):
		rc = rc.Combine(result.Code(result.TaskReadField, result.Completed, result.PartialDefaults))
	}
	return rc
}

func loadValue(fv reflect.Value, node *document.Value, path string, s Settings) result.ResultCode {
	success := result.New(result.TaskConvert)

	if fv.Type() == uuidType {
		str, ok := node.StringValue()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		u, err := uuid.Parse(str)
		if err != nil {
			// Reported as Invalid, yet the field is merely left at its default
			// and the aggregate stays in a success category. Known defect in
			// the uuid coercion; the default reporting chain filters the
			// message by exact match.
			s.report(UUIDParseFailure,
				result.Code(result.TaskConvert, result.Altered, result.Invalid), path)
			return result.Code(result.TaskConvert, result.Altered, result.DefaultsUsed)
		}
		fv.Set(reflect.ValueOf(u))
		return success
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, ok := node.BoolValue()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		fv.SetBool(b)
		return success
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := node.Int64()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		if fv.OverflowInt(n) {
			return s.report(fmt.Sprintf("value %d does not fit in %s", n, fv.Type()),
				result.Code(result.TaskConvert, result.Completed, result.Invalid), path)
		}
		fv.SetInt(n)
		return success
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := node.Uint64()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		if fv.OverflowUint(n) {
			return s.report(fmt.Sprintf("value %d does not fit in %s", n, fv.Type()),
				result.Code(result.TaskConvert, result.Completed, result.Invalid), path)
		}
		fv.SetUint(n)
		return success
	case reflect.Float32, reflect.Float64:
		f, ok := node.Float64()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		fv.SetFloat(f)
		return success
	case reflect.String:
		str, ok := node.StringValue()
		if !ok {
			return mismatch(fv, node, path, s)
		}
		fv.SetString(str)
		return success
	case reflect.Struct:
		if !node.IsObject() {
			return mismatch(fv, node, path, s)
		}
		return loadStruct(fv, node, path, s)
	case reflect.Pointer:
		if node.IsNull() {
			fv.SetZero()
			return success
		}
		fv.Set(reflect.New(fv.Type().Elem()))
		return loadValue(fv.Elem(), node, path, s)
	case reflect.Slice:
		if !node.IsArray() {
			return mismatch(fv, node, path, s)
		}
		items := node.Items()
		out := reflect.MakeSlice(fv.Type(), len(items), len(items))
		rc := success
		for i, item := range items {
			rc = rc.Combine(loadValue(out.Index(i), item, childPath(path, strconv.Itoa(i)), s))
			if rc.HaltedOrWorse() {
				return rc
			}
		}
		fv.Set(out)
		return rc
	case reflect.Array:
		if !node.IsArray() {
			return mismatch(fv, node, path, s)
		}
		items := node.Items()
		rc := success
		if len(items) != fv.Len() {
			rc = rc.Combine(s.report(fmt.Sprintf("stored array holds %d elements, field %s holds %d", len(items), fv.Type(), fv.Len()),
				result.Code(result.TaskConvert, result.Completed, result.PartialSkip), path))
		}
		for i := 0; i < fv.Len() && i < len(items); i++ {
			rc = rc.Combine(loadValue(fv.Index(i), items[i], childPath(path, strconv.Itoa(i)), s))
			if rc.HaltedOrWorse() {
				return rc
			}
		}
		return rc
	case reflect.Map:
		if fv.Type().Key().Kind() != reflect.String {
			return s.report(fmt.Sprintf("map key type %s is not supported, keys must be strings", fv.Type().Key()),
				result.Code(result.TaskConvert, result.Completed, result.Unsupported), path)
		}
		if !node.IsObject() {
			return mismatch(fv, node, path, s)
		}
		out := reflect.MakeMapWithSize(fv.Type(), node.Len())
		rc := success
		for _, m := range node.Members() {
			elem := reflect.New(fv.Type().Elem()).Elem()
			rc = rc.Combine(loadValue(elem, m.Value, childPath(path, m.Key), s))
			if rc.HaltedOrWorse() {
				return rc
			}
			out.SetMapIndex(reflect.ValueOf(m.Key), elem)
		}
		fv.Set(out)
		return rc
	default:
		return s.report(fmt.Sprintf("type %s is not supported for deserialization", fv.Type()),
			result.Code(result.TaskConvert, result.Completed, result.Unsupported), path)
	}
}

func mismatch(fv reflect.Value, node *document.Value, path string, s Settings) result.ResultCode {
	return s.report(fmt.Sprintf("cannot convert a %s to %s", node.Kind(), fv.Type()),
		result.Code(result.TaskConvert, result.Completed, result.TypeMismatch), path)
}
