package typeson

// Package typeson persists reflected object graphs as versioned JSON
// documents and loads them back with strict validation:
//
// - A fixed envelope (Type/Version/ClassName/ClassData) around every payload
// - Default-diffing on save so files document only overrides
// - An outcome taxonomy (result.ResultCode) aggregated per call; a load only
//   succeeds when the final outcome is a success category AND no diagnostics
//   accumulated
// - Scoped stream/file adapters with a fixed maximum-input-size guard
//
// Design policy:
// - Keep only public APIs in the root package; put the object mapper under internal/.
// - Place the document tree under document/, the type registry under model/,
//   stream adapters under stream/, result codes under result/, and the CLI
//   under cmd/typeson.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := model.NewRegistry()
//	reg.MustRegister("Point", pointID, Point{})
//
//	st := stream.NewByteStream(nil)
//	err := typeson.SaveObjectToStream(&p, pointID, st, nil, &typeson.SerializerSettings{Registry: reg})
//
//	var out Point
//	err = typeson.LoadObjectFromStream(&out, pointID, stream.NewByteStream(st.Bytes()),
//		&typeson.DeserializerSettings{Registry: reg})
