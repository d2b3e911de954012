package mapper_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/argonlab/typeson/document"
	"github.com/argonlab/typeson/internal/mapper"
	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
)

type inventory struct {
	Label  string            `json:"label"`
	Counts map[string]int    `json:"counts"`
	Tags   []string          `json:"tags"`
	Owner  *uuid.UUID        `json:"owner"`
	Notes  map[string]string `json:"notes"`
}

type gadget struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
	On    bool    `json:"on"`
}

var (
	inventoryID = uuid.MustParse("11111111-2222-3333-4444-555555555501")
	gadgetID    = uuid.MustParse("11111111-2222-3333-4444-555555555502")
)

func testSettings(t *testing.T) mapper.Settings {
	t.Helper()
	reg := model.NewRegistry()
	reg.MustRegister("Inventory", inventoryID, inventory{})
	reg.MustRegister("Gadget", gadgetID, gadget{})
	return mapper.Settings{Registry: reg}
}

func TestStore_AllFieldsWithoutDefault(t *testing.T) {
	s := testSettings(t)
	obj := gadget{Name: "drill", Ratio: 0.5, On: true}

	payload, rc := mapper.Store(&obj, nil, gadgetID, s)
	if rc.Processing() != result.Completed || rc.Outcome() != result.Success {
		t.Fatalf("unexpected code: %s", rc.Render(""))
	}
	if payload.Len() != 3 {
		t.Fatalf("all fields should be written, got %d", payload.Len())
	}
}

func TestStore_DefaultsUsedWhenIdentical(t *testing.T) {
	s := testSettings(t)
	obj := gadget{Name: "drill"}
	def := gadget{Name: "drill"}

	payload, rc := mapper.Store(&obj, &def, gadgetID, s)
	if rc.Outcome() != result.DefaultsUsed {
		t.Fatalf("identical object should report DefaultsUsed, got %s", rc.Render(""))
	}
	if payload.Len() != 0 {
		t.Fatalf("payload should be empty, got %d members", payload.Len())
	}
}

func TestStore_PartialDefaults(t *testing.T) {
	s := testSettings(t)
	obj := gadget{Name: "drill", On: true}
	def := gadget{Name: "drill"}

	payload, rc := mapper.Store(&obj, &def, gadgetID, s)
	if rc.Outcome() != result.PartialDefaults {
		t.Fatalf("expected PartialDefaults, got %s", rc.Render(""))
	}
	if payload.Len() != 1 {
		t.Fatalf("only the differing field should be written, got %d", payload.Len())
	}
	if _, ok := payload.Find("on"); !ok {
		t.Fatalf("the differing field is missing")
	}
}

func TestStore_CompoundValues(t *testing.T) {
	s := testSettings(t)
	owner := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	obj := inventory{
		Label:  "bin",
		Counts: map[string]int{"bolt": 3, "nut": 7},
		Tags:   []string{"a", "b"},
		Owner:  &owner,
	}

	payload, rc := mapper.Store(&obj, nil, inventoryID, s)
	if rc.Processing() != result.Completed {
		t.Fatalf("store failed: %s", rc.Render(""))
	}

	counts, _ := payload.Find("counts")
	if !counts.IsObject() || counts.Len() != 2 {
		t.Fatalf("counts should be a 2-member object")
	}
	// Map members are emitted in sorted key order for deterministic output.
	if counts.Members()[0].Key != "bolt" || counts.Members()[1].Key != "nut" {
		t.Fatalf("map keys not sorted: %v, %v", counts.Members()[0].Key, counts.Members()[1].Key)
	}

	ownerNode, _ := payload.Find("owner")
	if sVal, _ := ownerNode.StringValue(); sVal != owner.String() {
		t.Fatalf("uuid pointer should serialize as its string form, got %q", sVal)
	}

	notes, _ := payload.Find("notes")
	if !notes.IsObject() || notes.Len() != 0 {
		t.Fatalf("nil map should serialize as an empty object")
	}
}

func TestStore_NilPointerIsNull(t *testing.T) {
	s := testSettings(t)
	payload, rc := mapper.Store(&inventory{}, nil, inventoryID, s)
	if rc.Processing() != result.Completed {
		t.Fatalf("store failed: %s", rc.Render(""))
	}
	ownerNode, _ := payload.Find("owner")
	if !ownerNode.IsNull() {
		t.Fatalf("nil pointer should serialize as null, got %s", ownerNode.Kind())
	}
}

func TestStore_UnregisteredType(t *testing.T) {
	s := testSettings(t)
	_, rc := mapper.Store(&gadget{}, nil, uuid.New(), s)
	if rc.Outcome() != result.Unknown || !rc.HaltedOrWorse() {
		t.Fatalf("unregistered id should halt with Unknown, got %s", rc.Render(""))
	}
}

func TestLoad_EmptyPayloadIsDefaultsUsed(t *testing.T) {
	s := testSettings(t)
	var target gadget
	rc := mapper.Load(&target, gadgetID, document.Object(), s)
	if rc.Outcome() != result.DefaultsUsed {
		t.Fatalf("empty payload should report DefaultsUsed, got %s", rc.Render(""))
	}
}

func TestLoad_NilPayloadIsDefaultsUsed(t *testing.T) {
	s := testSettings(t)
	var target gadget
	rc := mapper.Load(&target, gadgetID, nil, s)
	if rc.Outcome() != result.DefaultsUsed {
		t.Fatalf("nil payload should report DefaultsUsed, got %s", rc.Render(""))
	}
}

func TestLoad_PartialPayloadIsPartialDefaults(t *testing.T) {
	s := testSettings(t)
	payload := document.Object()
	payload.Set("name", document.String("drill"))

	var target gadget
	rc := mapper.Load(&target, gadgetID, payload, s)
	if rc.Outcome() != result.PartialDefaults {
		t.Fatalf("partial payload should report PartialDefaults, got %s", rc.Render(""))
	}
	if target.Name != "drill" || target.Ratio != 0 {
		t.Fatalf("unexpected target: %+v", target)
	}
}

func TestLoad_FullPayloadIsSuccess(t *testing.T) {
	s := testSettings(t)
	payload := document.Object()
	payload.Set("name", document.String("drill"))
	payload.Set("ratio", document.Float(0.25))
	payload.Set("on", document.Bool(true))

	var target gadget
	rc := mapper.Load(&target, gadgetID, payload, s)
	if rc.Outcome() != result.Success {
		t.Fatalf("full payload should report Success, got %s", rc.Render(""))
	}
	if target != (gadget{Name: "drill", Ratio: 0.25, On: true}) {
		t.Fatalf("unexpected target: %+v", target)
	}
}

func TestLoad_UnknownMemberReportsSkipped(t *testing.T) {
	reg := model.NewRegistry()
	reg.MustRegister("Gadget", gadgetID, gadget{})

	var reported []string
	s := mapper.Settings{
		Registry: reg,
		Reporting: func(message string, rc result.ResultCode, path string) result.ResultCode {
			reported = append(reported, path+": "+message)
			return rc
		},
	}

	payload := document.Object()
	payload.Set("name", document.String("drill"))
	payload.Set("ratio", document.Float(1))
	payload.Set("on", document.Bool(false))
	payload.Set("bogus", document.Int(1))

	var target gadget
	rc := mapper.Load(&target, gadgetID, payload, s)
	if rc.Outcome() != result.Skipped {
		t.Fatalf("unknown member should dominate as Skipped, got %s", rc.Render(""))
	}
	if len(reported) != 1 || !strings.Contains(reported[0], "/bogus") {
		t.Fatalf("the skip should be reported with its path: %v", reported)
	}
}

func TestLoad_TypeMismatchLeavesDefault(t *testing.T) {
	s := testSettings(t)
	payload := document.Object()
	payload.Set("name", document.Int(12)) // number into a string field
	payload.Set("ratio", document.Float(1))
	payload.Set("on", document.Bool(true))

	var target gadget
	rc := mapper.Load(&target, gadgetID, payload, s)
	if rc.Outcome() != result.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %s", rc.Render(""))
	}
	if target.Name != "" {
		t.Fatalf("mismatched field should stay at its default, got %q", target.Name)
	}
	if target.Ratio != 1 || !target.On {
		t.Fatalf("later fields should still load: %+v", target)
	}
}

func TestLoad_CompoundRoundTrip(t *testing.T) {
	s := testSettings(t)
	owner := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	original := inventory{
		Label:  "bin",
		Counts: map[string]int{"bolt": 3},
		Tags:   []string{"x", "y", "z"},
		Owner:  &owner,
		Notes:  map[string]string{"a": "b"},
	}

	payload, rc := mapper.Store(&original, nil, inventoryID, s)
	if rc.Processing() != result.Completed {
		t.Fatalf("store failed: %s", rc.Render(""))
	}

	var loaded inventory
	rc = mapper.Load(&loaded, inventoryID, payload, s)
	if !result.LoadSucceeded(rc.Outcome()) {
		t.Fatalf("load failed: %s", rc.Render(""))
	}
	if loaded.Label != original.Label ||
		len(loaded.Counts) != 1 || loaded.Counts["bolt"] != 3 ||
		len(loaded.Tags) != 3 || loaded.Tags[2] != "z" ||
		loaded.Owner == nil || *loaded.Owner != owner ||
		loaded.Notes["a"] != "b" {
		t.Fatalf("round trip changed the object: %+v", loaded)
	}
}

func TestLoad_TargetMustMatchType(t *testing.T) {
	s := testSettings(t)
	var wrong inventory
	rc := mapper.Load(&wrong, gadgetID, document.Object(), s)
	if rc.Outcome() != result.TypeMismatch || !rc.HaltedOrWorse() {
		t.Fatalf("wrong target type should halt, got %s", rc.Render(""))
	}

	rc = mapper.Load(nil, gadgetID, document.Object(), s)
	if !rc.HaltedOrWorse() {
		t.Fatalf("nil target should halt, got %s", rc.Render(""))
	}
}
