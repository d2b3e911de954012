package result_test

import (
	"strings"
	"testing"

	"github.com/argonlab/typeson/result"
)

func TestCombine_KeepsWorseOutcome(t *testing.T) {
	rc := result.New(result.TaskReadField)
	rc = rc.Combine(result.Code(result.TaskConvert, result.Completed, result.PartialDefaults))
	if rc.Outcome() != result.PartialDefaults {
		t.Fatalf("expected PartialDefaults, got %v", rc.Outcome())
	}
	if rc.Task() != result.TaskReadField {
		t.Fatalf("combine must keep the receiver's task")
	}

	rc = rc.Combine(result.Code(result.TaskConvert, result.Completed, result.Skipped))
	if rc.Outcome() != result.PartialDefaults {
		t.Fatalf("combine must not downgrade the outcome, got %v", rc.Outcome())
	}
}

func TestCombine_KeepsWorseProcessing(t *testing.T) {
	rc := result.New(result.TaskWriteValue)
	rc = rc.Combine(result.Code(result.TaskWriteValue, result.Halted, result.Catastrophic))
	if rc.Processing() != result.Halted || !rc.HaltedOrWorse() {
		t.Fatalf("expected halted processing, got %v", rc.Processing())
	}
}

func TestWithOutcome_FatalOutcomesHalt(t *testing.T) {
	rc := result.New(result.TaskConvert).WithOutcome(result.Unknown)
	if rc.Processing() != result.Halted {
		t.Fatalf("fatal outcome should halt processing, got %v", rc.Processing())
	}

	rc = result.New(result.TaskConvert).WithOutcome(result.PartialDefaults)
	if rc.Processing() != result.Completed {
		t.Fatalf("success-category outcome should not halt, got %v", rc.Processing())
	}
}

func TestLoadSucceeded_Categories(t *testing.T) {
	for _, o := range []result.Outcome{result.Success, result.DefaultsUsed, result.PartialDefaults} {
		if !result.LoadSucceeded(o) {
			t.Fatalf("%v should be a success category", o)
		}
	}
	for _, o := range []result.Outcome{result.Skipped, result.Unsupported, result.TypeMismatch, result.Catastrophic} {
		if result.LoadSucceeded(o) {
			t.Fatalf("%v should not be a success category", o)
		}
	}
}

func TestRender_NamesTaskAndPath(t *testing.T) {
	rc := result.Code(result.TaskConvert, result.Completed, result.PartialDefaults)
	s := rc.Render("/position/x")
	if !strings.Contains(s, "Conversion") {
		t.Fatalf("rendered code should name the task: %q", s)
	}
	if !strings.Contains(s, "Path: /position/x") {
		t.Fatalf("rendered code should name the path: %q", s)
	}

	if strings.Contains(rc.Render(""), "Path:") {
		t.Fatalf("empty path should not be rendered")
	}
}
