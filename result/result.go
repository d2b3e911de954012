// Package result defines the outcome taxonomy shared by the object mapper and
// the persistence API. Every field-level operation resolves to a ResultCode;
// codes combine across a whole load/save call so the final code reflects the
// worst thing that happened.
package result

import (
	"fmt"
	"strings"
)

// Processing reports whether an operation ran to completion.
type Processing uint8

const (
	// Completed means the operation fully processed its input.
	Completed Processing = iota
	// Altered means the operation completed but had to change the target to do so.
	Altered
	// PartialAlter means only part of the target could be processed.
	PartialAlter
	// Halted means the operation stopped before finishing.
	Halted
)

func (p Processing) String() string {
	switch p {
	case Completed:
		return "completed"
	case Altered:
		return "altered the target and completed"
	case PartialAlter:
		return "partially altered the target"
	case Halted:
		return "halted"
	default:
		return "unknown processing state"
	}
}

// Outcome classifies how an operation resolved. The enumeration is ordered by
// severity: everything after PartialDefaults is a failure. The set is open;
// callers comparing outcomes should use ordering (>= Unsupported) rather than
// exhaustive switches.
type Outcome uint8

const (
	// Success means the value was read or written exactly as stored.
	Success Outcome = iota + 1
	// Skipped means a value was deliberately not processed, e.g. an
	// unrecognized field in the input.
	Skipped
	// PartialSkip means some nested values were skipped.
	PartialSkip
	// DefaultsUsed means the target was left entirely at default values.
	DefaultsUsed
	// PartialDefaults means some of the target's values fell back to defaults.
	PartialDefaults
	// Unavailable means the target could not receive the value.
	Unavailable
	// Unsupported means the operation is not supported for the value's type.
	Unsupported
	// TypeMismatch means the stored value's type does not match the target.
	TypeMismatch
	// TestFailed means a comparison against a default instance failed.
	TestFailed
	// Missing means a required value was absent.
	Missing
	// Invalid means the value was recognized but malformed.
	Invalid
	// Unknown means the cause of the failure could not be determined.
	Unknown
	// Catastrophic means an unrecoverable internal failure.
	Catastrophic
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "with success"
	case Skipped:
		return "but skipped the value"
	case PartialSkip:
		return "but skipped some values"
	case DefaultsUsed:
		return "using only defaults"
	case PartialDefaults:
		return "using some defaults"
	case Unavailable:
		return "but the target was unavailable"
	case Unsupported:
		return "due to an unsupported action"
	case TypeMismatch:
		return "due to a type mismatch"
	case TestFailed:
		return "because a comparison failed"
	case Missing:
		return "due to missing data"
	case Invalid:
		return "due to invalid data"
	case Unknown:
		return "for unknown reasons"
	case Catastrophic:
		return "due to a catastrophic issue"
	default:
		return "with an unspecified outcome"
	}
}

// Task names the operation a ResultCode belongs to.
type Task uint8

const (
	TaskRetrieveInfo Task = iota + 1
	TaskCreateDefault
	TaskConvert
	TaskClear
	TaskReadField
	TaskWriteValue
	TaskMerge
)

func (t Task) String() string {
	switch t {
	case TaskRetrieveInfo:
		return "retrieval of information"
	case TaskCreateDefault:
		return "creation of defaults"
	case TaskConvert:
		return "conversion"
	case TaskClear:
		return "clearing of values"
	case TaskReadField:
		return "reading of a field"
	case TaskWriteValue:
		return "writing of a value"
	case TaskMerge:
		return "merging of values"
	default:
		return "an unknown task"
	}
}

// ResultCode is the per-operation triple of task, processing state and outcome.
// The zero value is not meaningful; construct codes with New.
type ResultCode struct {
	task       Task
	processing Processing
	outcome    Outcome
}

// New returns a ResultCode for the given task with Completed/Success state.
func New(task Task) ResultCode {
	return ResultCode{task: task, processing: Completed, outcome: Success}
}

// Code returns a fully specified ResultCode.
func Code(task Task, processing Processing, outcome Outcome) ResultCode {
	return ResultCode{task: task, processing: processing, outcome: outcome}
}

func (rc ResultCode) Task() Task             { return rc.task }
func (rc ResultCode) Processing() Processing { return rc.processing }
func (rc ResultCode) Outcome() Outcome       { return rc.outcome }

// WithOutcome returns a copy of rc with the outcome replaced. Outcomes past
// PartialDefaults also halt processing.
func (rc ResultCode) WithOutcome(o Outcome) ResultCode {
	rc.outcome = o
	if o >= Unavailable {
		rc.processing = Halted
	}
	return rc
}

// Combine merges two codes, keeping the more severe outcome and the less
// complete processing state. The task of the receiver wins; Combine is used to
// fold field-level codes into a call-level aggregate.
func (rc ResultCode) Combine(other ResultCode) ResultCode {
	if other.outcome > rc.outcome {
		rc.outcome = other.outcome
	}
	if other.processing > rc.processing {
		rc.processing = other.processing
	}
	return rc
}

// HaltedOrWorse reports whether processing stopped early.
func (rc ResultCode) HaltedOrWorse() bool { return rc.processing == Halted }

// Render formats the code with the field path it applies to, e.g.
// "Conversion completed using some defaults. Path: /position/x".
func (rc ResultCode) Render(path string) string {
	var b strings.Builder
	task := rc.task.String()
	if len(task) > 0 {
		b.WriteString(strings.ToUpper(task[:1]))
		b.WriteString(task[1:])
	}
	fmt.Fprintf(&b, " %s %s.", rc.processing, rc.outcome)
	if path != "" {
		fmt.Fprintf(&b, " Path: %s", path)
	}
	return b.String()
}

// LoadSucceeded reports whether an outcome counts as a successful load. Only
// Success, DefaultsUsed and PartialDefaults qualify; Skipped does not, because
// skipping stored data on load means the file carried something the target
// could not accept.
func LoadSucceeded(o Outcome) bool {
	return o == Success || o == DefaultsUsed || o == PartialDefaults
}

// IssueCallback is the reporting hook invoked for every noteworthy event
// during a load or save. Implementations may return a modified code to
// influence how processing continues.
type IssueCallback func(message string, rc ResultCode, path string) ResultCode
