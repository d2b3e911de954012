package typeson

import "errors"

// MaxDocumentSize caps how many bytes a load will read from a stream. The
// threshold is deliberately small; a legitimate serialized-object file larger
// than this is doubtful, and the guard keeps a bad length field from driving
// an unbounded allocation.
const MaxDocumentSize = 1024 * 1024

var (
	// ErrDataTooLarge is returned when a stream reports more than
	// MaxDocumentSize bytes. The parser is never invoked in that case.
	ErrDataTooLarge = errors.New("data is too large")

	// ErrReadIncomplete is returned when a stream yields fewer bytes than its
	// reported length.
	ErrReadIncomplete = errors.New("could not read the full input stream")

	// ErrStreamNotWritable is returned when saving to a stream that refuses
	// writes.
	ErrStreamNotWritable = errors.New("the stream cannot be written to")

	// ErrRegistryRequired is returned when settings carry no type registry.
	// There is no process-wide fallback; the registry is an explicit
	// per-call dependency.
	ErrRegistryRequired = errors.New("a type registry is required")
)
