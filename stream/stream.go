// Package stream provides the scoped byte-stream adapters the persistence
// layer reads and writes through: an in-memory buffer stream and a file
// stream with create-path support. Streams report their own length and
// direction capabilities so callers can guard reads before allocating.
package stream

import "io"

// GenericStream is a readable and/or writable byte stream of known length.
// Implementations are not safe for concurrent use; each save or load call
// owns its stream for the duration of the call.
type GenericStream interface {
	io.Reader
	io.Writer
	io.Closer
	CanRead() bool
	CanWrite() bool
	// Length returns the total number of bytes the stream holds.
	Length() int64
}

// ByteStream is an in-memory GenericStream. Reads consume from the front of
// the buffer; writes append to the end.
type ByteStream struct {
	buf     []byte
	readPos int
}

// NewByteStream returns a ByteStream seeded with the given bytes. A nil or
// empty slice gives an empty writable stream.
func NewByteStream(initial []byte) *ByteStream {
	return &ByteStream{buf: append([]byte(nil), initial...)}
}

func (s *ByteStream) CanRead() bool  { return true }
func (s *ByteStream) CanWrite() bool { return true }
func (s *ByteStream) Length() int64  { return int64(len(s.buf)) }

func (s *ByteStream) Read(p []byte) (int, error) {
	if s.readPos >= len(s.buf) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.readPos:])
	s.readPos += n
	return n, nil
}

func (s *ByteStream) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *ByteStream) Close() error { return nil }

// Bytes returns the stream's full contents, including unread bytes.
func (s *ByteStream) Bytes() []byte { return s.buf }
