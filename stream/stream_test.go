package stream_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/argonlab/typeson/stream"
)

func TestByteStream_WriteThenRead(t *testing.T) {
	s := stream.NewByteStream(nil)
	if !s.CanRead() || !s.CanWrite() {
		t.Fatalf("byte streams are bidirectional")
	}

	n, err := s.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if s.Length() != 5 {
		t.Fatalf("length = %d", s.Length())
	}

	buf := make([]byte, 5)
	if _, err := io.ReadFull(s, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("read %q", buf)
	}

	if _, err := s.Read(buf); err != io.EOF {
		t.Fatalf("expected EOF after consuming the stream, got %v", err)
	}
}

func TestByteStream_SeededContents(t *testing.T) {
	seed := []byte("seed")
	s := stream.NewByteStream(seed)
	seed[0] = 'X' // the stream must hold its own copy
	if string(s.Bytes()) != "seed" {
		t.Fatalf("stream shares the caller's buffer: %q", s.Bytes())
	}
}

func TestOpenFile_ReadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s, err := stream.OpenFile(path, stream.ModeRead)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if s.CanWrite() {
		t.Fatalf("read-only stream should refuse writes")
	}
	if !s.CanRead() {
		t.Fatalf("read stream should be readable")
	}
	if s.Length() != 2 {
		t.Fatalf("length = %d", s.Length())
	}
}

func TestOpenFile_CreatePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")

	if _, err := stream.OpenFile(path, stream.ModeWrite); err == nil {
		t.Fatalf("write without create-path should fail for missing directories")
	}

	s, err := stream.OpenFile(path, stream.ModeWrite|stream.ModeCreatePath)
	if err != nil {
		t.Fatalf("open with create-path: %v", err)
	}
	if _, err := s.Write([]byte("data")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil || string(content) != "data" {
		t.Fatalf("file contents %q, err %v", content, err)
	}
}

func TestOpenFile_WriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("old contents"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s, err := stream.OpenFile(path, stream.ModeWrite)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Write([]byte("new")); err != nil {
		t.Fatalf("write: %v", err)
	}
	s.Close()

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Fatalf("write mode should truncate, got %q", content)
	}
}

func TestOpenFile_NoModeRejected(t *testing.T) {
	if _, err := stream.OpenFile("whatever", stream.ModeCreatePath); err == nil {
		t.Fatalf("expected an error when no direction mode is given")
	}
}
