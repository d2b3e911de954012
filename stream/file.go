package stream

import (
	"fmt"
	"os"
	"path/filepath"
)

// OpenMode selects how a FileStream is opened. Modes combine with bitwise or.
type OpenMode uint8

const (
	ModeRead OpenMode = 1 << iota
	ModeWrite
	ModeAppend
	// ModeCreatePath creates missing parent directories before opening.
	ModeCreatePath
)

// FileStream is a GenericStream over an os.File. The opener owns the stream
// and must close it on every exit path.
type FileStream struct {
	f    *os.File
	mode OpenMode
}

// OpenFile opens path with the given mode. Write mode truncates an existing
// file; append mode keeps it and positions writes at the end.
func OpenFile(path string, mode OpenMode) (*FileStream, error) {
	if mode&(ModeRead|ModeWrite|ModeAppend) == 0 {
		return nil, fmt.Errorf("opening %q requires a read, write or append mode", path)
	}
	if mode&ModeCreatePath != 0 {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating directories for %q: %w", path, err)
		}
	}

	flags := 0
	switch {
	case mode&ModeRead != 0 && mode&(ModeWrite|ModeAppend) != 0:
		flags = os.O_RDWR | os.O_CREATE
	case mode&ModeAppend != 0:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case mode&ModeWrite != 0:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	default:
		flags = os.O_RDONLY
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileStream{f: f, mode: mode}, nil
}

func (s *FileStream) CanRead() bool  { return s.mode&ModeRead != 0 }
func (s *FileStream) CanWrite() bool { return s.mode&(ModeWrite|ModeAppend) != 0 }

func (s *FileStream) Length() int64 {
	info, err := s.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

func (s *FileStream) Read(p []byte) (int, error)  { return s.f.Read(p) }
func (s *FileStream) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s *FileStream) Close() error                { return s.f.Close() }

// Name returns the path the stream was opened with.
func (s *FileStream) Name() string { return s.f.Name() }
