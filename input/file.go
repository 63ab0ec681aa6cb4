package input

import (
	"io"
	"os"
)

type fileStream struct {
	f *os.File
}

// OpenFile opens a local file as a Stream. Local files have no declared
// content type; dispatch on them is suffix-driven.
func OpenFile(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileStream{f: f}, nil
}

// WaitReady is a no-op; local files are ready as soon as they're open.
func (s *fileStream) WaitReady() error { return nil }

func (s *fileStream) MimeType() string { return "" }

func (s *fileStream) Read(p []byte) (int, error) { return s.f.Read(p) }

func (s *fileStream) Rewind() error {
	_, err := s.f.Seek(0, io.SeekStart)
	return err
}

func (s *fileStream) Close() error { return s.f.Close() }
