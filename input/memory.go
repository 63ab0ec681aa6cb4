package input

import (
	"bytes"
	"io"
)

type memoryStream struct {
	r    *bytes.Reader
	mime string
}

// OpenMemory wraps an in-memory byte slice as a Stream, with an optional
// declared content type. Always ready.
func OpenMemory(data []byte, mime string) Stream {
	return &memoryStream{r: bytes.NewReader(data), mime: mime}
}

func (s *memoryStream) WaitReady() error { return nil }

func (s *memoryStream) MimeType() string { return s.mime }

func (s *memoryStream) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *memoryStream) Rewind() error {
	_, err := s.r.Seek(0, io.SeekStart)
	return err
}

func (s *memoryStream) Close() error { return nil }
