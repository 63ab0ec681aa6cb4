// Package input provides the byte streams that playlist plugins read from.
// A Stream hides where the bytes come from (a local file, an HTTP response)
// behind a small surface: wait until metadata is known, read, rewind, close.
package input

import (
	"io"
)

// A Stream is an opened byte stream plus the metadata needed for format
// dispatch. Streams are not safe for use from concurrent goroutines, with
// one exception: Close may be called from another goroutine to abort an
// in-flight Read.
type Stream interface {
	io.Reader
	io.Closer

	// WaitReady blocks until the stream's metadata (such as the content
	// type) is known and reads will return data. It returns an error if
	// the stream failed before becoming ready.
	WaitReady() error

	// MimeType returns the declared content type, or "" if none is known.
	// Only valid after WaitReady has returned.
	MimeType() string

	// Rewind seeks back to the start, so the next Read sees the first
	// byte again.
	Rewind() error
}
