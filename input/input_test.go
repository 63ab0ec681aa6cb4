package input

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	is, err := OpenFile(path)
	require.NoError(t, err)
	defer is.Close()

	require.NoError(t, is.WaitReady())
	assert.Equal(t, "", is.MimeType())

	data, err := io.ReadAll(is)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, is.Rewind())
	data, err = io.ReadAll(is)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFileStreamMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestHTTPStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/x-mpegurl; charset=utf-8")
		w.Write([]byte("http://example.com/a.mp3\n"))
	}))
	defer srv.Close()

	is := OpenHTTP(srv.Client(), srv.URL)
	defer is.Close()

	require.NoError(t, is.WaitReady())
	assert.Equal(t, "audio/x-mpegurl; charset=utf-8", is.MimeType())

	data, err := io.ReadAll(is)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a.mp3\n", string(data))
}

func TestHTTPStreamRewindReplays(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	is := OpenHTTP(srv.Client(), srv.URL)
	defer is.Close()
	require.NoError(t, is.WaitReady())

	buf := make([]byte, 4)
	n, err := io.ReadFull(is, buf)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(buf[:n]))

	// Rewinding must replay the same bytes without a second request.
	require.NoError(t, is.Rewind())
	data, err := io.ReadAll(is)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
	assert.Equal(t, 1, requests)
}

func TestHTTPStreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	is := OpenHTTP(srv.Client(), srv.URL)
	defer is.Close()
	assert.Error(t, is.WaitReady())
}

func TestHTTPStreamCloseAbortsWait(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	is := OpenHTTP(srv.Client(), srv.URL)

	done := make(chan error, 1)
	go func() { done <- is.WaitReady() }()

	is.Close()
	assert.Error(t, <-done)
}

func TestMemoryStream(t *testing.T) {
	is := OpenMemory([]byte("abc"), "text/plain")
	require.NoError(t, is.WaitReady())
	assert.Equal(t, "text/plain", is.MimeType())

	data, _ := io.ReadAll(is)
	assert.Equal(t, "abc", string(data))

	require.NoError(t, is.Rewind())
	data, _ = io.ReadAll(is)
	assert.Equal(t, "abc", string(data))
}
