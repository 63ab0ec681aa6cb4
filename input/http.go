package input

import (
	"net/http"
	"sync"

	"github.com/pkg/errors"
)

// An httpStream fetches a URL in the background and becomes ready once the
// response headers have arrived. Bytes handed out by Read are kept in a
// replay buffer, so Rewind works even though the network body can only be
// read once.
type httpStream struct {
	mu   sync.Mutex
	cond *sync.Cond

	ready  bool
	closed bool
	err    error

	mime string
	body *http.Response

	buf []byte
	pos int
}

// OpenHTTP starts a GET request for the given URL. The returned Stream is
// not ready until WaitReady returns; the request runs in the background.
func OpenHTTP(client *http.Client, url string) Stream {
	s := &httpStream{}
	s.cond = sync.NewCond(&s.mu)
	go s.fetch(client, url)
	return s
}

func (s *httpStream) fetch(client *http.Client, url string) {
	res, err := client.Get(url)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.cond.Broadcast()

	if err != nil {
		s.err = errors.Wrap(err, "request failed")
		return
	}
	if s.closed {
		res.Body.Close()
		return
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		s.err = errors.Errorf("unexpected status: %s", res.Status)
		return
	}

	s.body = res
	s.mime = res.Header.Get("Content-Type")
	s.ready = true
}

func (s *httpStream) WaitReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.ready && s.err == nil && !s.closed {
		s.cond.Wait()
	}
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return errors.New("stream closed")
	}
	return nil
}

func (s *httpStream) MimeType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mime
}

func (s *httpStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	for !s.ready && s.err == nil && !s.closed {
		s.cond.Wait()
	}
	if s.err != nil {
		s.mu.Unlock()
		return 0, s.err
	}
	if s.closed {
		s.mu.Unlock()
		return 0, errors.New("stream closed")
	}

	// Replay previously seen bytes after a Rewind.
	if s.pos < len(s.buf) {
		n := copy(p, s.buf[s.pos:])
		s.pos += n
		s.mu.Unlock()
		return n, nil
	}

	body := s.body.Body
	s.mu.Unlock()

	// Read without holding the lock, so a concurrent Close can abort a
	// stalled read.
	n, err := body.Read(p)

	s.mu.Lock()
	if n > 0 {
		s.buf = append(s.buf, p[:n]...)
		s.pos = len(s.buf)
	}
	s.mu.Unlock()
	return n, err
}

func (s *httpStream) Rewind() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	return nil
}

func (s *httpStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.cond.Broadcast()
	if s.body != nil {
		return s.body.Body.Close()
	}
	return nil
}
