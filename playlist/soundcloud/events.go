package soundcloud

import (
	"bufio"
	"encoding/json"
	"io"
)

// The chunk size the JSON event source reads the response in.
const readChunkSize = 4096

type eventKind int

const (
	evOther eventKind = iota
	evStartObject
	evEndObject
	evMapKey
	evString
	evInteger
)

type event struct {
	kind eventKind
	str  string
	num  int64
}

// An eventSource turns a JSON byte stream into a flat sequence of parse
// events: object boundaries, map keys and scalar values. It reads the
// underlying stream incrementally, so arbitrarily large documents never
// get materialized in memory.
type eventSource struct {
	dec *json.Decoder

	// One frame per open container; for objects, expectKey tracks
	// whether the next string token is a key or a value.
	stack []frame
}

type frame struct {
	object    bool
	expectKey bool
}

func newEventSource(r io.Reader) *eventSource {
	dec := json.NewDecoder(bufio.NewReaderSize(r, readChunkSize))
	dec.UseNumber()
	return &eventSource{dec: dec}
}

func (s *eventSource) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

// scalarDone marks a value as consumed at the current nesting level.
func (s *eventSource) scalarDone() {
	if t := s.top(); t != nil && t.object {
		t.expectKey = true
	}
}

// Next returns the next event. io.EOF signals a cleanly finished document;
// any other error is either a transport failure or a malformed document.
func (s *eventSource) Next() (event, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return event{}, err
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				s.stack = append(s.stack, frame{object: true, expectKey: true})
				return event{kind: evStartObject}, nil
			case '[':
				s.stack = append(s.stack, frame{})
				return event{kind: evOther}, nil
			case '}', ']':
				s.stack = s.stack[:len(s.stack)-1]
				s.scalarDone()
				if t == '}' {
					return event{kind: evEndObject}, nil
				}
				return event{kind: evOther}, nil
			}
		case string:
			if top := s.top(); top != nil && top.object && top.expectKey {
				top.expectKey = false
				return event{kind: evMapKey, str: t}, nil
			}
			s.scalarDone()
			return event{kind: evString, str: t}, nil
		case json.Number:
			s.scalarDone()
			if n, err := t.Int64(); err == nil {
				return event{kind: evInteger, num: n}, nil
			}
			return event{kind: evOther}, nil
		default:
			// Booleans and nulls; nothing downstream cares.
			s.scalarDone()
			return event{kind: evOther}, nil
		}
	}
}
