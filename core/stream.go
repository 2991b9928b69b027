package core

import "fmt"

// Stream couples a dictionary with an append-only byte payload, such
// as a page content stream or an embedded ICC profile.
type Stream struct {
	Dict Dict
	data []byte
}

// NewStream creates a stream with the given dictionary and initial
// payload. A nil dict is replaced with an empty one.
func NewStream(dict Dict, data []byte) *Stream {
	if dict == nil {
		dict = Dict{}
	}
	return &Stream{Dict: dict, data: data}
}

func (s *Stream) Kind() Kind { return KindStream }

func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict.String(), len(s.data))
}

// Append adds data to the end of the stream payload.
func (s *Stream) Append(data []byte) {
	s.data = append(s.data, data...)
}

// Bytes returns the stream payload.
func (s *Stream) Bytes() []byte { return s.data }

// Len returns the payload size in bytes.
func (s *Stream) Len() int { return len(s.data) }
