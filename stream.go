// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"fmt"
	"io"
)

// A Handler handles events from streaming a JSON input. If a method reports
// an error, parsing stops and that error is returned to the caller.
//
// The Parser argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain a name or value after it
// returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object. The object's name, if any, is readable from p.
	BeginObject(p *Parser) error

	// End the most-recently-opened object.
	EndObject(p *Parser) error

	// Begin a new array. The array's name, if any, is readable from p.
	BeginArray(p *Parser) error

	// End the most-recently-opened array.
	EndArray(p *Parser) error

	// Report the name of an object member. A value, array, or object for
	// the name follows.
	Name(p *Parser) error

	// Report a data value. The type of the value and its name, if any, are
	// readable from p.
	Value(p *Parser) error

	// EndOfInput reports that the root container has closed.
	EndOfInput(p *Parser)
}

// Stream adapts the pull parser to a push interface: it consumes input from
// an io.Reader a chunk at a time and delivers events to a Handler, growing
// the parser's working buffer as needed.
type Stream struct {
	r         io.Reader
	bufSize   int
	chunkSize int
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: r, bufSize: 512, chunkSize: 4096}
}

// SetBufferSize sets the initial size in bytes of the parser's working
// buffer, which doubles whenever the parser runs out of room. It panics if
// n <= 0.
func (s *Stream) SetBufferSize(n int) {
	if n <= 0 {
		panic("jpull: buffer size must be positive")
	}
	s.bufSize = n
}

// SetChunkSize sets the size in bytes of the input chunks read from the
// underlying reader. It panics if n <= 0.
func (s *Stream) SetChunkSize(n int) {
	if n <= 0 {
		panic("jpull: chunk size must be positive")
	}
	s.chunkSize = n
}

// Parse parses the input stream and delivers events to h until either an
// error occurs or the document is complete. In case of a malformed input,
// the returned error has type [*SyntaxError].
func (s *Stream) Parse(h Handler) error {
	buf := make([]byte, s.bufSize)
	p := New(buf)

	// Chunks are read into two buffers used alternately: the parser
	// recognizes a fresh input window by its base pointer, so consecutive
	// chunks must not share one.
	chunks := [2][]byte{make([]byte, s.chunkSize), make([]byte, s.chunkSize)}
	cur := 0

	window, err := readChunk(s.r, chunks[cur])
	if err == io.EOF {
		return &SyntaxError{Location: p.Location(), Event: ErrUnexpectedEOF}
	} else if err != nil {
		return err
	}

	for {
		var herr error
		switch ev := p.Parse(window); ev {
		case EndOfDocument:
			h.EndOfInput(p)
			return nil

		case ErrUnexpectedEOF:
			cur = 1 - cur
			window, err = readChunk(s.r, chunks[cur])
			if err == io.EOF {
				return &SyntaxError{Location: p.Location(), Event: ev}
			} else if err != nil {
				return err
			}

		case ErrInsufficientMemory:
			nb := make([]byte, 2*len(buf))
			p.Reallocate(nb)
			buf = nb

		case ObjectBegin:
			herr = h.BeginObject(p)
		case ObjectEnd:
			herr = h.EndObject(p)
		case ArrayBegin:
			herr = h.BeginArray(p)
		case ArrayEnd:
			herr = h.EndArray(p)
		case Name:
			herr = h.Name(p)
		case Value:
			herr = h.Value(p)

		default:
			return &SyntaxError{Location: p.Location(), Event: ev}
		}
		if herr != nil {
			return herr
		}
	}
}

// readChunk reads the next non-empty chunk from r into buf. It reports
// io.EOF only when no bytes are available at all.
func readChunk(r io.Reader, buf []byte) ([]byte, error) {
	for {
		n, err := r.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// SyntaxError is the concrete type of errors reported by the stream parser
// for malformed input.
type SyntaxError struct {
	Location LineCol
	Event    Event
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Event)
}
