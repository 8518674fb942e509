// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jpull implements an incremental, pull-style JSON parser that does
// all its work inside a single caller-supplied buffer.
//
// # Parsing
//
// The Parser type consumes input a chunk at a time and reports one semantic
// event per call to Parse. Construct a parser over a working buffer and feed
// it input until it reports EndOfDocument or an unrecoverable error:
//
//	p := jpull.New(make([]byte, 256))
//	for {
//	   ev := p.Parse(input)
//	   if ev == jpull.EndOfDocument {
//	      break
//	   }
//	   // ... examine p.Name, p.ValueType, and friends ...
//	}
//
// Two error events are recoverable. ErrUnexpectedEOF reports that the input
// window is exhausted mid-document; the caller heals it by calling Parse
// again with the next chunk. ErrInsufficientMemory reports that the working
// buffer is full; the caller heals it by calling Reallocate with a strictly
// larger buffer. All other error events are terminal, and subsequent calls
// to Parse repeat the same code.
//
// The parser keeps all of its working memory in the working buffer. The one
// allocation Parse makes is a short string holding the text of each number,
// for conversion. Names and string values are stored in the working buffer
// and exposed as views that remain valid only until the next call to Parse. Input may be split at any byte boundary, including the
// middle of a multi-byte code unit; up to three pending bytes are carried
// across calls.
//
// Input may be encoded as UTF-8 or UTF-16 in either byte order. The encoding
// is fixed by a leading byte-order mark; without one the input is treated as
// ASCII-compatible. Names and string values are stored in the encoding of
// the input; use Text or the NameText and StringText helpers to obtain Go
// strings.
//
// # Streaming
//
// The Stream type adapts the pull interface to a push one: it reads chunks
// from an io.Reader, grows the working buffer on demand, and delivers events
// to a Handler. In case of a malformed input its Parse method reports an
// error of concrete type [*SyntaxError].
//
//	s := jpull.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
package jpull
