// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jpull

// An Event is the result of one call to Parse. Non-negative events report
// document structure; negative events report errors. The two recoverable
// error events are ErrUnexpectedEOF and ErrInsufficientMemory.
type Event int8

// Constants defining the valid Event values.
const (
	ErrInvalidInput       Event = -6 // nil or uninitialized parser, or empty input
	ErrInternal           Event = -5 // invariant violated; parsing cannot continue
	ErrInsufficientMemory Event = -4 // buffer full; recoverable via Reallocate
	ErrUnexpectedEOF      Event = -3 // input exhausted; recoverable via more input
	ErrTokenMismatch      Event = -2 // container closed by the wrong token
	ErrSyntax             Event = -1 // any other structural violation

	NoOp Event = 0 // never returned by Parse

	EndOfDocument Event = iota - 6 // root container closed; parsing complete
	Name                           // the name of a member is available
	Value                          // a value and its type are available
	ObjectBegin                    // an object opened
	ObjectEnd                      // an object closed
	ArrayBegin                     // an array opened
	ArrayEnd                       // an array closed
)

var eventStr = map[Event]string{
	ErrInvalidInput:       "invalid input",
	ErrInternal:           "internal error",
	ErrInsufficientMemory: "insufficient memory",
	ErrUnexpectedEOF:      "unexpected end of input",
	ErrTokenMismatch:      "token mismatch",
	ErrSyntax:             "syntax error",
	NoOp:                  "no-op",
	EndOfDocument:         "end of document",
	Name:                  "name",
	Value:                 "value",
	ObjectBegin:           "object begin",
	ObjectEnd:             "object end",
	ArrayBegin:            "array begin",
	ArrayEnd:              "array end",
}

func (e Event) String() string {
	if s, ok := eventStr[e]; ok {
		return s
	}
	return "invalid event"
}

// IsError reports whether e is an error event.
func (e Event) IsError() bool { return e < NoOp }

// Recoverable reports whether e is an error event the caller can heal, by
// providing more input (ErrUnexpectedEOF) or a larger buffer
// (ErrInsufficientMemory).
func (e Event) Recoverable() bool {
	return e == ErrUnexpectedEOF || e == ErrInsufficientMemory
}

// A Type identifies the type of the current value when Parse reports Value.
type Type int8

// Constants defining the valid Type values.
const (
	TypeNone    Type = iota // no value is available
	TypeInteger             // a number without fraction or exponent
	TypeFloat               // a number with a fraction and/or exponent
	TypeString              // a quoted string
	TypeBool                // true or false
	TypeNull                // null
)

var typeStr = [...]string{
	TypeNone:    "none",
	TypeInteger: "integer",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeBool:    "boolean",
	TypeNull:    "null",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return "invalid type"
	}
	return typeStr[t]
}
