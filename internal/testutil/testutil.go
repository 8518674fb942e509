// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"

	"github.com/creachadair/jpull"
)

// Describe renders the current event of p as one human-readable line, used
// by tests to compare event traces.
func Describe(p *jpull.Parser, ev jpull.Event) string {
	name := ""
	if n := p.Name(); n != nil {
		name = fmt.Sprintf(" %q", p.NameText())
	}
	switch ev {
	case jpull.EndOfDocument:
		return "."
	case jpull.Name:
		return "Name" + name
	case jpull.Value:
		s := "Value " + p.ValueType().String()
		switch p.ValueType() {
		case jpull.TypeInteger:
			s += fmt.Sprintf(" %d", p.Integer())
		case jpull.TypeFloat:
			s += fmt.Sprintf(" %v", p.Float())
		case jpull.TypeString:
			s += fmt.Sprintf(" %q", p.StringText())
		case jpull.TypeBool:
			s += fmt.Sprintf(" %v", p.Bool())
		}
		return s + name
	case jpull.ObjectBegin:
		return "BeginObject" + name
	case jpull.ObjectEnd:
		return "EndObject" + name
	case jpull.ArrayBegin:
		return "BeginArray" + name
	case jpull.ArrayEnd:
		return "EndArray" + name
	}
	return ev.String()
}

// Events is a jpull.Handler that records a line per event, in the same
// format Describe produces.
type Events struct {
	Lines []string
}

func (e *Events) add(p *jpull.Parser, ev jpull.Event) error {
	e.Lines = append(e.Lines, Describe(p, ev))
	return nil
}

func (e *Events) BeginObject(p *jpull.Parser) error { return e.add(p, jpull.ObjectBegin) }
func (e *Events) EndObject(p *jpull.Parser) error   { return e.add(p, jpull.ObjectEnd) }
func (e *Events) BeginArray(p *jpull.Parser) error  { return e.add(p, jpull.ArrayBegin) }
func (e *Events) EndArray(p *jpull.Parser) error    { return e.add(p, jpull.ArrayEnd) }
func (e *Events) Name(p *jpull.Parser) error        { return e.add(p, jpull.Name) }
func (e *Events) Value(p *jpull.Parser) error       { return e.add(p, jpull.Value) }
func (e *Events) EndOfInput(p *jpull.Parser)        { e.add(p, jpull.EndOfDocument) }
