// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jpull reads a JSON document and prints one line per value, per
// container begin or end, and at the end of the document. Name events print
// no line of their own; a member's name is shown on the line of its value or
// container.
//
// It feeds the parser in fixed-size chunks from a small working buffer that
// doubles whenever the parser asks for more room, so it exercises the same
// recovery paths an embedded caller would.
//
// Usage:
//
//	jpull [-buf n] [-chunk n] [-hujson] [input-file]
//
// With no input file, the document is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jpull"
	"github.com/tailscale/hujson"
)

var (
	bufSize   = flag.Int("buf", 64, "Initial working buffer size in bytes")
	chunkSize = flag.Int("chunk", 256, "Input chunk size in bytes")
	useHujson = flag.Bool("hujson", false, "Standardize JWCC input before parsing")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jpull: ")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 1 {
		log.Fatal("Too many arguments; at most one input file is allowed")
	} else if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("Opening input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if *useHujson {
		// The parser rejects comments and trailing commas; rewrite them
		// away so human-edited JSON can be fed through.
		data, err := io.ReadAll(in)
		if err != nil {
			log.Fatalf("Reading input: %v", err)
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			log.Fatalf("Standardizing input: %v", err)
		}
		in = strings.NewReader(string(std))
	}

	s := jpull.NewStream(in)
	s.SetBufferSize(*bufSize)
	s.SetChunkSize(*chunkSize)
	if err := s.Parse(printer{}); err != nil {
		log.Fatalf("Parse failed: %v", err)
	}
}

// A printer writes one indented line per event to stdout.
type printer struct{}

func (printer) emit(p *jpull.Parser, depth int, text string) error {
	if name := p.Name(); name != nil {
		text += fmt.Sprintf(" %q", p.NameText())
	}
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), text)
	return nil
}

func (pr printer) BeginObject(p *jpull.Parser) error { return pr.emit(p, p.Depth(), "object") }
func (pr printer) BeginArray(p *jpull.Parser) error  { return pr.emit(p, p.Depth(), "array") }
func (pr printer) EndObject(p *jpull.Parser) error   { return pr.emit(p, p.Depth()-1, "end object") }
func (pr printer) EndArray(p *jpull.Parser) error    { return pr.emit(p, p.Depth()-1, "end array") }

func (pr printer) Name(p *jpull.Parser) error { return nil } // reported with the value

func (pr printer) Value(p *jpull.Parser) error {
	var text string
	switch p.ValueType() {
	case jpull.TypeInteger:
		text = fmt.Sprintf("integer %d", p.Integer())
	case jpull.TypeFloat:
		text = fmt.Sprintf("float %v", p.Float())
	case jpull.TypeString:
		text = fmt.Sprintf("string %q", p.StringText())
	case jpull.TypeBool:
		text = fmt.Sprintf("boolean %v", p.Bool())
	case jpull.TypeNull:
		text = "null"
	}
	return pr.emit(p, p.Depth(), text)
}

func (printer) EndOfInput(p *jpull.Parser) { fmt.Println("end of document") }
