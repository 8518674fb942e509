// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Text transcodes data, a view of buffer bytes in encoding e, into a Go
// string. Unknown data is decoded as UTF-8: without a BOM the input bytes
// pass through the parser verbatim and escapes are encoded as UTF-8, so the
// stored bytes are UTF-8 whenever the input was. Code points that cannot be
// decoded (a truncated tail, or an unpaired UTF-16 surrogate) are rendered
// as the Unicode replacement rune.
func Text(e Encoding, data []byte) string {
	if e == Unknown {
		e = UTF8
	}
	return textRO(e, mem.B(data))
}

func textRO(e Encoding, data mem.RO) string {
	var sb strings.Builder
	sb.Grow(data.Len())
	for pos := 0; pos < data.Len(); {
		var w [4]byte
		avail := 0
		for i := 0; i < len(w) && pos+i < data.Len(); i++ {
			w[i] = data.At(pos + i)
			avail++
		}
		c := e.decode(w, avail)
		if c.size == 0 {
			sb.WriteRune(utf8.RuneError)
			break
		}
		sb.WriteRune(rune(c.scalar))
		pos += c.size
	}
	return sb.String()
}

// NameText returns the current name as a Go string, decoding it from the
// input encoding. It returns "" when no name is available.
func (p *Parser) NameText() string { return Text(p.enc, p.Name()) }

// StringText returns the current string value as a Go string, decoding it
// from the input encoding. It returns "" when the value is not a string.
func (p *Parser) StringText() string { return Text(p.enc, p.StringValue()) }
