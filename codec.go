// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jpull

// An Encoding identifies the character encoding of the input. It is fixed
// once, by a byte-order mark at the start of the document, and is invariant
// thereafter. Without a BOM the encoding remains Unknown and the input is
// treated as a sequence of single bytes (ASCII passthrough).
type Encoding uint8

// Constants defining the valid Encoding values.
const (
	Unknown Encoding = iota // no BOM seen; ASCII-compatible passthrough
	UTF8                    // 1-4 byte code points
	UTF16LE                 // 2 or 4 byte code points, little-endian
	UTF16BE                 // 2 or 4 byte code points, big-endian
)

var encodingStr = [...]string{
	Unknown: "unknown",
	UTF8:    "UTF-8",
	UTF16LE: "UTF-16LE",
	UTF16BE: "UTF-16BE",
}

func (e Encoding) String() string {
	if int(e) >= len(encodingStr) {
		return "invalid encoding"
	}
	return encodingStr[e]
}

// termWidth reports the width in bytes of a string terminator under e, so
// that a consumer reading wide code units sees a proper null.
func (e Encoding) termWidth() int {
	if e == UTF16LE || e == UTF16BE {
		return 2
	}
	return 1
}

// A char is one decoded code point: the original encoded bytes, the Unicode
// scalar value, and the encoded size. A scalar of zero plays the role of an
// input terminator. A size of zero from decode means the window held fewer
// bytes than the code point needs, or that a UTF-8 lead byte matches none of
// the four length patterns; from encode it means the scalar cannot be
// represented (surrogate range, or above the Unicode maximum).
type char struct {
	raw    [4]byte
	scalar uint32
	size   int
}

// decode extracts one code point from the head of window under encoding e.
// The window always has four bytes; avail says how many of them are real.
func (e Encoding) decode(window [4]byte, avail int) char {
	var size int
	switch e {
	case Unknown:
		size = 1
	case UTF8:
		// The high bits of the lead byte give the length: 0xxxxxxx is one
		// byte, 110xxxxx two, 1110xxxx three, 11110xxx four.
		switch {
		case window[0]&0x80 == 0x00:
			size = 1
		case window[0]&0xE0 == 0xC0:
			size = 2
		case window[0]&0xF0 == 0xE0:
			size = 3
		case window[0]&0xF8 == 0xF0:
			size = 4
		}
	case UTF16BE:
		// A surrogate pair is two 16-bit units whose top bits are 110110 and
		// 110111 respectively; anything else is a single unit. A leading
		// 110110 unit with fewer than four bytes available is reported short.
		if window[0]&0xFC == 0xD8 && (avail < 4 || window[2]&0xFC == 0xDC) {
			size = 4
		} else {
			size = 2
		}
	case UTF16LE:
		if window[1]&0xFC == 0xD8 && (avail < 4 || window[3]&0xFC == 0xDC) {
			size = 4
		} else {
			size = 2
		}
	}
	if size == 0 || size > avail {
		return char{} // not enough bytes to decode a full code point
	}

	var v uint32
	switch e {
	case Unknown:
		v = uint32(window[0])
	case UTF8:
		switch size {
		case 1:
			v = uint32(window[0] & 0x7F)
		case 2:
			v = uint32(window[0]&0x1F)<<6 | uint32(window[1]&0x3F)
		case 3:
			v = uint32(window[0]&0x0F)<<12 | uint32(window[1]&0x3F)<<6 | uint32(window[2]&0x3F)
		case 4:
			v = uint32(window[0]&0x07)<<18 | uint32(window[1]&0x3F)<<12 |
				uint32(window[2]&0x3F)<<6 | uint32(window[3]&0x3F)
		}
	case UTF16BE:
		if size == 2 {
			v = uint32(window[0])<<8 | uint32(window[1])
		} else {
			v = (uint32(window[0]&0x03)<<18 | uint32(window[1])<<10 |
				uint32(window[2]&0x03)<<8 | uint32(window[3])) + 0x10000
		}
	case UTF16LE:
		if size == 2 {
			v = uint32(window[1])<<8 | uint32(window[0])
		} else {
			v = (uint32(window[1]&0x03)<<18 | uint32(window[0])<<10 |
				uint32(window[3]&0x03)<<8 | uint32(window[2])) + 0x10000
		}
	}

	c := char{scalar: v, size: size}
	copy(c.raw[:], window[:size])
	return c
}

// encode renders scalar into the byte form of e. Scalars in the surrogate
// range 0xD800-0xDFFF and above 0x10FFFF yield a zero-size char, which
// appends nothing.
func (e Encoding) encode(scalar uint32) char {
	c := char{scalar: scalar}
	switch e {
	case Unknown, UTF8:
		switch {
		case scalar <= 0x7F:
			c.raw[0] = byte(scalar)
			c.size = 1
		case scalar <= 0x7FF:
			c.raw[0] = 0xC0 | byte(scalar>>6)
			c.raw[1] = 0x80 | byte(scalar&0x3F)
			c.size = 2
		case scalar <= 0xD7FF || (scalar >= 0xE000 && scalar <= 0xFFFF):
			c.raw[0] = 0xE0 | byte(scalar>>12)
			c.raw[1] = 0x80 | byte(scalar>>6&0x3F)
			c.raw[2] = 0x80 | byte(scalar&0x3F)
			c.size = 3
		case scalar >= 0x10000 && scalar <= 0x10FFFF:
			c.raw[0] = 0xF0 | byte(scalar>>18)
			c.raw[1] = 0x80 | byte(scalar>>12&0x3F)
			c.raw[2] = 0x80 | byte(scalar>>6&0x3F)
			c.raw[3] = 0x80 | byte(scalar&0x3F)
			c.size = 4
		}
	case UTF16BE:
		if scalar <= 0xD7FF || (scalar >= 0xE000 && scalar <= 0xFFFF) {
			c.raw[0] = byte(scalar >> 8)
			c.raw[1] = byte(scalar)
			c.size = 2
		} else if scalar >= 0x10000 && scalar <= 0x10FFFF {
			v := scalar - 0x10000
			c.raw[0] = 0xD8 | byte(v>>18)
			c.raw[1] = byte(v >> 10)
			c.raw[2] = 0xDC | byte(v>>8&0x03)
			c.raw[3] = byte(v)
			c.size = 4
		}
	case UTF16LE:
		if scalar <= 0xD7FF || (scalar >= 0xE000 && scalar <= 0xFFFF) {
			c.raw[1] = byte(scalar >> 8)
			c.raw[0] = byte(scalar)
			c.size = 2
		} else if scalar >= 0x10000 && scalar <= 0x10FFFF {
			v := scalar - 0x10000
			c.raw[1] = 0xD8 | byte(v>>18)
			c.raw[0] = byte(v >> 10)
			c.raw[3] = 0xDC | byte(v>>8&0x03)
			c.raw[2] = byte(v)
			c.size = 4
		}
	}
	return c
}

func isNewline(v uint32) bool { return v == '\n' || v == '\r' }

func isSpace(v uint32) bool {
	return v == ' ' || v == '\t' || isNewline(v)
}

func isDigit(v uint32) bool { return v >= '0' && v <= '9' }

func hexValue(v uint32) (uint32, bool) {
	switch {
	case v >= '0' && v <= '9':
		return v - '0', true
	case v >= 'a' && v <= 'f':
		return v - 'a' + 10, true
	case v >= 'A' && v <= 'F':
		return v - 'A' + 10, true
	}
	return 0, false
}

// escapeChar maps the letter following a backslash to the character it
// stands for. The Unicode escape "u" is not included; it has its own states.
func escapeChar(v uint32) (uint32, bool) {
	switch v {
	case '"', '\\', '/':
		return v, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}
