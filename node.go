// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jpull

import "encoding/binary"

// Nesting frames are laid out back to back inside the caller's buffer. Each
// frame is a fixed-width header followed immediately by its data region,
// where name and in-progress value bytes are appended. A child frame begins
// one byte past its parent's end, so the chain ordering matches the memory
// ordering. All bookkeeping is offsets from the buffer start, never
// pointers, which makes Reallocate a plain copy.
//
// Header layout, little-endian:
//
//	[0:4]  parent frame offset, or noFrame for the root
//	[4:8]  offset of the last data byte owned by the frame
//	[8:10] flag word
const (
	frameHeader = 10
	noFrame     = 0xFFFFFFFF
)

// Flags on a frame. The last four are deferred actions, executed at the top
// of the next call to Parse so that an event's name and value remain
// observable for exactly one call.
const (
	fIsArray  = 1 << iota // the frame is an array, not an object
	fHasName              // the frame's data region begins with a name
	fComma                // a comma was consumed; another member is expected
	fDecimal              // the number being built contains "."
	fExponent             // the number being built contains "e" or "E"
	fSign                 // the number's exponent contains "+" or "-"
	fMustPop              // pop this frame on the next call to Parse
	fCleanup              // zero the data region and the published values
	fIncDepth             // increment depth on the next call to Parse
	fDecDepth             // decrement depth on the next call to Parse
)

func (p *Parser) frameParent(off int) int {
	v := binary.LittleEndian.Uint32(p.buf[off:])
	if v == noFrame {
		return -1
	}
	return int(v)
}

func (p *Parser) setFrameParent(off, parent int) {
	v := uint32(noFrame)
	if parent >= 0 {
		v = uint32(parent)
	}
	binary.LittleEndian.PutUint32(p.buf[off:], v)
}

func (p *Parser) frameEnd(off int) int {
	return int(binary.LittleEndian.Uint32(p.buf[off+4:]))
}

func (p *Parser) setFrameEnd(off, end int) {
	binary.LittleEndian.PutUint32(p.buf[off+4:], uint32(end))
}

func (p *Parser) frameFlags(off int) uint16 {
	return binary.LittleEndian.Uint16(p.buf[off+8:])
}

func (p *Parser) setFrameFlags(off int, flags uint16) {
	binary.LittleEndian.PutUint16(p.buf[off+8:], flags)
}

func (p *Parser) orFrameFlags(off int, flags uint16) {
	p.setFrameFlags(off, p.frameFlags(off)|flags)
}

func (p *Parser) clearFrameFlags(off int, flags uint16) {
	p.setFrameFlags(off, p.frameFlags(off)&^flags)
}

// frameData reports the offset of the first data byte of the frame at off.
func (p *Parser) frameData(off int) int { return off + frameHeader }

// nameSpan reports the length in bytes of the name stored at the head of the
// frame's data region, excluding its terminator. Valid only while the data
// region holds exactly a completed name.
func (p *Parser) nameSpan(off int) int {
	return p.frameEnd(off) - p.frameData(off) + 1 - p.enc.termWidth()
}

// push places a new frame at the buffer start (root) or immediately after
// the current top's end. On overflow it records the current state and
// transitions to the insufficient-memory error state.
func (p *Parser) push() {
	off := 0
	if p.top >= 0 {
		off = p.frameEnd(p.top) + 1
	}
	if off+frameHeader >= len(p.buf) {
		p.errReturn = p.state
		p.state = sErrMemory
		return
	}
	p.setFrameParent(off, p.top)
	p.setFrameEnd(off, off+frameHeader-1)
	p.setFrameFlags(off, 0)
	p.top = off
}

// pop zeroes the top frame's bytes and rewires the top to its parent.
func (p *Parser) pop() {
	if p.top < 0 {
		return
	}
	off := p.top
	p.top = p.frameParent(off)
	n := max(frameHeader, p.frameEnd(off)-off+1)
	clear(p.buf[off : off+n])
}

// appendChar copies one encoded code point to the top frame's data region.
// On overflow the input is rewound one code point, so the same character is
// reparsed after the caller supplies a larger buffer.
func (p *Parser) appendChar(c char) Event {
	end := p.frameEnd(p.top)
	if end+c.size >= len(p.buf) {
		p.stay()
		p.errReturn = p.state
		p.state = sErrMemory
		return ErrInsufficientMemory
	}
	copy(p.buf[end+1:], c.raw[:c.size])
	p.setFrameEnd(p.top, end+c.size)
	return NoOp
}

// appendTerm appends a string terminator sized for the active encoding.
func (p *Parser) appendTerm() Event {
	width := p.enc.termWidth()
	end := p.frameEnd(p.top)
	if end+width >= len(p.buf) {
		p.stay()
		p.errReturn = p.state
		p.state = sErrMemory
		return ErrInsufficientMemory
	}
	for i := 1; i <= width; i++ {
		p.buf[end+i] = 0
	}
	p.setFrameEnd(p.top, end+width)
	return NoOp
}

// cleanup reclaims the top frame's data region and expires the name and
// value published with the previous event.
func (p *Parser) cleanup() {
	off := p.top
	data := p.frameData(off)
	if end := p.frameEnd(off); end >= data {
		clear(p.buf[data : end+1])
		p.setFrameEnd(off, data-1)
	}
	p.nameOff, p.nameLen = -1, 0
	p.strOff, p.strLen = -1, 0
	p.intVal, p.floatVal, p.boolVal = 0, 0, false
	p.vtype = TypeNone
	p.clearFrameFlags(off, fHasName|fComma|fDecimal|fExponent|fSign|fCleanup)
}
