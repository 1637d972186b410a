// Package cursor provides the random-access byte view section decoders
// read SCSP images through: little-endian typed reads, absolute seeks,
// peeks, and string-table resolution.
package cursor

import (
	"encoding/binary"
	"math"

	"github.com/himeope/scsp2json/errs"
)

// Cursor is a mutable-position view over a decompressed SCSP image.
//
// All typed reads are little-endian; SCSP images are little-endian
// regardless of the envelope's configured byte order (see §6), so Cursor
// never takes an endianness option.
type Cursor struct {
	data    []byte
	pos     int
	strings []byte
}

// New builds a Cursor over data and resolves the string table location
// from the first 8 bytes: offset = u32@0 + 8, length = u32@4.
func New(data []byte) *Cursor {
	c := &Cursor{data: data}

	if len(data) < 8 {
		c.strings = nil

		return c
	}

	stringsOffset := int(binary.LittleEndian.Uint32(data[0:4])) + 8
	stringsLength := int(binary.LittleEndian.Uint32(data[4:8]))

	end := stringsOffset + stringsLength
	if stringsOffset < 0 || stringsOffset > len(data) {
		return c
	}
	if end > len(data) {
		end = len(data)
	}

	c.strings = data[stringsOffset:end]

	return c
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the read position to an absolute offset.
func (c *Cursor) Seek(pos int) { c.pos = pos }

// Skip advances the read position by n bytes (n may be negative).
func (c *Cursor) Skip(n int) { c.pos += n }

// Len returns the total length of the underlying image.
func (c *Cursor) Len() int { return len(c.data) }

// Int8 reads a signed byte at the current position and advances by 1.
func (c *Cursor) Int8() int8 {
	v := int8(c.data[c.pos])
	c.pos++

	return v
}

// Int16 reads a little-endian int16 at the current position and advances by 2.
func (c *Cursor) Int16() int16 {
	v := int16(binary.LittleEndian.Uint16(c.data[c.pos : c.pos+2]))
	c.pos += 2

	return v
}

// PeekInt16 reads a little-endian int16 at the current position without advancing.
func (c *Cursor) PeekInt16() int16 {
	return int16(binary.LittleEndian.Uint16(c.data[c.pos : c.pos+2]))
}

// PeekInt16At reads a little-endian int16 at an absolute offset without
// moving the cursor's position.
func (c *Cursor) PeekInt16At(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(c.data[offset : offset+2]))
}

// Uint32 reads a little-endian uint32 at the current position and advances by 4.
func (c *Cursor) Uint32() uint32 {
	v := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4

	return v
}

// Uint32At reads a little-endian uint32 at an absolute offset without
// moving the cursor's position.
func (c *Cursor) Uint32At(offset int) uint32 {
	return binary.LittleEndian.Uint32(c.data[offset : offset+4])
}

// Float32 reads a little-endian float32 at the current position, advances
// by 4, and wraps it as a Number. Returns errs.ErrInvalidFloat on NaN.
func (c *Cursor) Float32() (Number, error) {
	bits := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4

	return numberFromBits(bits)
}

// Float32At reads a little-endian float32 at an absolute offset without
// moving the cursor's position.
func (c *Cursor) Float32At(offset int) (Number, error) {
	bits := binary.LittleEndian.Uint32(c.data[offset : offset+4])

	return numberFromBits(bits)
}

func numberFromBits(bits uint32) (Number, error) {
	f := math.Float32frombits(bits)
	if f != f { // NaN
		return Number{}, errs.ErrInvalidFloat
	}

	return NewNumber(float64(f)), nil
}

// PeekBytes returns a copy of n raw bytes at the current position without
// advancing the cursor, for the handful of fields recognized by raw byte
// pattern rather than by typed value.
func (c *Cursor) PeekBytes(n int) []byte {
	return c.PeekBytesAt(c.pos, n)
}

// PeekBytesAt returns a copy of n raw bytes at an absolute offset without
// moving the cursor's position.
func (c *Cursor) PeekBytesAt(offset, n int) []byte {
	end := offset + n
	if end > len(c.data) {
		end = len(c.data)
	}
	if offset > end {
		offset = end
	}

	out := make([]byte, end-offset)
	copy(out, c.data[offset:end])

	return out
}

// Bool8 reads a three-valued boolean at the current position and advances
// by 1: 0xFF means absent (nil), 0 means false, 1 means true.
func (c *Cursor) Bool8() *bool {
	b := c.data[c.pos]
	c.pos++

	if b == 0xFF {
		return nil
	}

	v := b == 1

	return &v
}

// Bool16 reads a two-valued boolean encoded as an int16 at the current
// position and advances by 2: only the value 1 is true, -1 and 0 are false.
func (c *Cursor) Bool16() bool {
	return c.Int16() == 1
}

// String reads a uint32 string-table offset at the current position,
// advances by 4, and resolves it against the string table.
func (c *Cursor) String() string {
	offset := c.Uint32()

	return c.ResolveString(offset)
}

// StringAt reads a uint32 string-table offset at an absolute position
// (without moving the cursor) and resolves it against the string table.
func (c *Cursor) StringAt(offset int) string {
	ptr := c.Uint32At(offset)

	return c.ResolveString(ptr)
}

// ResolveString resolves a raw string-table offset into a NUL-terminated
// UTF-8 string. Returns "" if the offset falls outside the table; tolerates
// a trailing string with no terminating NUL.
func (c *Cursor) ResolveString(tableOffset uint32) string {
	off := int(tableOffset)
	if off < 0 || off >= len(c.strings) {
		return ""
	}

	end := off
	for end < len(c.strings) && c.strings[end] != 0 {
		end++
	}

	return string(c.strings[off:end])
}
