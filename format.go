package fontbake

import (
	"encoding/binary"
	"fmt"
)

// The serialized font is a postcard-compatible encoding of
//
//	{ bitmap: [u8], width: u32, map16: [Glyph], dict32: map<[u16; 2], Glyph> }
//
// Unsigned integers wider than a byte are LEB128 varints, single bytes are
// written raw, sequences and maps carry a varint length prefix, and map
// entries are written in ascending key order. A Glyph is
// (x: u32, y: u32, w: u8, h: u8, ox: i8, oy: i8) with no framing.

// Marshal encodes f into its binary form.
func Marshal(f *Font) []byte {
	e := encoder{buf: make([]byte, 0, len(f.Bitmap)+Map16Size*6+64)}

	e.uvarint(uint64(len(f.Bitmap)))
	e.buf = append(e.buf, f.Bitmap...)
	e.uvarint(uint64(f.Width))

	e.uvarint(Map16Size)
	for i := range f.Map16 {
		e.glyph(f.Map16[i])
	}

	e.uvarint(uint64(f.Dict32.Len()))
	for k, g := range f.Dict32.All() {
		e.uvarint(uint64(k[0]))
		e.uvarint(uint64(k[1]))
		e.glyph(g)
	}
	return e.buf
}

// Unmarshal decodes a font produced by Marshal.
func Unmarshal(data []byte) (*Font, error) {
	d := decoder{buf: data}

	n := d.length()
	bitmap := d.bytes(n)
	width := d.u32()

	if m := d.length(); d.err == nil && m != Map16Size {
		return nil, fmt.Errorf("fontbake: map16 has %d slots, want %d", m, Map16Size)
	}
	l := NewLookup()
	for i := 0; i < Map16Size && d.err == nil; i++ {
		l.Map16[i] = d.glyph()
	}

	entries := d.length()
	for i := 0; i < entries && d.err == nil; i++ {
		k := Key32{d.u16(), d.u16()}
		l.Dict32.Put(k, d.glyph())
	}

	if d.err != nil {
		return nil, d.err
	}
	if len(d.buf) != 0 {
		return nil, fmt.Errorf("fontbake: %d trailing bytes after font data", len(d.buf))
	}

	f := &Font{Bitmap: bitmap, Width: width, Lookup: l}
	if width != 0 && len(bitmap)%int(width) != 0 {
		return nil, fmt.Errorf("fontbake: bitmap of %d bytes is not a multiple of width %d", len(bitmap), width)
	}
	return f, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) uvarint(v uint64) {
	e.buf = binary.AppendUvarint(e.buf, v)
}

func (e *encoder) glyph(g Glyph) {
	e.uvarint(uint64(g.X))
	e.uvarint(uint64(g.Y))
	e.buf = append(e.buf, g.Width, g.Height, byte(g.OffsetX), byte(g.OffsetY))
}

// decoder reads the binary form. The first error sticks; later reads
// return zero values.
type decoder struct {
	buf []byte
	err error
}

func (d *decoder) uvarint(limit uint64) uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.buf)
	switch {
	case n == 0:
		d.err = ErrTruncated
		return 0
	case n < 0 || v > limit:
		d.err = fmt.Errorf("fontbake: varint overflows %d", limit)
		return 0
	}
	d.buf = d.buf[n:]
	return v
}

func (d *decoder) u16() uint16 { return uint16(d.uvarint(0xffff)) }
func (d *decoder) u32() uint32 { return uint32(d.uvarint(0xffffffff)) }

func (d *decoder) length() int {
	n := d.uvarint(0xffffffff)
	if d.err == nil && n > uint64(len(d.buf)) {
		// every element takes at least one byte
		d.err = ErrTruncated
		return 0
	}
	return int(n)
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	if len(d.buf) < n {
		d.err = ErrTruncated
		return nil
	}
	out := make([]byte, n)
	copy(out, d.buf[:n])
	d.buf = d.buf[n:]
	return out
}

func (d *decoder) glyph() Glyph {
	x, y := d.u32(), d.u32()
	b := d.bytes(4)
	if b == nil {
		return Glyph{}
	}
	return Glyph{X: x, Y: y, Width: b[0], Height: b[1], OffsetX: int8(b[2]), OffsetY: int8(b[3])}
}
