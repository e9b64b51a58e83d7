package fontbake

import (
	"fmt"
	"iter"
	"unicode/utf16"

	"github.com/emirpasic/gods/maps/treemap"
)

// Map16Size is the number of slots in the direct table, one per UTF-16 code unit.
const Map16Size = 1 << 16

// wideThreshold is the code unit length from which a sequence is stored in
// the ordered table instead of the direct table.
const wideThreshold = 4

// Map16 is the direct table indexed by a single UTF-16 code unit.
// Empty slots hold the zero Glyph.
type Map16 [Map16Size]Glyph

// Count returns the number of populated slots.
func (m *Map16) Count() int {
	n := 0
	for i := range m {
		if m[i].Present() {
			n++
		}
	}
	return n
}

// Key32 is the ordered table key: the first two UTF-16 code units of a sequence.
type Key32 [2]uint16

// compareKey32 orders keys by first code unit, then second.
func compareKey32(a, b any) int {
	ka, kb := a.(Key32), b.(Key32)
	for i := range ka {
		switch {
		case ka[i] < kb[i]:
			return -1
		case ka[i] > kb[i]:
			return 1
		}
	}
	return 0
}

// Dict32 is the ordered table for sequences of four or more code units.
// Iteration is in ascending key order, which keeps serialization deterministic.
type Dict32 struct {
	m *treemap.Map
}

// NewDict32 creates an empty ordered table.
func NewDict32() *Dict32 {
	return &Dict32{m: treemap.NewWith(compareKey32)}
}

// Put stores g under k and reports whether an existing entry was replaced.
func (d *Dict32) Put(k Key32, g Glyph) bool {
	_, found := d.m.Get(k)
	d.m.Put(k, g)
	return found
}

// Get returns the glyph stored under k.
func (d *Dict32) Get(k Key32) (Glyph, bool) {
	v, ok := d.m.Get(k)
	if !ok {
		return Glyph{}, false
	}
	return v.(Glyph), true
}

// Len returns the number of entries.
func (d *Dict32) Len() int {
	return d.m.Size()
}

// All iterates over the entries in ascending key order.
func (d *Dict32) All() iter.Seq2[Key32, Glyph] {
	return func(yield func(Key32, Glyph) bool) {
		it := d.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(Key32), it.Value().(Glyph)) {
				return
			}
		}
	}
}

// Tier identifies which lookup table holds a sequence.
type Tier int

const (
	// TierDirect is the direct table indexed by one code unit.
	TierDirect Tier = iota + 1
	// TierOrdered is the ordered table keyed by two code units.
	TierOrdered
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "map16"
	case TierOrdered:
		return "dict32"
	default:
		return "Unknown"
	}
}

// KeyOf returns the table and key used for seq.
//
// Sequences shorter than four UTF-16 code units go to the direct table under
// their first code unit; any further units are not part of the key. Longer
// sequences go to the ordered table under their first two code units.
// ok is false for a sequence without code units.
func KeyOf(seq string) (tier Tier, key Key32, ok bool) {
	units := utf16.Encode([]rune(seq))
	switch {
	case len(units) == 0:
		return 0, Key32{}, false
	case len(units) < wideThreshold:
		return TierDirect, Key32{units[0]}, true
	default:
		return TierOrdered, Key32{units[0], units[1]}, true
	}
}

// Lookup holds both lookup tables.
type Lookup struct {
	Map16  *Map16
	Dict32 *Dict32
}

// NewLookup creates empty lookup tables.
func NewLookup() Lookup {
	return Lookup{Map16: new(Map16), Dict32: NewDict32()}
}

// Insert stores g for seq in the table selected by KeyOf and reports whether
// a previous glyph with the same key was replaced.
func (l Lookup) Insert(seq string, g Glyph) (replaced bool, err error) {
	tier, key, ok := KeyOf(seq)
	if !ok {
		return false, &EmptySequenceError{}
	}
	if tier == TierOrdered {
		return l.Dict32.Put(key, g), nil
	}
	replaced = l.Map16[key[0]].Present()
	l.Map16[key[0]] = g
	return replaced, nil
}

// Find returns the glyph stored for seq.
func (l Lookup) Find(seq string) (Glyph, bool) {
	tier, key, ok := KeyOf(seq)
	if !ok {
		return Glyph{}, false
	}
	if tier == TierOrdered {
		return l.Dict32.Get(key)
	}
	g := l.Map16[key[0]]
	return g, g.Present()
}

// EncodeLookup builds the lookup tables from measured glyphs and their
// packed layout. metrics must be in the order the glyphs were packed.
func EncodeLookup(metrics []GlyphMetrics, layout Layout, fontSize float32) (Lookup, error) {
	positions := layout.Positions()
	if len(positions) != len(metrics) {
		return Lookup{}, fmt.Errorf("fontbake: layout holds %d glyphs, have %d metrics", len(positions), len(metrics))
	}

	l := NewLookup()
	log := Logger()
	for i, m := range metrics {
		g, err := NewGlyph(m, positions[i], fontSize)
		if err != nil {
			return Lookup{}, err
		}

		if n := utf16Len(m.Sequence); n > 1 && n < wideThreshold {
			log.Warn("sequence keyed by its first code unit only", "seq", m.Sequence, "units", n)
		}

		replaced, err := l.Insert(m.Sequence, g)
		if err != nil {
			return Lookup{}, &EmptySequenceError{Index: i}
		}
		if replaced {
			log.Warn("lookup slot overwritten by later sequence", "seq", m.Sequence, "index", i)
		}
	}

	log.Info("encoded lookup", "map16", l.Map16.Count(), "dict32", l.Dict32.Len())
	return l, nil
}

// utf16Len returns the number of UTF-16 code units needed for s.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
