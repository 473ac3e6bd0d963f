// Package charset implements the cyclic successor table each mask
// position is compiled into: a 256-entry jump table mapping every byte
// value to the next byte in the set, plus the set's minimum byte and
// cardinality.
package charset

import (
	"errors"
	"sort"
)

// ErrEmptyCharset is returned when a Charset is built from zero bytes.
var ErrEmptyCharset = errors.New("charset: cannot build from an empty set of bytes")

// Charset is an immutable cyclic successor table over a set of bytes.
// For bytes in the set, Next[b] holds the next byte in ascending cyclic
// order. For bytes not in the set, Next[b] is unused.
type Charset struct {
	Next [256]byte
	Min  byte
	Len  int
}

// New builds a Charset from an arbitrary (possibly unsorted, possibly
// duplicated) slice of bytes.
func New(chars []byte) (*Charset, error) {
	if len(chars) == 0 {
		return nil, ErrEmptyCharset
	}

	seen := make(map[byte]bool, len(chars))
	sorted := make([]byte, 0, len(chars))
	for _, c := range chars {
		if seen[c] {
			continue
		}
		seen[c] = true
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	cs := &Charset{
		Min: sorted[0],
		Len: len(sorted),
	}
	for i := range sorted {
		cs.Next[sorted[i]] = sorted[(i+1)%len(sorted)]
	}
	return cs, nil
}

// symbol is one entry of the builtin-charset table: a mask symbol
// ('l', 'u', 'd', 's', 'a', 'b') and the exact sorted byte set it means.
type symbol struct {
	ch    byte
	bytes []byte
}

func rangeBytes(lo, hi int) []byte {
	out := make([]byte, 0, hi-lo+1)
	for b := lo; b <= hi; b++ {
		out = append(out, byte(b))
	}
	return out
}

// symbolsSpace is the exact 33-byte punctuation/space set: space plus
// '!'..'/' , ':'..'@' , '['..'`' , '{'..'~'.
var symbolsSpace = []byte{
	32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 58, 59, 60, 61, 62, 63,
	64, 91, 92, 93, 94, 95, 96, 123, 124, 125, 126,
}

// allCharset is the exact 94-byte union l∪u∪d∪(s minus space), in the
// same enumeration order used by the original implementation.
var allCharset = []byte{
	97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112, 113, 114,
	115, 116, 117, 118, 119, 120, 121, 122, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76,
	77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 48, 49, 50, 51, 52, 53, 54, 55,
	56, 57, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 58, 59, 60, 61, 62,
	63, 64, 91, 92, 93, 94, 95, 96, 123, 124, 125, 126,
}

var builtinSymbols = []symbol{
	{'l', rangeBytes(0x61, 0x7A)},
	{'u', rangeBytes(0x41, 0x5A)},
	{'d', rangeBytes(0x30, 0x39)},
	{'s', symbolsSpace},
	{'a', allCharset},
	{'b', rangeBytes(0, 255)},
}

var builtinCache = map[byte]*Charset{}

func init() {
	for _, s := range builtinSymbols {
		cs, err := New(s.bytes)
		if err != nil {
			panic(err)
		}
		builtinCache[s.ch] = cs
	}
}

// SymbolsSpace is the exact 33-byte "s" set used by the entropy
// estimator's mask-entropy classifier.
var SymbolsSpace = symbolsSpace

// Builtin returns one of the six named builtin charsets: l, u, d, s, a, b.
func Builtin(sym byte) (*Charset, error) {
	cs, ok := builtinCache[sym]
	if !ok {
		return nil, errors.New("charset: unknown builtin symbol " + string(sym))
	}
	return cs, nil
}

// IsBuiltinSymbol reports whether sym names one of the six builtin charsets.
func IsBuiltinSymbol(sym byte) bool {
	_, ok := builtinCache[sym]
	return ok
}
