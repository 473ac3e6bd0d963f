// Package mask compiles a mask template string into an ordered sequence
// of position operations: literal bytes, builtin charsets, custom
// charset references, and wordlist references.
package mask

import (
	"errors"
	"fmt"

	"github.com/xiam/maskgen/charset"
)

// Kind tags a mask Op's variant.
type Kind int

const (
	// OpLiteral is a literal byte, either escaped with '\' or a plain
	// byte that isn't '?' or '\'.
	OpLiteral Kind = iota
	// OpBuiltinCharset is one of ?l ?u ?d ?s ?a ?b.
	OpBuiltinCharset
	// OpCustomCharset is ?1..?9, a 0-based index into the provided
	// custom charsets.
	OpCustomCharset
	// OpWordlist is ?w1..?w9, a 0-based index into the provided wordlists.
	OpWordlist
)

// Op is one position of a compiled mask.
type Op struct {
	Kind   Kind
	Byte   byte // valid for OpLiteral (the literal byte) and OpBuiltinCharset (the symbol)
	Index  int  // valid for OpCustomCharset and OpWordlist
}

// ErrInvalidMask is returned when a template fails the mask grammar.
var ErrInvalidMask = errors.New("mask: invalid template")

// ErrCustomCharsetRef is returned by ValidateCustomCharsets when a mask
// references a custom charset index beyond what was provided.
var ErrCustomCharsetRef = errors.New("mask: custom charset index out of range")

// ErrWordlistRef is returned by ValidateWordlists when a mask references
// a wordlist index beyond what was provided.
var ErrWordlistRef = errors.New("mask: wordlist index out of range")

// Parse compiles tmpl into an ordered list of Ops per the grammar:
//
//	( "\" ANY | "?" [ludsab1-9] | "?w" [1-9] | ANY_not_{?,\} ){1,maxTokens}
//
// maxTokens bounds the mask template length (spec: MAX_WORD_SIZE - 1).
func Parse(tmpl string, maxTokens int) ([]Op, error) {
	if tmpl == "" {
		return nil, fmt.Errorf("%w: %q: empty mask", ErrInvalidMask, tmpl)
	}

	b := []byte(tmpl)
	ops := make([]Op, 0, len(b))

	for i := 0; i < len(b); {
		ch := b[i]
		switch ch {
		case '\\':
			if i+1 >= len(b) {
				return nil, fmt.Errorf("%w: %q: dangling escape at end of mask", ErrInvalidMask, tmpl)
			}
			ops = append(ops, Op{Kind: OpLiteral, Byte: b[i+1]})
			i += 2

		case '?':
			if i+1 >= len(b) {
				return nil, fmt.Errorf("%w: %q: dangling '?' at end of mask", ErrInvalidMask, tmpl)
			}
			next := b[i+1]
			switch {
			case next >= '1' && next <= '9':
				ops = append(ops, Op{Kind: OpCustomCharset, Index: int(next - '1')})
				i += 2

			case next == 'w':
				if i+2 >= len(b) {
					return nil, fmt.Errorf("%w: %q: dangling '?w' at end of mask", ErrInvalidMask, tmpl)
				}
				idx := b[i+2]
				if idx < '1' || idx > '9' {
					return nil, fmt.Errorf("%w: %q: '?w' must be followed by a digit 1-9", ErrInvalidMask, tmpl)
				}
				ops = append(ops, Op{Kind: OpWordlist, Index: int(idx - '1')})
				i += 3

			case charset.IsBuiltinSymbol(next):
				ops = append(ops, Op{Kind: OpBuiltinCharset, Byte: next})
				i += 2

			default:
				return nil, fmt.Errorf("%w: %q: unknown mask symbol '?%c'", ErrInvalidMask, tmpl, next)
			}

		default:
			ops = append(ops, Op{Kind: OpLiteral, Byte: ch})
			i++
		}

		if len(ops) > maxTokens {
			return nil, fmt.Errorf("%w: %q: mask exceeds maximum of %d tokens", ErrInvalidMask, tmpl, maxTokens)
		}
	}

	return ops, nil
}

// ValidateCustomCharsets checks that every OpCustomCharset index in ops
// is within [0, numCustomCharsets).
func ValidateCustomCharsets(ops []Op, numCustomCharsets int) error {
	max := -1
	for _, op := range ops {
		if op.Kind == OpCustomCharset && op.Index > max {
			max = op.Index
		}
	}
	if max >= numCustomCharsets {
		return fmt.Errorf("%w: mask contains ?%d charset but only %d custom charsets defined", ErrCustomCharsetRef, max+1, numCustomCharsets)
	}
	return nil
}

// ValidateWordlists checks that every OpWordlist index in ops is within
// [0, numWordlists).
func ValidateWordlists(ops []Op, numWordlists int) error {
	max := -1
	for _, op := range ops {
		if op.Kind == OpWordlist && op.Index > max {
			max = op.Index
		}
	}
	if max >= numWordlists {
		return fmt.Errorf("%w: mask contains ?w%d wordlist but only %d wordlists defined", ErrWordlistRef, max+1, numWordlists)
	}
	return nil
}

// HasWordlist reports whether ops references any wordlist position.
func HasWordlist(ops []Op) bool {
	for _, op := range ops {
		if op.Kind == OpWordlist {
			return true
		}
	}
	return false
}
