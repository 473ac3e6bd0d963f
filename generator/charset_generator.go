package generator

import (
	"fmt"
	"io"
	"math/big"

	"github.com/xiam/maskgen/charset"
	"github.com/xiam/maskgen/mask"
	"github.com/xiam/maskgen/stackbuf"
)

// CharsetGenerator is the specialization used when the mask references
// no wordlists: the inner kernel is a pure jump-table odometer with
// per-length sweeps over a fixed minlen..maxlen range.
type CharsetGenerator struct {
	Mask   string
	MinLen int
	MaxLen int

	charsets []*charset.Charset
	minWord  []byte
}

func newCharsetGenerator(tmpl string, minLen, maxLen *int, customCharsets []string) (*CharsetGenerator, error) {
	ops, err := mask.Parse(tmpl, MaxWordSize-1)
	if err != nil {
		return nil, err
	}
	if err := mask.ValidateCustomCharsets(ops, len(customCharsets)); err != nil {
		return nil, err
	}
	if err := mask.ValidateWordlists(ops, 0); err != nil {
		return nil, err
	}

	charsets := make([]*charset.Charset, len(ops))
	for i, op := range ops {
		var cs *charset.Charset
		var err error
		switch op.Kind {
		case mask.OpLiteral:
			cs, err = charset.New([]byte{op.Byte})
		case mask.OpBuiltinCharset:
			cs, err = charset.Builtin(op.Byte)
		case mask.OpCustomCharset:
			cs, err = charset.New([]byte(customCharsets[op.Index]))
		case mask.OpWordlist:
			panic("generator: CharsetGenerator cannot handle wordlist mask ops")
		}
		if err != nil {
			return nil, err
		}
		charsets[i] = cs
	}

	n := len(charsets)
	ml := n
	if minLen != nil {
		ml = *minLen
	}
	xl := n
	if maxLen != nil {
		xl = *maxLen
	}

	if !(ml > 0 && ml <= xl && ml <= n) {
		return nil, fmt.Errorf("%w: minlen %d is invalid for mask with %d positions", ErrConfig, ml, n)
	}
	if xl > n {
		return nil, fmt.Errorf("%w: maxlen %d is invalid for mask with %d positions", ErrConfig, xl, n)
	}

	minWord := make([]byte, n)
	for i, c := range charsets {
		minWord[i] = c.Min
	}

	return &CharsetGenerator{
		Mask:     tmpl,
		MinLen:   ml,
		MaxLen:   xl,
		charsets: charsets,
		minWord:  minWord,
	}, nil
}

// Generate implements WordGenerator.
func (g *CharsetGenerator) Generate(out io.Writer) error {
	for length := g.MinLen; length <= g.MaxLen; length++ {
		if err := g.genByLength(length, out); err != nil {
			if IsBrokenPipe(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (g *CharsetGenerator) genByLength(length int, out io.Writer) error {
	buf := stackbuf.New(stackbuf.DefaultCapacity)
	batchSize := buf.Len() / (length + 1)
	if batchSize < 1 {
		batchSize = 1
	}

	word := make([]byte, length+1)
	copy(word[:length], g.minWord[:length])
	word[length] = '\n'

	for {
		wrappedAll := false
		for i := 0; i < batchSize; i++ {
			buf.Write(word)

			wrapped := true
			for pos := length - 1; pos >= 0; pos-- {
				old := word[pos]
				next := g.charsets[pos].Next[old]
				word[pos] = next
				if next > old {
					wrapped = false
					break
				}
			}
			if wrapped {
				wrappedAll = true
				break
			}
		}

		if wrappedAll {
			if _, err := out.Write(buf.Data()); err != nil {
				return err
			}
			return nil
		}

		if _, err := out.Write(buf.Data()); err != nil {
			return err
		}
		buf.Clear()
	}
}

// Combinations implements WordGenerator.
func (g *CharsetGenerator) Combinations() *big.Int {
	combs := big.NewInt(0)
	for length := g.MinLen; length <= g.MaxLen; length++ {
		term := big.NewInt(1)
		for p := 0; p < length; p++ {
			term.Mul(term, big.NewInt(int64(g.charsets[p].Len)))
		}
		combs.Add(combs, term)
	}
	return combs
}
