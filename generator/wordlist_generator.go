package generator

import (
	"io"
	"math/big"

	"github.com/xiam/maskgen/charset"
	"github.com/xiam/maskgen/mask"
	"github.com/xiam/maskgen/stackbuf"
	"github.com/xiam/maskgen/wordlist"
)

// item is one resolved mask position: either a fixed charset or a shared
// handle to a wordlist.
type item struct {
	charset  *charset.Charset
	wordlist *wordlist.Wordlist
}

// WordlistGenerator is the specialization used when the mask references
// at least one wordlist. Positions are variable-length: the odometer
// turns into a "ragged" cross-product where the output word length can
// change between iterations.
type WordlistGenerator struct {
	Mask string

	items []item
}

func newWordlistGenerator(tmpl string, wordlists []*wordlist.Wordlist, customCharsets []string) (*WordlistGenerator, error) {
	ops, err := mask.Parse(tmpl, MaxWordSize-1)
	if err != nil {
		return nil, err
	}
	if err := mask.ValidateCustomCharsets(ops, len(customCharsets)); err != nil {
		return nil, err
	}
	if err := mask.ValidateWordlists(ops, len(wordlists)); err != nil {
		return nil, err
	}

	items := make([]item, len(ops))
	for i, op := range ops {
		switch op.Kind {
		case mask.OpLiteral:
			cs, err := charset.New([]byte{op.Byte})
			if err != nil {
				return nil, err
			}
			items[i] = item{charset: cs}
		case mask.OpBuiltinCharset:
			cs, err := charset.Builtin(op.Byte)
			if err != nil {
				return nil, err
			}
			items[i] = item{charset: cs}
		case mask.OpCustomCharset:
			cs, err := charset.New([]byte(customCharsets[op.Index]))
			if err != nil {
				return nil, err
			}
			items[i] = item{charset: cs}
		case mask.OpWordlist:
			items[i] = item{wordlist: wordlists[op.Index]}
		}
	}

	return &WordlistGenerator{Mask: tmpl, items: items}, nil
}

// position is the per-run enumeration state for one mask item.
type position struct {
	cs   *charset.Charset
	cur  byte
	iter *wordlist.Iterator
}

// Generate implements WordGenerator. A fresh positions vector is built
// for the life of this single run.
func (g *WordlistGenerator) Generate(out io.Writer) error {
	positions := make([]position, len(g.items))

	word := make([]byte, MaxWordSize)
	wordLen := 0
	for i, it := range g.items {
		if it.wordlist != nil {
			iter := it.wordlist.Iterator()
			first, _ := iter.Next()
			positions[i] = position{iter: iter}
			wordLen += copy(word[wordLen:], first)
		} else {
			positions[i] = position{cs: it.charset, cur: it.charset.Min}
			word[wordLen] = positions[i].cur
			wordLen++
		}
	}
	word[wordLen] = '\n'
	wordLen++

	buf := stackbuf.New(stackbuf.DefaultCapacity)

outer:
	for {
		if buf.Pos()+wordLen >= buf.Len() {
			if _, err := out.Write(buf.Data()); err != nil {
				if IsBrokenPipe(err) {
					return nil
				}
				return err
			}
			buf.Clear()
		}
		buf.Write(word[:wordLen])

		pos := wordLen - 2
		for i := len(positions) - 1; i >= 0; i-- {
			p := &positions[i]
			if p.iter == nil {
				old := p.cur
				next := p.cs.Next[old]
				p.cur = next
				word[pos] = next
				if next > old {
					continue outer
				}
				pos--
				continue
			}

			prevLen := p.iter.CurrentLen()
			w, ok := p.iter.Next()
			finished := !ok
			if !ok {
				p.iter.Reset()
				w, _ = p.iter.Next()
			}
			wlen := len(w)

			if prevLen != wlen {
				offset := wlen - prevLen
				if offset > 0 {
					// growing: shift the suffix right, highest index first, so a
					// destination slot is never read after being written.
					for j := wordLen - 1; j > pos; j-- {
						word[j+offset] = word[j]
					}
				} else {
					// shrinking: shift the suffix left, lowest index first, for
					// the same reason in the opposite direction.
					for j := pos + 1; j < wordLen; j++ {
						word[j+offset] = word[j]
					}
				}
				pos += offset
				wordLen += offset
			}

			copy(word[pos+1-wlen:pos+1], w)
			pos -= wlen

			if !finished {
				continue outer
			}
		}

		// every position wrapped: the sweep is complete.
		break
	}

	if _, err := out.Write(buf.Data()); err != nil {
		if IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	return nil
}

// Combinations implements WordGenerator.
func (g *WordlistGenerator) Combinations() *big.Int {
	combs := big.NewInt(1)
	for _, it := range g.items {
		if it.wordlist != nil {
			combs.Mul(combs, big.NewInt(int64(it.wordlist.Len())))
		} else {
			combs.Mul(combs, big.NewInt(int64(it.charset.Len)))
		}
	}
	return combs
}
