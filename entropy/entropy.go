// Package entropy implements the EntropyEstimator: minimum-cost
// segmentation of a password into smartlist-vocabulary words (or
// single-byte fall-throughs), solved as a shortest-path search over an
// implicit DAG of byte offsets, plus a purely-positional mask-entropy
// estimate.
package entropy

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xiam/maskgen/charset"
	"github.com/xiam/maskgen/smartlist"
)

// ErrNoPath is returned when no segmentation of a password exists. The
// builtin "b" charset (all 256 byte values) guarantees a single-byte
// edge always exists, so this cannot occur once all six builtins are
// loaded, which NewEstimator always does.
var ErrNoPath = errors.New("entropy: bad characters in password")

// entry is one (symbol, set-of-byte-strings) pair: either a builtin
// charset treated as a set of byte singletons, or a deduplicated
// wordlist loaded from a vocab file.
type entry struct {
	symbol string
	set    map[string]struct{}
}

// Estimator holds the sorted list of vocabulary sets used by Estimate.
type Estimator struct {
	entries []entry
}

var builtinSymbols = []byte{'l', 'u', 'd', 's', 'a', 'b'}

// NewEstimator builds the six builtin-charset byte-singleton sets plus
// one set per vocab file in vocabFiles (labeled w1..wN in file order),
// sorted ascending by set cardinality so cheapest-keyspace matches are
// preferred on weight ties.
func NewEstimator(vocabFiles []string) (*Estimator, error) {
	entries := make([]entry, 0, len(vocabFiles)+len(builtinSymbols))

	for _, sym := range builtinSymbols {
		cs, err := charset.Builtin(sym)
		if err != nil {
			return nil, err
		}
		set := make(map[string]struct{}, cs.Len)
		b := cs.Min
		for i := 0; i < cs.Len; i++ {
			set[string([]byte{b})] = struct{}{}
			b = cs.Next[b]
		}
		entries = append(entries, entry{symbol: string(sym), set: set})
	}

	for i, path := range vocabFiles {
		set, err := smartlist.LoadVocab(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{symbol: fmt.Sprintf("w%d", i+1), set: set})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].set) < len(entries[j].set)
	})

	return &Estimator{entries: entries}, nil
}

// Result is the outcome of one Estimate call.
type Result struct {
	MaskEntropy            float64
	CharsetMask            string
	SubwordEntropy         float64
	MinSubwordMask         string
	SubwordEntropyMinSplit []string
}

// Estimate scores pwd: it computes both the vocabulary-weighted minimum
// segmentation cost (subword entropy) and the purely positional mask
// cost, per spec.md §4.6.
func (e *Estimator) Estimate(pwd []byte) (Result, error) {
	subEntropy, split, subMask, err := e.minSubwordSegmentation(pwd)
	if err != nil {
		return Result{}, err
	}

	maskBits, charsetMask := MaskEntropyAndMask(pwd)

	return Result{
		MaskEntropy:            maskBits,
		CharsetMask:            charsetMask,
		SubwordEntropy:         subEntropy,
		MinSubwordMask:         subMask,
		SubwordEntropyMinSplit: split,
	}, nil
}

// pqItem is one entry of the Dijkstra frontier: a byte offset and its
// best known distance from offset 0.
type pqItem struct {
	node int
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// minSubwordSegmentation finds the minimum-weight path from offset 0 to
// len(pwd) over the implicit graph where an edge i->j exists whenever
// some vocabulary set contains pwd[i:j], weighted log2(|set|). The graph
// is never materialized: outgoing edges are probed on demand by testing
// every vocabulary set against every suffix of the current offset.
func (e *Estimator) minSubwordSegmentation(pwd []byte) (float64, []string, string, error) {
	n := len(pwd)

	dist := make([]float64, n+1)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[0] = 0

	visited := make([]bool, n+1)
	prevNode := make([]int, n+1)
	prevSymbol := make([]string, n+1)
	for i := range prevNode {
		prevNode[i] = -1
	}

	pq := &priorityQueue{{node: 0, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if visited[top.node] {
			continue
		}
		visited[top.node] = true
		if top.node == n {
			break
		}

		for _, en := range e.entries {
			weight := math.Log2(float64(len(en.set)))
			for j := n; j > top.node; j-- {
				if _, ok := en.set[string(pwd[top.node:j])]; !ok {
					continue
				}
				nd := dist[top.node] + weight
				if nd < dist[j] {
					dist[j] = nd
					prevNode[j] = top.node
					prevSymbol[j] = en.symbol
					heap.Push(pq, pqItem{node: j, dist: nd})
				}
			}
		}
	}

	if prevNode[n] == -1 && n != 0 {
		return 0, nil, "", ErrNoPath
	}

	var splitRev, maskRev []string
	cur := n
	for cur != 0 {
		p := prevNode[cur]
		splitRev = append(splitRev, string(pwd[p:cur]))
		maskRev = append(maskRev, "?"+prevSymbol[cur])
		cur = p
	}

	split := make([]string, len(splitRev))
	mask := make([]string, len(maskRev))
	for i := range splitRev {
		split[i] = splitRev[len(splitRev)-1-i]
		mask[i] = maskRev[len(maskRev)-1-i]
	}

	return dist[n], split, strings.Join(mask, ""), nil
}

// symbolsSpace is the 33-byte punctuation/space set used by the
// mask-entropy classifier, shared with the charset package's "s"
// builtin (spec.md §4.1/§4.6).
var symbolsSpace = charset.SymbolsSpace

func isMaskSymbolByte(b byte) bool {
	for _, c := range symbolsSpace {
		if c == b {
			return true
		}
	}
	return false
}

// MaskEntropyAndMask computes the positional entropy estimate: for each
// byte, log2(10) for a digit, log2(26) for a letter (either case),
// log2(33) for the punctuation/space set, log2(256) otherwise. It also returns
// the corresponding charset-only mask string.
func MaskEntropyAndMask(pwd []byte) (float64, string) {
	var total float64
	mask := make([]byte, 0, len(pwd)*2)

	for _, b := range pwd {
		var bits float64
		var sym byte
		switch {
		case b >= '0' && b <= '9':
			bits, sym = math.Log2(10), 'd'
		case b >= 'a' && b <= 'z':
			bits, sym = math.Log2(26), 'l'
		case b >= 'A' && b <= 'Z':
			bits, sym = math.Log2(26), 'u'
		case isMaskSymbolByte(b):
			bits, sym = math.Log2(float64(len(symbolsSpace))), 's'
		default:
			bits, sym = math.Log2(256), 'b'
		}
		total += bits
		mask = append(mask, '?', sym)
	}

	return total, string(mask)
}

// MaskEntropy is the bits-only convenience form of MaskEntropyAndMask.
func MaskEntropy(pwd []byte) float64 {
	bits, _ := MaskEntropyAndMask(pwd)
	return bits
}
