// Package generator implements the enumeration kernel: given a compiled
// mask, it walks the cross-product of per-position charsets and
// wordlists in deterministic, rightmost-fastest odometer order, writing
// '\n'-terminated candidates to a sink at close to the sink's own
// bandwidth.
package generator

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"syscall"

	"github.com/xiam/maskgen/mask"
	"github.com/xiam/maskgen/wordlist"
)

// MaxWordSize bounds every working buffer the kernel touches, and by
// extension the maximum mask template length (MaxWordSize - 1 tokens).
const MaxWordSize = 512

// WordGenerator is the contract both specializations share.
type WordGenerator interface {
	// Generate writes every candidate this generator admits to out, each
	// followed by a single '\n'. A broken-pipe write error is treated as
	// graceful early termination and reported as a nil error; any other
	// write error is returned to the caller.
	Generate(out io.Writer) error
	// Combinations returns the number of candidates this generator will
	// emit in one run. Candidates are not deduplicated.
	Combinations() *big.Int
}

// ErrConfig is returned for invalid generator configuration: minlen/maxlen
// combined with wordlists, minlen > maxlen, zero length, or a length
// outside the mask's charset count.
var ErrConfig = errors.New("generator: invalid configuration")

// Config describes how to build a WordGenerator.
type Config struct {
	Mask string

	// MinLen/MaxLen override the default length range for charset-only
	// masks. Must not be set together with Wordlists.
	MinLen *int
	MaxLen *int

	// CustomCharsets are referenced by mask positions ?1..?9.
	CustomCharsets []string

	// Wordlists are referenced by mask positions ?w1..?w9. Must already
	// be loaded by the caller (file I/O is not this package's concern).
	Wordlists []*wordlist.Wordlist
}

// New selects and builds the correct WordGenerator for cfg: a
// CharsetGenerator when the mask references no wordlists and none are
// supplied, otherwise a WordlistGenerator.
func New(cfg Config) (WordGenerator, error) {
	ops, err := mask.Parse(cfg.Mask, MaxWordSize-1)
	if err != nil {
		return nil, err
	}

	if !mask.HasWordlist(ops) && len(cfg.Wordlists) == 0 {
		return newCharsetGenerator(cfg.Mask, cfg.MinLen, cfg.MaxLen, cfg.CustomCharsets)
	}
	if cfg.MinLen != nil || cfg.MaxLen != nil {
		return nil, fmt.Errorf("%w: cannot set minlen or maxlen with wordlists", ErrConfig)
	}
	return newWordlistGenerator(cfg.Mask, cfg.Wordlists, cfg.CustomCharsets)
}

// IsBrokenPipe reports whether err is, or wraps, the sink signaling its
// reader has gone away (EPIPE/ECONNRESET). Exported so the CLI
// orchestrator can apply the same graceful-termination rule to errors
// surfacing outside Generate, such as a buffered writer's sticky Flush
// error after a swallowed broken-pipe write.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
