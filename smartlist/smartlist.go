// Package smartlist loads the vocabulary files consumed by the entropy
// estimator, and defines the interface boundary for the out-of-scope
// subword-tokenizer training pipeline (BPE, Unigram, WordPiece).
package smartlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadVocab reads path in the same newline-separated format as wordlist
// files (spec.md §6): a trailing '\n' at EOF is optional, empty lines are
// skipped, a line's bytes form one word verbatim. Words are deduplicated
// into a set.
func LoadVocab(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("smartlist: open %s: %w", path, err)
	}
	defer f.Close()

	words := map[string]struct{}{}

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
			}
			if len(line) > 0 {
				words[string(line)] = struct{}{}
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("smartlist: read %s: %w", path, err)
		}
	}

	return words, nil
}

// TokenizerFamily names one of the subword-tokenizer algorithms the
// external training pipeline may use.
type TokenizerFamily string

const (
	TokenizerBPE       TokenizerFamily = "bpe"
	TokenizerUnigram   TokenizerFamily = "unigram"
	TokenizerWordPiece TokenizerFamily = "wordpiece"
)

// TrainConfig describes a smartlist-training run: one or more input text
// files, a maximum vocabulary size, an optional minimum token frequency,
// a selection of tokenizer families, and the post-training filters
// (minimum word length, maximum size of a purely-numeric token).
type TrainConfig struct {
	InFiles        []string
	VocabMaxSize   int
	MinFrequency   int
	Tokenizers     []TokenizerFamily
	MinWordLen     int
	NumbersMaxSize int
}

// Trainer is the external collaborator that wraps the third-party
// subword-tokenizer libraries. It is out of scope for this module (see
// spec.md §1); only the interface is specified so the `create` CLI
// subcommand and its flag validation are fully implemented and testable.
type Trainer interface {
	// Train returns a deduplicated set of tokens, sorted by descending
	// corpus frequency (ties broken by token string), filtered by
	// cfg.MinWordLen and cfg.NumbersMaxSize.
	Train(cfg TrainConfig) ([]string, error)
}

// ErrNoTrainer is returned by UnimplementedTrainer.Train: no in-tree
// tokenizer backend is wired, since no Go tokenizer-training library
// exists in the pack this module was built from.
var ErrNoTrainer = errors.New("smartlist: no tokenizer training backend is available in this build")

// UnimplementedTrainer is the default Trainer: it validates nothing and
// always fails with ErrNoTrainer, standing in for the real BPE/Unigram/
// WordPiece training pipeline that lives outside this module's scope.
type UnimplementedTrainer struct{}

func (UnimplementedTrainer) Train(cfg TrainConfig) ([]string, error) {
	return nil, ErrNoTrainer
}
