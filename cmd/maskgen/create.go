package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/maskgen/smartlist"
)

type createFlags struct {
	files          []string
	smartlistOut   string
	tokenizers     []string
	vocabMaxSize   int
	minFrequency   int
	numbersMaxSize int
	minWordLen     int
	quiet          bool
}

func newCreateCmd() *cobra.Command {
	f := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Train a smartlist vocabulary from a corpus (external tokenizer backend required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, f)
		},
	}

	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "corpus file to train from (repeatable)")
	cmd.Flags().StringVarP(&f.smartlistOut, "smartlist", "o", "", "output smartlist file")
	cmd.Flags().StringArrayVarP(&f.tokenizers, "tokenizer", "t", nil, "tokenizer family: bpe|unigram|wordpiece (repeatable)")
	cmd.Flags().IntVar(&f.vocabMaxSize, "vocab-max-size", 0, "maximum vocabulary size")
	cmd.Flags().IntVar(&f.minFrequency, "min-frequency", 0, "minimum token frequency")
	cmd.Flags().IntVar(&f.numbersMaxSize, "numbers-max-size", 0, "maximum length of a purely-numeric token")
	cmd.Flags().IntVar(&f.minWordLen, "min-word-len", 0, "minimum token length")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")

	return cmd
}

func runCreate(cmd *cobra.Command, f *createFlags) error {
	if len(f.files) == 0 {
		return fmt.Errorf("create: at least one --file is required")
	}
	if f.smartlistOut == "" {
		return fmt.Errorf("create: --smartlist output path is required")
	}
	if len(f.tokenizers) == 0 {
		return fmt.Errorf("create: at least one --tokenizer is required")
	}

	families := make([]smartlist.TokenizerFamily, len(f.tokenizers))
	for i, t := range f.tokenizers {
		family := smartlist.TokenizerFamily(t)
		switch family {
		case smartlist.TokenizerBPE, smartlist.TokenizerUnigram, smartlist.TokenizerWordPiece:
			families[i] = family
		default:
			return fmt.Errorf("create: unknown tokenizer family %q (want bpe, unigram, or wordpiece)", t)
		}
	}

	cfg := smartlist.TrainConfig{
		InFiles:        f.files,
		VocabMaxSize:   f.vocabMaxSize,
		MinFrequency:   f.minFrequency,
		Tokenizers:     families,
		MinWordLen:     f.minWordLen,
		NumbersMaxSize: f.numbersMaxSize,
	}

	if !f.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "training smartlist from %d file(s) with %v\n", len(cfg.InFiles), cfg.Tokenizers)
	}

	var trainer smartlist.Trainer = smartlist.UnimplementedTrainer{}
	tokens, err := trainer.Train(cfg)
	if err != nil {
		return err
	}

	var data []byte
	for _, tok := range tokens {
		data = append(data, []byte(tok)...)
		data = append(data, '\n')
	}
	return os.WriteFile(f.smartlistOut, data, 0o644)
}
