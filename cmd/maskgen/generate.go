package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/maskgen/generator"
	"github.com/xiam/maskgen/stackbuf"
	"github.com/xiam/maskgen/wordlist"
)

const (
	maxCustomCharsets = 9
	maxWordlists      = 9
)

type generateFlags struct {
	minLen         int
	maxLen         int
	stats          bool
	customCharsets []string
	wordlists      []string
	masksFile      string
	outputFile     string
}

// newGenerateCmd builds the generate command under the given Use name (so
// it can be mounted both as the root command itself and as an explicit
// "generate" subcommand).
func newGenerateCmd(use string) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: "Generate password candidates from a mask template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, f)
		},
	}

	cmd.Flags().IntVarP(&f.minLen, "minlen", "m", 0, "minimum candidate length (charset-only masks)")
	cmd.Flags().IntVarP(&f.maxLen, "maxlen", "x", 0, "maximum candidate length (charset-only masks)")
	cmd.Flags().BoolVarP(&f.stats, "stats", "s", false, "print only the combination count and exit")
	cmd.Flags().StringArrayVarP(&f.customCharsets, "custom-charset", "c", nil, "custom charset referenced by ?1..?9 (repeatable, max 9)")
	cmd.Flags().StringArrayVarP(&f.wordlists, "wordlist", "w", nil, "wordlist file referenced by ?w1..?w9 (repeatable, max 9)")
	cmd.Flags().StringVarP(&f.masksFile, "masks-file", "i", "", "file of newline-separated masks")
	cmd.Flags().StringVarP(&f.outputFile, "output-file", "o", "", "output file (defaults to stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, f *generateFlags) error {
	if len(f.customCharsets) > maxCustomCharsets {
		return fmt.Errorf("generate: at most %d custom charsets are supported, got %d", maxCustomCharsets, len(f.customCharsets))
	}
	if len(f.wordlists) > maxWordlists {
		return fmt.Errorf("generate: at most %d wordlists are supported, got %d", maxWordlists, len(f.wordlists))
	}

	masks, err := resolveMasks(f.masksFile, args)
	if err != nil {
		return err
	}

	wordlists := make([]*wordlist.Wordlist, len(f.wordlists))
	for i, path := range f.wordlists {
		wl, err := wordlist.Load(path)
		if err != nil {
			return err
		}
		wordlists[i] = wl
	}

	var minLen, maxLen *int
	if cmd.Flags().Changed("minlen") {
		minLen = &f.minLen
	}
	if cmd.Flags().Changed("maxlen") {
		maxLen = &f.maxLen
	}

	out, closeOut, err := openOutput(f.outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	w := bufio.NewWriterSize(out, stackbuf.DefaultCapacity)

	for _, m := range masks {
		gen, err := generator.New(generator.Config{
			Mask:           m,
			MinLen:         minLen,
			MaxLen:         maxLen,
			CustomCharsets: f.customCharsets,
			Wordlists:      wordlists,
		})
		if err != nil {
			return err
		}

		if f.stats {
			fmt.Fprintln(cmd.OutOrStdout(), gen.Combinations().String())
			if f.masksFile != "" {
				// spec.md §9: --stats in --masks-file mode reports only
				// the first mask's count.
				break
			}
			continue
		}

		if err := gen.Generate(w); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		// The sink-level broken-pipe write was already swallowed inside
		// Generate, but bufio.Writer latches the error and returns it
		// again here on Flush; apply the same graceful-termination rule
		// at this boundary (spec.md §4.5, §6, §7).
		if generator.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	return nil
}

func resolveMasks(masksFile string, args []string) ([]string, error) {
	if masksFile != "" {
		return readLines(masksFile)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("generate: exactly one mask argument is required (or use --masks-file)")
	}
	return args, nil
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: create output file %s: %w", path, err)
	}
	return f, f.Close, nil
}
