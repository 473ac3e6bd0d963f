package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/maskgen/entropy"
)

type entropyFlags struct {
	smartlists    []string
	passwordsFile string
	summary       bool
	entropyType   string
}

func newEntropyCmd() *cobra.Command {
	f := &entropyFlags{}

	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Estimate password entropy against a smartlist vocabulary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntropy(cmd, args, f)
		},
	}

	cmd.Flags().StringArrayVarP(&f.smartlists, "smartlist", "f", nil, "smartlist vocab file (repeatable)")
	cmd.Flags().StringVarP(&f.passwordsFile, "passwords-file", "p", "", "file of newline-separated passwords")
	cmd.Flags().BoolVarP(&f.summary, "summary", "s", false, "file mode: print only the average entropy")
	cmd.Flags().StringVarP(&f.entropyType, "entropy-type", "t", "hybrid", "entropy metric for file mode: mask|hybrid")

	return cmd
}

func runEntropy(cmd *cobra.Command, args []string, f *entropyFlags) error {
	if f.entropyType != "mask" && f.entropyType != "hybrid" {
		return fmt.Errorf("entropy: --entropy-type must be \"mask\" or \"hybrid\", got %q", f.entropyType)
	}

	est, err := entropy.NewEstimator(f.smartlists)
	if err != nil {
		return err
	}

	if f.passwordsFile != "" {
		return runEntropyFile(cmd, est, f)
	}

	if len(args) != 1 {
		return fmt.Errorf("entropy: exactly one password argument is required (or use --passwords-file)")
	}

	res, err := est.Estimate([]byte(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hybrid-min-split: %v\n", res.SubwordEntropyMinSplit)
	fmt.Fprintf(out, "hybrid-mask: %s\n", res.MinSubwordMask)
	fmt.Fprintf(out, "hybrid-min-entropy: %.2f\n", res.SubwordEntropy)
	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "charset-mask: %s\n", res.CharsetMask)
	fmt.Fprintf(out, "charset-mask-entropy: %.2f\n", res.MaskEntropy)

	return nil
}

func runEntropyFile(cmd *cobra.Command, est *entropy.Estimator, f *entropyFlags) error {
	passwords, err := readLines(f.passwordsFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var total float64

	for _, pwd := range passwords {
		res, err := est.Estimate([]byte(pwd))
		if err != nil {
			return err
		}

		bits, mask := res.MaskEntropy, res.CharsetMask
		if f.entropyType == "hybrid" {
			bits, mask = res.SubwordEntropy, res.MinSubwordMask
		}
		total += bits

		if !f.summary {
			fmt.Fprintf(out, "%.2f,%s,%s\n", bits, mask, pwd)
		}
	}

	if f.summary && len(passwords) > 0 {
		fmt.Fprintf(out, "%.2f\n", total/float64(len(passwords)))
	}

	return nil
}
