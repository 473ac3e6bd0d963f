package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropyBadEntropyType(t *testing.T) {
	cmd := newEntropyCmd()
	cmd.SetArgs([]string{"--entropy-type", "bogus", "password"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--entropy-type")
}

func TestEntropySinglePasswordReport(t *testing.T) {
	var out bytes.Buffer
	cmd := newEntropyCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Aa1"})
	require.NoError(t, cmd.Execute())

	lines := out.String()
	assert.Contains(t, lines, "hybrid-min-split:")
	assert.Contains(t, lines, "hybrid-mask:")
	assert.Contains(t, lines, "hybrid-min-entropy:")
	assert.Contains(t, lines, "---")
	assert.Contains(t, lines, "charset-mask:")
	assert.Contains(t, lines, "charset-mask-entropy:")
}

func TestEntropyFileModeSummary(t *testing.T) {
	dir := t.TempDir()
	pwFile := filepath.Join(dir, "pwds.txt")
	require.NoError(t, os.WriteFile(pwFile, []byte("abc\ndef\n"), 0o644))

	var out bytes.Buffer
	cmd := newEntropyCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--passwords-file", pwFile, "--summary"})
	require.NoError(t, cmd.Execute())

	assert.Len(t, bytesSplitLines(out.String()), 1)
}

func TestEntropyFileModeCSV(t *testing.T) {
	dir := t.TempDir()
	pwFile := filepath.Join(dir, "pwds.txt")
	require.NoError(t, os.WriteFile(pwFile, []byte("abc\n"), 0o644))

	var out bytes.Buffer
	cmd := newEntropyCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--passwords-file", pwFile, "--entropy-type", "mask"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), ",")
	assert.Contains(t, out.String(), "abc")
}

func TestEntropyMissingPasswordArgument(t *testing.T) {
	cmd := newEntropyCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
}

func bytesSplitLines(s string) []string {
	var lines []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			if cur != "" {
				lines = append(lines, cur)
			}
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
