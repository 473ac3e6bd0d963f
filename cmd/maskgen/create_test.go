package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/maskgen/smartlist"
)

func TestCreateUnknownTokenizerFamily(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("hello world\n"), 0o644))

	cmd := newCreateCmd()
	cmd.SetArgs([]string{
		"--file", corpus,
		"--smartlist", filepath.Join(dir, "out.txt"),
		"--tokenizer", "nonsense",
	})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tokenizer family")
}

func TestCreateMissingFile(t *testing.T) {
	cmd := newCreateCmd()
	cmd.SetArgs([]string{"--smartlist", "out.txt", "--tokenizer", "bpe"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file")
}

func TestCreatePropagatesNoTrainerError(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("hello world\n"), 0o644))

	cmd := newCreateCmd()
	cmd.SetArgs([]string{
		"--file", corpus,
		"--smartlist", filepath.Join(dir, "out.txt"),
		"--tokenizer", "bpe",
	})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, smartlist.ErrNoTrainer)
}
