package smartlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadVocabDeduplicatesAndSkipsEmptyLines(t *testing.T) {
	path := writeFile(t, "hello\nworld\nhello\n\nworld\n")

	vocab, err := LoadVocab(path)
	require.NoError(t, err)
	assert.Len(t, vocab, 2)
	assert.Contains(t, vocab, "hello")
	assert.Contains(t, vocab, "world")
}

func TestLoadVocabWithoutTrailingNewline(t *testing.T) {
	path := writeFile(t, "foo\nbar")

	vocab, err := LoadVocab(path)
	require.NoError(t, err)
	assert.Contains(t, vocab, "foo")
	assert.Contains(t, vocab, "bar")
}

func TestLoadVocabMissingFile(t *testing.T) {
	_, err := LoadVocab(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestUnimplementedTrainerAlwaysFails(t *testing.T) {
	var trainer Trainer = UnimplementedTrainer{}
	tokens, err := trainer.Train(TrainConfig{
		InFiles:    []string{"corpus.txt"},
		Tokenizers: []TokenizerFamily{TokenizerBPE},
	})
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, ErrNoTrainer)
}
