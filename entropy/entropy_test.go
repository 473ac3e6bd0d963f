package entropy

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocab(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	var data []byte
	for _, w := range words {
		data = append(data, []byte(w)...)
		data = append(data, '\n')
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMaskEntropyAndMask(t *testing.T) {
	cases := []struct {
		pwd  string
		want float64
	}{
		{"Aa123456!", 2*math.Log2(26) + 6*math.Log2(10) + math.Log2(33)},
		{"0123456789", 10 * math.Log2(10)},
		{"!@#$%^&*()", 10 * math.Log2(33)},
	}
	for _, tc := range cases {
		got := MaskEntropy([]byte(tc.pwd))
		assert.InDelta(t, tc.want, got, 1e-9, tc.pwd)
	}
}

func TestMaskEntropyMonotonicity(t *testing.T) {
	pwd := []byte("abc")
	base := MaskEntropy(pwd)
	extended := MaskEntropy(append(pwd, 'd'))
	assert.Greater(t, extended, base)
}

func TestMaskEntropyNonAsciiFallsThroughToByteClass(t *testing.T) {
	// the 4-byte UTF-8 encoding of an emoji: every byte is >= 0x80, so
	// each falls into the log2(256) "otherwise" branch.
	pwd := []byte{0xF0, 0x9F, 0x98, 0x83}
	assert.InDelta(t, 32.0, MaskEntropy(pwd), 1e-9)
}

func TestEstimateHelloworldSplit(t *testing.T) {
	vocab := writeVocab(t, "helloworld")
	est, err := NewEstimator([]string{vocab})
	require.NoError(t, err)

	res, err := est.Estimate([]byte("helloworld123!"))
	require.NoError(t, err)

	assert.Equal(t, []string{"helloworld", "1", "2", "3", "!"}, res.SubwordEntropyMinSplit)
	assert.Equal(t, "?w1?d?d?d?s", res.MinSubwordMask)

	want := math.Log2(1) + 3*math.Log2(10) + math.Log2(33)
	assert.InDelta(t, want, res.SubwordEntropy, 1e-9)
}

func TestEstimateRoundTripReproducesPassword(t *testing.T) {
	vocab := writeVocab(t, "hello", "world")
	est, err := NewEstimator([]string{vocab})
	require.NoError(t, err)

	pwd := "helloworld42"
	res, err := est.Estimate([]byte(pwd))
	require.NoError(t, err)

	var rebuilt string
	for _, part := range res.SubwordEntropyMinSplit {
		rebuilt += part
	}
	assert.Equal(t, pwd, rebuilt)
}

func TestEstimateWithoutVocabFallsBackToByteEdges(t *testing.T) {
	est, err := NewEstimator(nil)
	require.NoError(t, err)

	res, err := est.Estimate([]byte("Zz!"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "z", "!"}, res.SubwordEntropyMinSplit)
}

func TestEstimateEmptyPassword(t *testing.T) {
	est, err := NewEstimator(nil)
	require.NoError(t, err)

	res, err := est.Estimate(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.SubwordEntropy)
	assert.Empty(t, res.SubwordEntropyMinSplit)
}

func TestEntriesSortedBySetSize(t *testing.T) {
	vocab := writeVocab(t, "a")
	est, err := NewEstimator([]string{vocab})
	require.NoError(t, err)

	for i := 1; i < len(est.entries); i++ {
		assert.LessOrEqual(t, len(est.entries[i-1].set), len(est.entries[i].set))
	}
}
