// Package wordlist implements a length-bucketed, contiguous-byte store
// of words loaded from a newline-separated file, iterable in a
// deterministic order: ascending bucket length, then file-insertion
// order within a bucket.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// bucket holds every word of a fixed length L, back-to-back in a single
// byte arena so iteration is a fixed stride scan.
type bucket struct {
	length int
	arena  []byte
	count  int
}

// Wordlist is an immutable, length-bucketed set of byte strings. It is
// built once and may be shared by reference across every mask position
// that references it; Iterators hold independent cursors.
type Wordlist struct {
	buckets []bucket
	total   int
}

// Load reads path as a newline-separated file: a trailing '\n' at EOF is
// optional, empty lines are skipped, and a line's bytes form one word
// verbatim (no trimming beyond the newline).
func Load(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	byLength := map[int][]byte{}
	counts := map[int]int{}

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
			}
			if len(line) > 0 {
				byLength[len(line)] = append(byLength[len(line)], line...)
				counts[len(line)]++
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
		}
	}

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	buckets := make([]bucket, 0, len(lengths))
	total := 0
	for _, l := range lengths {
		buckets = append(buckets, bucket{length: l, arena: byLength[l], count: counts[l]})
		total += counts[l]
	}

	return &Wordlist{buckets: buckets, total: total}, nil
}

// Len returns the total word count across all buckets.
func (w *Wordlist) Len() int {
	return w.total
}

// Iterator returns a fresh, independent cursor over w, starting at the
// shortest bucket.
func (w *Wordlist) Iterator() *Iterator {
	return &Iterator{wl: w}
}

// Iterator is a cursor into a Wordlist: current bucket index and byte
// offset within that bucket's arena. It is restartable by re-creating it
// via Wordlist.Iterator, or in place via Reset.
type Iterator struct {
	wl         *Wordlist
	bucketIdx  int
	offset     int
	currentLen int
}

// Reset restarts the iterator from bucket 0, offset 0.
func (it *Iterator) Reset() {
	it.bucketIdx = 0
	it.offset = 0
	it.currentLen = 0
}

// Next returns the next word as a contiguous byte slice (its lifetime is
// tied to the Wordlist's arena — callers must not retain it past the
// Wordlist's lifetime without copying) and true, or nil and false when
// the iterator is exhausted.
func (it *Iterator) Next() ([]byte, bool) {
	for it.bucketIdx < len(it.wl.buckets) {
		b := &it.wl.buckets[it.bucketIdx]
		if it.offset >= len(b.arena) {
			it.bucketIdx++
			it.offset = 0
			continue
		}
		word := b.arena[it.offset : it.offset+b.length]
		it.offset += b.length
		it.currentLen = b.length
		return word, true
	}
	return nil, false
}

// CurrentLen returns the length of the most recently returned word.
func (it *Iterator) CurrentLen() int {
	return it.currentLen
}
