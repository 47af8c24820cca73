package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/edsrzf/mmap-go"
	"github.com/spaolacci/murmur3"

	"github.com/tamirms/strmetric"
)

// Synthetic lines draw from ASCII of every class plus Latin-1 and
// non-Latin-1 runes, so both narrow and wide storage are exercised.
var syntheticAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !#$%&*+-./:;=?@_" +
	"àáâãäåæçèéêëìíîïñòóôõöøùúûüýÿßÆØÞ" +
	"αβγδεζηθλμπσφψωΩЖЯ中文字€")

// errEmptyCorpus is returned when a corpus holds fewer than two lines.
var errEmptyCorpus = errors.New("corpus needs at least two lines")

// loadCorpus maps path read-only and decodes each line as UTF-8. Lines are
// copied out so the mapping can be released before the benchmark runs.
func loadCorpus(path string) ([]strmetric.Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyCorpus)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap corpus: %w", err)
	}
	adviseSequential(mm)

	lines := splitLines(mm)
	if err := mm.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap corpus: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyCorpus)
	}
	return lines, nil
}

func splitLines(data []byte) []strmetric.Text {
	var lines []strmetric.Text
	for line := range bytes.Lines(data) {
		line = bytes.TrimRight(line, "\r\n")
		lines = append(lines, strmetric.FromString(string(line)))
	}
	return lines
}

// syntheticSource derives every random choice from murmur3 of
// (line, draw) under a fixed seed, so a corpus is reproducible from its
// seed alone.
type syntheticSource struct {
	seed uint32
	buf  [16]byte
}

func (s *syntheticSource) draw(line, n uint64) uint64 {
	binary.LittleEndian.PutUint64(s.buf[:8], line)
	binary.LittleEndian.PutUint64(s.buf[8:], n)
	return murmur3.Sum64WithSeed(s.buf[:], s.seed)
}

// syntheticCorpus generates n lines of minLen..maxLen runes. Every odd line
// is a lightly edited copy of the line before it, so adjacent pairs cover
// both near matches and unrelated strings.
func syntheticCorpus(n, minLen, maxLen int, seed uint32) []strmetric.Text {
	src := &syntheticSource{seed: seed}
	span := uint64(maxLen - minLen + 1)
	alpha := uint64(len(syntheticAlphabet))

	lines := make([]strmetric.Text, n)
	var prev []rune
	for i := range n {
		line := uint64(i)
		var runes []rune
		if i%2 == 1 {
			runes = mutate(src, line, prev)
		} else {
			runes = make([]rune, minLen+int(src.draw(line, 0)%span))
			for k := range runes {
				runes[k] = syntheticAlphabet[src.draw(line, uint64(k)+1)%alpha]
			}
		}
		lines[i] = strmetric.FromString(string(runes))
		prev = runes
	}
	return lines
}

// mutate applies up to four random substitutions, insertions or deletions.
func mutate(src *syntheticSource, line uint64, base []rune) []rune {
	out := slices.Clone(base)
	alpha := uint64(len(syntheticAlphabet))
	edits := src.draw(line, 0) % 5
	for e := range edits {
		h := src.draw(line, e+1)
		r := syntheticAlphabet[(h>>32)%alpha]
		switch op := h % 3; {
		case len(out) == 0 || op == 0:
			pos := int((h >> 8) % uint64(len(out)+1))
			out = slices.Insert(out, pos, r)
		case op == 1:
			pos := int((h >> 8) % uint64(len(out)))
			out[pos] = r
		default:
			pos := int((h >> 8) % uint64(len(out)))
			out = slices.Delete(out, pos, pos+1)
		}
	}
	return out
}
