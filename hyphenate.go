// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypher

import (
	"unicode"
	"unicode/utf8"

	"github.com/gaissmai/hypher/internal/wire"
)

// inlineCap is the longest word, in bytes, whose dotted buffer, rune
// offsets and level array are carved from fixed-size arrays instead of
// being sized with make. Those arrays are returned from the functions
// that fill them, so they end up on the heap as well: the cap sizes the
// buffers, it does not make a call allocation-free.
const inlineCap = 41

// DefaultLmin and DefaultRmin are the left/right character minimums
// [Hyphenate] applies when the caller has no language-specific values
// of its own -- the same baseline the '.' word-boundary anchors bake
// into the pattern format itself.
const (
	DefaultLmin = 2
	DefaultRmin = 2
)

// Hyphenate finds syllable breaks in word using blob and the default
// left/right minimums. Use [HyphenateBounded] to supply language- or
// caller-specific minimums instead.
func Hyphenate(blob Blob, word string) Syllables {
	return HyphenateBounded(blob, word, DefaultLmin, DefaultRmin)
}

// HyphenateBounded finds syllable breaks in word using blob, permitting
// no break within lmin characters of the start or rmin characters of
// the end.
func HyphenateBounded(blob Blob, word string, lmin, rmin int) Syllables {
	s, _ := hyphenateBounded(blob, word, lmin, rmin, false)
	return s
}

// HyphenateNoAlloc is [HyphenateBounded] with a length cap: it returns
// [ErrTooLong] instead of hyphenating once word's byte length exceeds
// the fixed inline workspace (41 bytes, see inlineCap). The cap does not
// make the call allocation-free: the working buffers and the returned
// Syllables still live on the heap.
func HyphenateNoAlloc(blob Blob, word string, lmin, rmin int) (Syllables, error) {
	s, ok := hyphenateBounded(blob, word, lmin, rmin, true)
	if !ok {
		return Syllables{}, &tooLongError{byteLen: len(word)}
	}
	return s, nil
}

func hyphenateBounded(blob Blob, word string, lmin, rmin int, noAlloc bool) (Syllables, bool) {
	if word == "" {
		return Syllables{}, true
	}
	if noAlloc && len(word) > inlineCap {
		return Syllables{}, false
	}
	if lmin < 0 {
		lmin = 0
	}
	if rmin < 0 {
		rmin = 0
	}

	dotted, runeOffsets := buildDotted(word)
	minIdx, maxIdx := splitBounds(runeOffsets, lmin, rmin, len(dotted))
	levels := matchLevels(blob, dotted, minIdx, maxIdx, len(word))

	return Syllables{word: word, splits: breakPositions(word, levels)}, true
}

// buildDotted returns "." + word (case-folded rune by rune) + ".", and
// the byte offset of every rune in that buffer. A rune is folded to
// lowercase only when its lowercase form has the same UTF-8 length, so
// every word byte offset always equals its dotted offset minus one.
func buildDotted(word string) (dotted []byte, runeOffsets []int) {
	dottedLen := len(word) + 2

	var dottedArr [inlineCap + 2]byte
	if dottedLen <= inlineCap+2 {
		dotted = dottedArr[:0]
	} else {
		dotted = make([]byte, 0, dottedLen)
	}

	var offsetsArr [inlineCap + 2]int
	if dottedLen <= inlineCap+2 {
		runeOffsets = offsetsArr[:0]
	} else {
		runeOffsets = make([]int, 0, dottedLen)
	}

	dotted = append(dotted, '.')
	runeOffsets = append(runeOffsets, 0)

	for _, r := range word {
		use := r
		if lower := unicode.ToLower(r); lower != r && utf8.RuneLen(lower) == utf8.RuneLen(r) {
			use = lower
		}
		runeOffsets = append(runeOffsets, len(dotted))

		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], use)
		dotted = append(dotted, buf[:n]...)
	}

	runeOffsets = append(runeOffsets, len(dotted))
	dotted = append(dotted, '.')

	return dotted, runeOffsets
}

// splitBounds converts character-counted lmin/rmin into inclusive byte
// bounds on "split", the dotted-buffer offset a trie state's level
// entry refers to.
func splitBounds(runeOffsets []int, lmin, rmin, dottedLen int) (minIdx, maxIdx int) {
	lowIdx := 1 + lmin
	if lowIdx >= len(runeOffsets) {
		minIdx = dottedLen
	} else {
		minIdx = runeOffsets[lowIdx]
	}

	highIdx := len(runeOffsets) - 1 - rmin
	switch {
	case highIdx < 0:
		maxIdx = 0
	case highIdx >= len(runeOffsets):
		maxIdx = dottedLen
	default:
		maxIdx = runeOffsets[highIdx]
	}

	return minIdx, maxIdx
}

// matchLevels runs the Liang level-ORing walk: from every rune boundary
// in dotted, follow transitions for as long as the trie has them,
// OR-ing in every level entry encountered whose split falls within
// [minIdx, maxIdx]. It returns one level per gap between consecutive
// bytes of the original word.
func matchLevels(blob Blob, dotted []byte, minIdx, maxIdx, wordLen int) []uint8 {
	nLevels := wordLen - 1
	if nLevels < 0 {
		nLevels = 0
	}

	var levelsArr [inlineCap]uint8
	var levels []uint8
	if nLevels <= inlineCap {
		levels = levelsArr[:nLevels]
	} else {
		levels = make([]uint8, nLevels)
	}

	for start := 0; start < len(dotted); {
		_, size := utf8.DecodeRune(dotted[start:])

		s := wire.Root(blob)
		for i := start; i < len(dotted); i++ {
			next, ok := s.Transition(dotted[i])
			if !ok {
				break
			}
			s = next

			s.Levels(func(offset int, level uint8) bool {
				split := start + offset
				if split < minIdx || split > maxIdx {
					return true
				}
				idx := split - 2
				if idx < 0 || idx >= len(levels) {
					return true
				}
				if level > levels[idx] {
					levels[idx] = level
				}
				return true
			})
		}

		start += size
	}

	return levels
}

// breakPositions turns a level array into the sorted byte offsets
// where a syllable boundary falls: wherever the accumulated level is
// odd and the following byte actually starts a rune, so a pattern can
// never split a multi-byte character in two.
func breakPositions(word string, levels []uint8) []int {
	var splits []int
	for i, lvl := range levels {
		if lvl%2 != 1 {
			continue
		}
		if !utf8.RuneStart(word[i+1]) {
			continue
		}
		splits = append(splits, i+1)
	}
	return splits
}
