// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypher

import (
	"iter"
	"strings"
)

// Syllables is a single-pass, finite iterator over the syllables of one
// hyphenated word, produced by [Hyphenate] or [HyphenateBounded].
// Concatenating every syllable it yields, without a separator,
// reconstructs the original word byte for byte.
type Syllables struct {
	word   string
	splits []int // ascending byte offsets into word, one per break
	next   int   // index of the next syllable to emit
}

// Len reports the number of syllables not yet consumed.
func (s Syllables) Len() int {
	if s.word == "" {
		return 0
	}
	return len(s.splits) + 1 - s.next
}

// Next returns the next syllable, and false once the word is
// exhausted.
func (s *Syllables) Next() (string, bool) {
	if s.word == "" || s.next > len(s.splits) {
		return "", false
	}

	start := 0
	if s.next > 0 {
		start = s.splits[s.next-1]
	}

	end := len(s.word)
	if s.next < len(s.splits) {
		end = s.splits[s.next]
	}

	s.next++
	return s.word[start:end], true
}

// Join returns the remaining syllables joined with sep. It works on a
// copy of s, so s itself is not advanced.
func (s Syllables) Join(sep string) string {
	var b strings.Builder
	first := true
	for {
		syl, ok := s.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(syl)
	}
	return b.String()
}

// Seq returns a range-over-func view of the remaining syllables, for
// use in a for-range loop. The sequence walks a copy of s, so s itself
// is not advanced; ranging over the same sequence a second time yields
// nothing.
func (s Syllables) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			syl, ok := s.Next()
			if !ok {
				return
			}
			if !yield(syl) {
				return
			}
		}
	}
}
