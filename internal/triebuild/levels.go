// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triebuild

import "github.com/gaissmai/hypher/internal/hypherr"

// LevelEntry is one (distance, level) pair from a pattern's digits,
// before it has been packed into a single wire byte.
type LevelEntry struct {
	Dist  uint8
	Level uint8
}

// maxLevelTableOffset leaves room for the 4-byte root-address header
// that the encoder prepends in front of the packed level table; the
// wire format's offset field tops out at 4095.
const maxLevelTableOffset = 4096 - 4

// levelTable is the trie builder's shared pool of level entries. New
// vectors are folded in by a left-to-right suffix scan: a vector that
// already occurs verbatim as a contiguous run anywhere in the table is
// referenced in place, so patterns with overlapping tails (very common
// in real hyphenation corpora) do not duplicate storage.
type levelTable struct {
	entries []LevelEntry
}

// intern finds or appends vec, returning its (offset, length) reference.
func (t *levelTable) intern(vec []LevelEntry) (offset int32, length int8, err error) {
	off := 0
	for off < len(t.entries) && !hasPrefix(t.entries[off:], vec) {
		off++
	}

	if off == len(t.entries) {
		if off+len(vec) > maxLevelTableOffset {
			return 0, 0, &hypherr.LimitExceededError{Kind: hypherr.LimitTableOffset}
		}
		t.entries = append(t.entries, vec...)
	}

	return int32(off), int8(len(vec)), nil
}

func hasPrefix(table, vec []LevelEntry) bool {
	if len(vec) > len(table) {
		return false
	}
	for i, v := range vec {
		if table[i] != v {
			return false
		}
	}
	return true
}
