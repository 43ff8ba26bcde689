// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wire

import (
	"testing"

	"github.com/gaissmai/hypher/internal/triebuild"
)

func build(t *testing.T, patterns ...string) Blob {
	t.Helper()
	b := triebuild.NewBuilder()
	for _, p := range patterns {
		if err := b.Insert([]byte(p)); err != nil {
			t.Fatalf("Insert(%q): %v", p, err)
		}
	}
	nodes, root := b.Compress()
	blob, err := Encode(nodes, root, b.PackedLevels())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return blob
}

func walk(blob Blob, word string) map[int]uint8 {
	levels := make(map[int]uint8)
	for start := range len(word) {
		s := Root(blob)
		for i := start; i < len(word); i++ {
			next, ok := s.Transition(word[i])
			if !ok {
				break
			}
			s = next
			s.Levels(func(offset int, level uint8) bool {
				pos := start + offset
				if level > levels[pos] {
					levels[pos] = level
				}
				return true
			})
		}
	}
	return levels
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	blob := build(t, "a1b", "b2c", ".a3.")

	root := Root(blob)
	afterA, ok := root.Transition('a')
	if !ok {
		t.Fatal("root has no transition on 'a'")
	}
	afterAB, ok := afterA.Transition('b')
	if !ok {
		t.Fatal("'a' node has no transition on 'b'")
	}

	var sawLevel bool
	afterAB.Levels(func(offset int, level uint8) bool {
		sawLevel = true
		if offset != 1 || level != 1 {
			t.Errorf("got (offset=%d,level=%d), want (1,1)", offset, level)
		}
		return true
	})
	if !sawLevel {
		t.Error("expected at least one level entry after 'a'->'b'")
	}
}

func TestWalkAccumulatesMaxLevel(t *testing.T) {
	// "ab1" anchored at position 0 and "b3c" anchored at position 1
	// both assert a level at absolute position 2; the higher one must
	// win.
	blob := build(t, "ab1", "b3c")

	levels := walk(blob, "abc")
	if levels[2] != 3 {
		t.Errorf("levels[2] = %d, want 3 (max of 1 and 3)", levels[2])
	}
}

func TestTransitionMissReportsNotOK(t *testing.T) {
	blob := build(t, "a1b")
	root := Root(blob)
	if _, ok := root.Transition('z'); ok {
		t.Error("transition on an absent label should report ok=false")
	}
}
