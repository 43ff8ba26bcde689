// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triebuild

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// CompressedNode is one node of the suffix-compressed trie, ready for
// the wire encoder: transition labels in ascending byte order, the
// child index each label jumps to (already renumbered into the
// compressed array), and an optional level-table reference.
type CompressedNode struct {
	Labels      []byte
	Targets     []int32
	HasLevels   bool
	LevelOffset int32
	LevelLength int8
}

// Compress performs bottom-up suffix compression: structurally
// identical subtries (same transition labels, same targets after their
// own compression, same level reference) collapse onto one
// representative node. It returns the compressed node array and the
// index of the (possibly renumbered) root.
//
// The traversal is iterative rather than recursive: a hyphenation
// pattern corpus can build an arena with many thousands of nodes, and
// nothing bounds how deep a single pattern's transition chain runs, so
// an explicit stack avoids tying the builder's robustness to the
// host's call-stack depth. expanded tracks, per original node index,
// whether its children have already been pushed for processing --
// exactly the "seen it once already" test a dynamic popcount bitset is
// built for.
func (b *Builder) Compress() (nodes []CompressedNode, root int32) {
	type frame struct{ orig int32 }

	expanded := bitset.New(uint(len(b.arena)))
	canon := make([]int32, len(b.arena))
	for i := range canon {
		canon[i] = -1
	}

	dedup := make(map[string]int32, len(b.arena))
	out := make([]CompressedNode, 0, len(b.arena))

	stack := []frame{{orig: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if canon[top.orig] != -1 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := &b.arena[top.orig]
		labels, targets := n.kids.labels()

		if !expanded.Test(uint(top.orig)) {
			expanded.Set(uint(top.orig))

			pending := false
			for _, t := range targets {
				if canon[t] == -1 {
					stack = append(stack, frame{orig: t})
					pending = true
				}
			}
			if pending {
				continue
			}
		}

		remapped := make([]int32, len(targets))
		for i, t := range targets {
			remapped[i] = canon[t]
		}

		key := structuralKey(labels, remapped, n.hasLevels, n.levelOff, n.levelLen)
		idx, ok := dedup[key]
		if !ok {
			idx = int32(len(out))
			out = append(out, CompressedNode{
				Labels:      labels,
				Targets:     remapped,
				HasLevels:   n.hasLevels,
				LevelOffset: n.levelOff,
				LevelLength: n.levelLen,
			})
			dedup[key] = idx
		}
		canon[top.orig] = idx

		stack = stack[:len(stack)-1]
	}

	return out, canon[0]
}

func structuralKey(labels []byte, targets []int32, hasLevels bool, off int32, length int8) string {
	var sb strings.Builder
	sb.Write(labels)
	sb.WriteByte(0)
	for _, t := range targets {
		sb.WriteString(strconv.Itoa(int(t)))
		sb.WriteByte(',')
	}
	if hasLevels {
		sb.WriteByte('L')
		sb.WriteString(strconv.Itoa(int(off)))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(int(length)))
	}
	return sb.String()
}

// PackedLevels returns the interned level table as the wire format's
// single-byte-per-entry encoding: distance*10 + level.
func (b *Builder) PackedLevels() []byte {
	out := make([]byte, len(b.levels.entries))
	for i, e := range b.levels.entries {
		out[i] = e.Dist*10 + e.Level
	}
	return out
}
