// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triebuild

import (
	"github.com/gaissmai/hypher/internal/hypherr"
)

const (
	maxDistance   = 24
	maxVectorLen  = 15
	maxTransition = 127
)

// Builder accumulates TeX hyphenation patterns into a trie with a
// shared, suffix-interned level table, ready for [Builder.Compress]
// and the wire encoder.
type Builder struct {
	arena  []node
	levels levelTable
}

// NewBuilder returns a Builder holding just a root node.
func NewBuilder() *Builder {
	return &Builder{arena: []node{{}}}
}

// Insert adds one TeX pattern, such as ".a1bc2d", to the trie. Digits
// assign a level to the gap before the following letter; absent digits
// mean level 0. Re-inserting an identical pattern is idempotent.
func (b *Builder) Insert(pattern []byte) error {
	state := int32(0)
	dist := uint8(0)
	var lv []LevelEntry

	for _, ch := range pattern {
		if ch >= '0' && ch <= '9' {
			if len(lv) >= maxVectorLen {
				return &hypherr.LimitExceededError{Kind: hypherr.LimitVectorLen, Pattern: string(pattern)}
			}
			lv = append(lv, LevelEntry{Dist: dist, Level: ch - '0'})
			dist = 0
			continue
		}

		n := &b.arena[state]
		if n.kids.len() >= maxTransition {
			if _, ok := n.kids.get(ch); !ok {
				return &hypherr.LimitExceededError{Kind: hypherr.LimitTransitions, Pattern: string(pattern)}
			}
		}
		state = getOrCreate(&b.arena, state, ch)

		dist++
		if dist > maxDistance {
			return &hypherr.LimitExceededError{Kind: hypherr.LimitDistance, Pattern: string(pattern)}
		}
	}

	offset, length, err := b.levels.intern(lv)
	if err != nil {
		if le, ok := err.(*hypherr.LimitExceededError); ok {
			le.Pattern = string(pattern)
		}
		return err
	}

	target := &b.arena[state]
	target.hasLevels = true
	target.levelOff = offset
	target.levelLen = length
	return nil
}

