// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package triebuild builds the suffix-compressed hyphenation-pattern
// trie from raw TeX patterns, ready for the wire encoder.
package triebuild

// node is one build-time trie node: a set of outgoing transitions keyed
// by letter byte (or the '.' boundary anchor), and an optional
// reference into the shared level table for patterns that terminate
// here.
type node struct {
	kids      children
	levelOff  int32
	levelLen  int8
	hasLevels bool
}

// Levels is the level table reference the builder attaches to a
// terminal node: (offset, length) into the shared packed level table.
type Levels struct {
	Offset int32
	Length int8
}
