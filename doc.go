// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package hypher finds syllable break opportunities in words using the
// Liang/Knuth pattern method from TeX.
//
// A set of hyphenation patterns is compiled once, at build time, into a
// compact trie encoded as a read-only byte slice ([Blob]). At run time,
// [Hyphenate] walks that trie directly, byte by byte, with no decoding
// pass. Each call on a non-empty word still allocates its working
// buffers and its list of break offsets on the heap.
//
// Building a blob from a pattern source and hyphenating a word are
// independent concerns: a [Blob] is immutable and may be shared across
// goroutines without synchronization once built.
package hypher
