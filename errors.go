// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypher

import (
	"fmt"

	"github.com/gaissmai/hypher/internal/hypherr"
)

// LimitKind identifies which compile-time budget a pattern or the
// resulting trie exceeded.
type LimitKind = hypherr.LimitKind

const (
	LimitDistance    = hypherr.LimitDistance
	LimitVectorLen   = hypherr.LimitVectorLen
	LimitTableOffset = hypherr.LimitTableOffset
	LimitTransitions = hypherr.LimitTransitions
)

// MalformedInputError reports a syntax violation in a TeX pattern
// source, such as an unterminated \patterns{ block.
type MalformedInputError = hypherr.MalformedInputError

// LimitExceededError reports that a pattern, or the trie being built
// from it, exceeded one of the fixed budgets the wire encoding assumes.
type LimitExceededError = hypherr.LimitExceededError

// EncodeOverflowError reports that a node's children span more address
// range than the widest relative-pointer stride (3 bytes, signed) can
// express.
type EncodeOverflowError = hypherr.EncodeOverflowError

// tooLongError backs ErrTooLong, returned by HyphenateNoAlloc when a
// word is longer than the fixed inline workspace; Hyphenate and
// HyphenateBounded accept words of any length.
type tooLongError struct{ byteLen int }

func (e *tooLongError) Error() string {
	return fmt.Sprintf("hypher: word of %d bytes exceeds the no-alloc workspace", e.byteLen)
}

func (e *tooLongError) Is(target error) bool {
	_, ok := target.(*tooLongError)
	return ok
}

// ErrTooLong is the sentinel compared against with errors.Is.
var ErrTooLong error = &tooLongError{}
