// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package texpat scans TeX hyphenation pattern sources for the raw
// pattern strings inside a \patterns{ ... } block.
package texpat

import "fmt"

// scanner is a byte cursor over a pattern source, mirroring the small
// eat/eatIf/eatWhile primitives a hand-written recursive-descent scanner
// reaches for instead of a regular expression.
type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) eat() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true
}

func (s *scanner) eatIf(pat string) bool {
	if s.pos+len(pat) > len(s.buf) {
		return false
	}
	if string(s.buf[s.pos:s.pos+len(pat)]) != pat {
		return false
	}
	s.pos += len(pat)
	return true
}

func (s *scanner) eatWhile(f func(byte) bool) []byte {
	start := s.pos
	for s.pos < len(s.buf) && f(s.buf[s.pos]) {
		s.pos++
	}
	return s.buf[start:s.pos]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isPatternByte(b byte) bool {
	return b != '}' && b != '%' && !isSpace(b)
}

// malformedError is returned for an unterminated \patterns{ block; the
// caller constructs the exported error type from it, keeping this
// package free of a dependency on the root package's error types.
type malformedError struct{ reason string }

func (e *malformedError) Error() string { return e.reason }

// Parse scans src for \patterns{ ... } blocks, outside of which only
// line comments (introduced by %) are recognized. It calls yield once
// per pattern, in source order. Parse stops and returns nil the moment
// yield returns false, and returns a non-nil error if a \patterns{ block
// is never closed.
func Parse(src []byte, yield func(pattern []byte) bool) error {
	s := &scanner{buf: src}

	for {
		c, ok := s.eat()
		if !ok {
			return nil
		}

		switch c {
		case '%':
			s.eatWhile(func(b byte) bool { return b != '\n' })

		case '\\':
			if !s.eatIf("patterns{") {
				continue
			}
			blockStart := s.pos - len(`\patterns{`)

			for {
				pat := s.eatWhile(isPatternByte)
				if len(pat) > 0 {
					if !yield(pat) {
						return nil
					}
				}

				b, ok := s.eat()
				if !ok {
					return &malformedError{reason: fmt.Sprintf(
						"unterminated \\patterns{ block starting near byte %d", blockStart)}
				}

				switch b {
				case '}':
					goto blockDone
				case '%':
					s.eatWhile(func(b byte) bool { return b != '\n' })
				default:
					s.eatWhile(isSpace)
				}
			}
		blockDone:
		}
	}
}

// Reason returns the explanatory text of a malformed-input error
// produced by Parse, for callers that only see it as a plain error.
func Reason(err error) (string, bool) {
	var m *malformedError
	if e, ok := err.(*malformedError); ok {
		m = e
		return m.reason, true
	}
	return "", false
}
