// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hypher

import (
	"io"

	"github.com/gaissmai/hypher/internal/texpat"
	"github.com/gaissmai/hypher/internal/triebuild"
	"github.com/gaissmai/hypher/internal/wire"
)

// Blob is an immutable, compiled set of hyphenation patterns, produced
// once by [Build] and safe to share across any number of goroutines
// calling [Hyphenate] or [HyphenateBounded].
type Blob = wire.Blob

// Build compiles one language's TeX hyphenation pattern source into a
// Blob. It reads src fully before returning.
func Build(src io.Reader) (Blob, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return BuildBytes(data)
}

// BuildBytes is like [Build] but takes the pattern source already in
// memory.
func BuildBytes(src []byte) (Blob, error) {
	b := triebuild.NewBuilder()

	var perr error
	err := texpat.Parse(src, func(pattern []byte) bool {
		if ierr := b.Insert(pattern); ierr != nil {
			perr = ierr
			return false
		}
		return true
	})
	if err != nil {
		if reason, ok := texpat.Reason(err); ok {
			return nil, &MalformedInputError{Reason: reason}
		}
		return nil, err
	}
	if perr != nil {
		return nil, perr
	}

	nodes, root := b.Compress()
	return wire.Encode(nodes, root, b.PackedLevels())
}
