// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package wire implements the compact binary encoding of a compressed
// hyphenation-pattern trie, and the zero-copy runtime decoder that
// walks it directly.
package wire

import (
	"encoding/binary"

	"github.com/gaissmai/hypher/internal/hypherr"
	"github.com/gaissmai/hypher/internal/triebuild"
)

// Blob is an immutable, encoded hyphenation trie: a 4-byte root
// address, the packed level table, then the nodes themselves, all as
// byte offsets into the same slice. It is read-only and safe for
// concurrent use by any number of [State] walks.
type Blob []byte

const (
	extendedCountMarker = 31
	maxInlineTrans      = 127
	thirdByteBias       = 1 << 23
)

// Encode lays out a compressed trie as a Blob. nodes must be indexed
// exactly as produced by [triebuild.Builder.Compress], with root the
// index of its root node.
func Encode(nodes []triebuild.CompressedNode, root int32, levelBytes []byte) (Blob, error) {
	start := 4 + len(levelBytes)

	// Pass 1: assume the worst-case 3-byte stride for every node so
	// every address has an upper bound before any stride is chosen.
	estimates := make([]int, len(nodes))
	addr := start
	for i, n := range nodes {
		estimates[i] = addr
		addr += nodeSize(n, 3)
	}

	// Pass 2: pick the narrowest stride each node's children allow and
	// compute final addresses from the (now safely over-estimated)
	// pass-1 numbers.
	addrs := make([]int, len(nodes))
	strides := make([]int, len(nodes))
	addr = start
	for i, n := range nodes {
		stride := 1
		for _, t := range n.Targets {
			delta := estimates[t] - estimates[i]
			w, ok := bytesNeeded(delta)
			if !ok {
				return nil, &hypherr.EncodeOverflowError{NodeIndex: i, Delta: delta}
			}
			if w > stride {
				stride = w
			}
		}
		addrs[i] = addr
		strides[i] = stride
		addr += nodeSize(n, stride)
	}

	data := make([]byte, 0, addr)

	var rootAddr [4]byte
	binary.BigEndian.PutUint32(rootAddr[:], uint32(addrs[root]))
	data = append(data, rootAddr[:]...)

	data = append(data, levelBytes...)

	for i, n := range nodes {
		count := len(n.Labels)
		if count > maxInlineTrans {
			return nil, &hypherr.LimitExceededError{Kind: hypherr.LimitTransitions}
		}

		countLow := count
		if countLow > extendedCountMarker {
			countLow = extendedCountMarker
		}

		var header byte
		if n.HasLevels {
			header |= 1 << 7
		}
		header |= byte(strides[i]) << 5
		header |= byte(countLow)
		data = append(data, header)

		if count >= extendedCountMarker {
			data = append(data, byte(count))
		}

		if n.HasLevels {
			offset := 4 + int(n.LevelOffset)
			if offset >= 4096 {
				return nil, &hypherr.LimitExceededError{Kind: hypherr.LimitTableOffset}
			}
			if n.LevelLength >= 16 {
				return nil, &hypherr.LimitExceededError{Kind: hypherr.LimitVectorLen}
			}
			offsetHi := byte(offset >> 4)
			offsetLo := byte((offset & 0xf) << 4)
			data = append(data, offsetHi, offsetLo|byte(n.LevelLength))
		}

		data = append(data, n.Labels...)

		for _, t := range n.Targets {
			delta := addrs[t] - addrs[i]
			data = appendDelta(data, delta, strides[i])
		}
	}

	return Blob(data), nil
}

// nodeSize is the on-wire byte size of n if its target deltas are
// encoded with the given stride.
func nodeSize(n triebuild.CompressedNode, stride int) int {
	size := 1
	if len(n.Labels) >= extendedCountMarker {
		size++
	}
	if n.HasLevels {
		size += 2
	}
	size += (1 + stride) * len(n.Labels)
	return size
}

// bytesNeeded returns how many bytes a signed relative address delta
// needs: 1 for an i8 range, 2 for i16, 3 for the 24-bit signed range
// used by the wire format's widest stride.
func bytesNeeded(delta int) (int, bool) {
	switch {
	case delta >= -1<<7 && delta < 1<<7:
		return 1, true
	case delta >= -1<<15 && delta < 1<<15:
		return 2, true
	case delta >= -thirdByteBias && delta < thirdByteBias:
		return 3, true
	default:
		return 0, false
	}
}

func appendDelta(data []byte, delta, stride int) []byte {
	switch stride {
	case 1:
		return append(data, byte(int8(delta)))
	case 2:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(int16(delta)))
		return append(data, buf[:]...)
	default:
		unsigned := uint32(delta + thirdByteBias)
		return append(data, byte(unsigned>>16), byte(unsigned>>8), byte(unsigned))
	}
}
