// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wire

import "encoding/binary"

// State is a read-only view over one node of a [Blob], borrowed from
// it rather than copied out of it. Decoding a node never allocates and
// never walks bytes it doesn't need.
type State struct {
	blob    Blob
	addr    int
	stride  int
	levels  []byte
	trans   []byte
	targets []byte
}

// Root returns the state at blob's root node.
func Root(blob Blob) State {
	addr := int(binary.BigEndian.Uint32(blob[:4]))
	return At(blob, addr)
}

// At decodes the node header at addr without touching any byte the
// header doesn't account for.
func At(blob Blob, addr int) State {
	b := blob[addr:]
	pos := 0

	hasLevels := b[pos]>>7 != 0
	stride := int((b[pos] >> 5) & 3)
	count := int(b[pos] & 31)
	pos++

	if count == extendedCountMarker {
		count = int(b[pos])
		pos++
	}

	var levels []byte
	if hasLevels {
		offsetHi := int(b[pos])
		offsetLo := int(b[pos+1]) >> 4
		offset := offsetHi<<4 | offsetLo
		length := int(b[pos+1] & 15)
		levels = blob[offset : offset+length]
		pos += 2
	}

	trans := b[pos : pos+count]
	pos += count
	targets := b[pos : pos+stride*count]

	return State{
		blob:    blob,
		addr:    addr,
		stride:  stride,
		levels:  levels,
		trans:   trans,
		targets: targets,
	}
}

// Transition follows the edge labelled b from s, reporting ok == false
// if no such edge exists.
func (s State) Transition(b byte) (State, bool) {
	for i, label := range s.trans {
		if label != b {
			continue
		}
		off := s.stride * i
		delta := decodeDelta(s.targets[off:off+s.stride], s.stride)
		return At(s.blob, s.addr+delta), true
	}
	return State{}, false
}

// Levels calls yield with each (cumulativeOffset, level) pair stored at
// s, in increasing offset order, stopping early if yield returns false.
func (s State) Levels(yield func(offset int, level uint8) bool) {
	cum := 0
	for _, packed := range s.levels {
		cum += int(packed / 10)
		if !yield(cum, packed%10) {
			return
		}
	}
}

func decodeDelta(b []byte, stride int) int {
	switch stride {
	case 1:
		return int(int8(b[0]))
	case 2:
		return int(int16(binary.BigEndian.Uint16(b)))
	default:
		unsigned := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
		return int(unsigned) - thirdByteBias
	}
}
