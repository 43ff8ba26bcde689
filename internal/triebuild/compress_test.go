// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package triebuild

import "testing"

func TestCompressMergesIdenticalSuffixes(t *testing.T) {
	b := NewBuilder()
	// Both patterns end in a bare "x1" suffix with no further
	// transitions and the same level vector; compression should fold
	// the two trailing "x" nodes into one.
	for _, p := range []string{"a1x1", "b1x1"} {
		if err := b.Insert([]byte(p)); err != nil {
			t.Fatalf("Insert(%q): %v", p, err)
		}
	}

	before := len(b.arena)
	nodes, root := b.Compress()

	if len(nodes) >= before {
		t.Errorf("compressed node count %d did not shrink from %d", len(nodes), before)
	}

	rootNode := nodes[root]
	if len(rootNode.Labels) != 2 {
		t.Fatalf("root has %d transitions, want 2 (a, b)", len(rootNode.Labels))
	}

	// both a's and b's target should land on the very same compressed
	// node, since their subtries are structurally identical.
	if rootNode.Targets[0] != rootNode.Targets[1] {
		t.Errorf("a-target %d != b-target %d, expected a shared node", rootNode.Targets[0], rootNode.Targets[1])
	}
}

func TestCompressPreservesDistinctSuffixes(t *testing.T) {
	b := NewBuilder()
	for _, p := range []string{"a1x1", "b2y2"} {
		if err := b.Insert([]byte(p)); err != nil {
			t.Fatalf("Insert(%q): %v", p, err)
		}
	}

	nodes, root := b.Compress()
	rootNode := nodes[root]
	if rootNode.Targets[0] == rootNode.Targets[1] {
		t.Error("structurally distinct subtries were incorrectly merged")
	}
}

func TestPackedLevelsEncoding(t *testing.T) {
	b := NewBuilder()
	if err := b.Insert([]byte("a2b")); err != nil {
		t.Fatal(err)
	}

	packed := b.PackedLevels()
	if len(packed) != 1 {
		t.Fatalf("packed levels = %v, want 1 entry", packed)
	}
	// dist=1 (one letter 'a' consumed before the digit), level=2
	if want := byte(1*10 + 2); packed[0] != want {
		t.Errorf("packed[0] = %d, want %d", packed[0], want)
	}
}
