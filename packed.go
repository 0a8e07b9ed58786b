// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import "fmt"

// faceBits is the number of low bits reserved for the seed face id. The
// icosahedron has 20 faces, so 5 bits suffice.
const faceBits = 5

// maxFaces is the largest seed face id representable in a PackedIndex.
const maxFaces = 1 << faceBits

// PackedIndex encodes a (seed face id, lattice vertex index) pair as a single
// orderable, hashable key. No secondary lookup table is needed: both halves
// are recovered by shifting and masking.
type PackedIndex uint64

// NewPackedIndex packs a seed face id and a lattice vertex index. The face id
// must be in [0, 32); anything else is a programmer error and panics.
func NewPackedIndex(face, vertex int) PackedIndex {
	if face < 0 || face >= maxFaces {
		panic(fmt.Sprintf("hexglobe: face id %d out of range [0 %d)", face, maxFaces))
	}
	return PackedIndex(vertex)<<faceBits | PackedIndex(face)
}

// Face returns the seed face id half of the key.
func (p PackedIndex) Face() int {
	return int(p & (maxFaces - 1))
}

// Vertex returns the lattice vertex index half of the key.
func (p PackedIndex) Vertex() int {
	return int(p >> faceBits)
}
