// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hexglobe computes the combinatorial and geometric structure of a
// Goldberg polyhedron: an icosahedron whose 20 triangular faces are each
// subdivided n times, producing a sphere tiling of 12 pentagons and many
// hexagons. The package emits renderable mesh buffers and a face-adjacency
// graph for spherical tile-based applications.
package hexglobe

import (
	"fmt"

	"github.com/MorganBennetDev/hexglobe/subdivision"
)

// NumPentagons is the number of pentagonal tiles in every Goldberg polyhedron
// produced from an icosahedron, one per seed vertex.
const NumPentagons = seedVertices

// NumHexagons returns the number of hexagonal tiles at subdivision level n.
func NumHexagons(n int) int {
	return seedEdges*facesPerEdge(n) + seedFaces*facesPerFace(n)
}

// NumFaces returns the total number of tiles at subdivision level n.
func NumFaces(n int) int {
	return NumPentagons + NumHexagons(n)
}

func facesPerEdge(n int) int {
	return n - 1
}

func facesPerFace(n int) int {
	if n < 2 {
		return 0
	}
	return (n - 1) * (n - 2) / 2
}

// Globe is a Goldberg polyhedron at a fixed subdivision level. The face list
// is computed once at construction and is immutable; all vertex references are
// PackedIndex keys resolved on demand by Centroids or Positions.
//
// Faces are stored as flat arrays: FaceVertices holds every face's packed
// vertex keys back to back and FaceOffsets delimits them, pentagons first.
// Each face's vertices are wound counterclockwise looking out of the sphere.
// This fixed order is a compatibility contract so parallel position, normal,
// and UV buffers stay index-aligned.
type Globe struct {
	n           int
	seed        *Seed
	subdivision *subdivision.SubdividedTriangle

	FaceVertices []PackedIndex
	FaceOffsets  []int
}

// New constructs the polyhedron at subdivision level n. This is cheap: the
// expensive spherical placement is deferred to Centroids. n < 1 is an error.
func New(n int) (*Globe, error) {
	tri, err := subdivision.New(n)
	if err != nil {
		return nil, err
	}

	g := &Globe{
		n:            n,
		seed:         NewSeed(),
		subdivision:  tri,
		FaceVertices: make([]PackedIndex, 0, 5*NumPentagons+6*NumHexagons(n)),
		FaceOffsets:  make([]int, 1, NumFaces(n)+1),
	}
	g.appendVertexFaces()
	g.appendEdgeFaces()
	g.appendFaceFaces()

	return g, nil
}

// N returns the subdivision level.
func (g *Globe) N() int {
	return g.n
}

// Seed returns the underlying icosahedron topology.
func (g *Globe) Seed() *Seed {
	return g.seed
}

// Subdivision returns the lattice shared by all 20 seed faces.
func (g *Globe) Subdivision() *subdivision.SubdividedTriangle {
	return g.subdivision
}

func (g *Globe) appendFace(vs ...PackedIndex) {
	g.FaceVertices = append(g.FaceVertices, vs...)
	g.FaceOffsets = append(g.FaceOffsets, len(g.FaceVertices))
}

/*
The seed face indices treated as the top, upper middle, lower middle, and
bottom bands of the icosahedron, and the edge runs each band pairing uses:

	t:   0..5
	um:  5..10
	lm: 10..15
	b:  15..20
	t-t:   wu-vu
	t-um:  vw-wv
	um-lm: uv-vu
	lm-um: wu-uw
	lm-b:  vw-wv
	b-b:   uv-uw
*/

// appendVertexFaces emits the 12 pentagons, one per seed vertex. The two
// polar pentagons collect the u corner of the five faces around each pole;
// the ten ring pentagons collect corners from three adjacent bands via fixed
// modular arithmetic, preserving winding around the vertex.
func (g *Globe) appendVertexFaces() {
	u := g.subdivision.U()
	v := g.subdivision.V()
	w := g.subdivision.W()

	g.appendFace(
		NewPackedIndex(4, u),
		NewPackedIndex(3, u),
		NewPackedIndex(2, u),
		NewPackedIndex(1, u),
		NewPackedIndex(0, u),
	)
	g.appendFace(
		NewPackedIndex(15, u),
		NewPackedIndex(16, u),
		NewPackedIndex(17, u),
		NewPackedIndex(18, u),
		NewPackedIndex(19, u),
	)

	for f := 5; f < 10; f++ {
		g.appendFace(
			NewPackedIndex(f-5, w),
			NewPackedIndex((f+1)%5, v),
			NewPackedIndex(5+(f+1)%5, w),
			NewPackedIndex(f+5, u),
			NewPackedIndex(f, v),
		)
	}
	for f := 10; f < 15; f++ {
		g.appendFace(
			NewPackedIndex(f+5, w),
			NewPackedIndex(15+(f+4)%5, v),
			NewPackedIndex(10+(f+4)%5, w),
			NewPackedIndex(f-5, u),
			NewPackedIndex(f, v),
		)
	}
}

// appendEdgeFaces emits the 30(n-1) hexagons straddling icosahedron edges.
// For each edge, windows of 3 triangles from one incident face's edge run are
// combined with the mirrored, reversed window from the other incident face,
// preserving winding across the seam. The six band pairings below fix the
// global edge ordinals that faceIndexOf relies on.
func (g *Globe) appendEdgeFaces() {
	uv := g.subdivision.UV()
	vw := g.subdivision.VW()
	wu := g.subdivision.WU()

	groups := []struct {
		a, b  []int
		pairs [][2]int
	}{
		{wu, reversed(uv), bandPairs(0, func(f int) int { return (f + 1) % 5 })},
		{vw, reversed(vw), bandPairs(0, func(f int) int { return f + 5 })},
		{uv, reversed(uv), bandPairs(5, func(f int) int { return f + 5 })},
		{wu, reversed(wu), bandPairs(10, func(f int) int { return 5 + (f+1)%5 })},
		{vw, reversed(vw), bandPairs(10, func(f int) int { return f + 5 })},
		{uv, reversed(wu), bandPairs(15, func(f int) int { return 15 + (f+1)%5 })},
	}

	for _, group := range groups {
		for _, pair := range group.pairs {
			fa, fb := pair[0], pair[1]
			for j := 0; j+2 < len(group.a); j += 2 {
				g.appendFace(
					NewPackedIndex(fa, group.a[j]),
					NewPackedIndex(fa, group.a[j+1]),
					NewPackedIndex(fa, group.a[j+2]),
					NewPackedIndex(fb, group.b[j+2]),
					NewPackedIndex(fb, group.b[j+1]),
					NewPackedIndex(fb, group.b[j]),
				)
			}
		}
	}
}

// appendFaceFaces emits the 20*(n-1)(n-2)/2 hexagons interior to seed faces,
// one per interior lattice vertex, by combining windows of two adjacent
// triangle rows. Faces subdivided from the same seed face stay near each
// other in the output.
func (g *Globe) appendFaceFaces() {
	rows := make([][]int, g.n)
	for i := range rows {
		rows[i] = g.subdivision.Row(i)
	}

	type window struct {
		a0, a1, a2 int
		b0, b1, b2 int
	}
	var windows []window
	for i := 0; i+1 < g.n; i++ {
		r1 := rows[i][1 : len(rows[i])-1]
		r2 := rows[i+1]
		for j := 0; j+2 < len(r1); j += 2 {
			windows = append(windows, window{
				a0: r1[j], a1: r1[j+1], a2: r1[j+2],
				b0: r2[j], b1: r2[j+1], b2: r2[j+2],
			})
		}
	}

	for f := 0; f < seedFaces; f++ {
		for _, wd := range windows {
			g.appendFace(
				NewPackedIndex(f, wd.a0),
				NewPackedIndex(f, wd.a1),
				NewPackedIndex(f, wd.a2),
				NewPackedIndex(f, wd.b2),
				NewPackedIndex(f, wd.b1),
				NewPackedIndex(f, wd.b0),
			)
		}
	}
}

func bandPairs(band int, other func(int) int) [][2]int {
	pairs := make([][2]int, 0, 5)
	for f := band; f < band+5; f++ {
		pairs = append(pairs, [2]int{f, other(f)})
	}
	return pairs
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// NumFaces returns the number of tiles in this polyhedron.
func (g *Globe) NumFaces() int {
	return len(g.FaceOffsets) - 1
}

// NumHexagons returns the number of hexagonal tiles in this polyhedron.
func (g *Globe) NumHexagons() int {
	return g.NumFaces() - NumPentagons
}

// Face returns a view of the tile with the given index. It returns an error
// if the index is out of range.
func (g *Globe) Face(i int) (Face, error) {
	if i < 0 || i >= g.NumFaces() {
		return Face{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, g.NumFaces())
	}
	return Face{idx: i, g: g}, nil
}
