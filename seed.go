// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	seedVertices = 12
	seedEdges    = 30
	seedFaces    = 20
	// numBaseFaces is the number of seed faces whose sphere positions are
	// computed directly; the rest are rotated copies.
	numBaseFaces = 5
)

// icosahedronC0 is (1 + sqrt 5) / 4, half the golden ratio.
const icosahedronC0 = 0.8090169943749475

// Rotation is a 3x3 rotation matrix in row-major order.
type Rotation [3][3]float64

// Apply rotates v.
func (m Rotation) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Rotation) mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// inverse computes the matrix inverse via the adjugate. The corner frames it
// is used on are never singular: a face plane of the icosahedron does not pass
// through the origin.
func (m Rotation) inverse() Rotation {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	k := 1 / det
	return Rotation{
		{
			k * (m[1][1]*m[2][2] - m[1][2]*m[2][1]),
			k * (m[0][2]*m[2][1] - m[0][1]*m[2][2]),
			k * (m[0][1]*m[1][2] - m[0][2]*m[1][1]),
		},
		{
			k * (m[1][2]*m[2][0] - m[1][0]*m[2][2]),
			k * (m[0][0]*m[2][2] - m[0][2]*m[2][0]),
			k * (m[0][2]*m[1][0] - m[0][0]*m[1][2]),
		},
		{
			k * (m[1][0]*m[2][1] - m[1][1]*m[2][0]),
			k * (m[0][1]*m[2][0] - m[0][0]*m[2][1]),
			k * (m[0][0]*m[1][1] - m[0][1]*m[1][0]),
		},
	}
}

// columnFrame builds the matrix whose columns are a, b, c.
func columnFrame(a, b, c r3.Vector) Rotation {
	return Rotation{
		{a.X, b.X, c.X},
		{a.Y, b.Y, c.Y},
		{a.Z, b.Z, c.Z},
	}
}

// BaseFace is a seed face with explicit unit-sphere corners, wound
// counterclockwise looking out of the sphere.
type BaseFace struct {
	Face    int
	U, V, W s2.Point
}

// Symmetry declares a derived seed face as a rigid rotation of a base face.
// The rotation maps the base face's corners onto the derived face's corners
// slot for slot, so transported lattice data keeps its barycentric meaning.
type Symmetry struct {
	Face, Base int
	Rotation   Rotation
}

// Seed is the fixed icosahedron topology: 12 unit vertices and 20 outward
// wound faces. Corner points live in a flat arena addressed by small integer
// ids; faces store ids, not points.
type Seed struct {
	vertices []s2.Point
	faces    [][3]int
}

// NewSeed returns the regular icosahedron.
// Source for Cartesian coordinates and faces: github.com/virtualritz/polyhedron-ops
func NewSeed() *Seed {
	raw := []r3.Vector{
		{X: 0.5, Y: 0, Z: icosahedronC0},                // 0
		{X: 0.5, Y: 0, Z: -icosahedronC0},               // 1
		{X: -0.5, Y: 0, Z: icosahedronC0},               // 2
		{X: -0.5, Y: 0, Z: -icosahedronC0},              // 3
		{X: icosahedronC0, Y: 0.5, Z: 0},                // 4
		{X: icosahedronC0, Y: -0.5, Z: 0},               // 5
		{X: -icosahedronC0, Y: 0.5, Z: 0},               // 6
		{X: -icosahedronC0, Y: -0.5, Z: 0},              // 7
		{X: 0, Y: icosahedronC0, Z: 0.5},                // 8
		{X: 0, Y: icosahedronC0, Z: -0.5},               // 9
		{X: 0, Y: -icosahedronC0, Z: 0.5},               // 10
		{X: 0, Y: -icosahedronC0, Z: -0.5},              // 11
	}
	vertices := make([]s2.Point, len(raw))
	for i, v := range raw {
		vertices[i] = s2.Point{Vector: v.Normalize()}
	}

	faces := [][3]int{
		// Top
		{0, 5, 10},
		{0, 10, 2},
		{0, 2, 8},
		{0, 8, 4},
		{0, 4, 5},
		// Upper middle
		{11, 10, 5},
		{7, 2, 10},
		{6, 8, 2},
		{9, 4, 8},
		{1, 5, 4},
		// Lower middle
		{10, 11, 7},
		{2, 7, 6},
		{8, 6, 9},
		{4, 9, 1},
		{5, 1, 11},
		// Bottom
		{3, 7, 11},
		{3, 6, 7},
		{3, 9, 6},
		{3, 1, 9},
		{3, 11, 1},
	}

	return &Seed{
		vertices: vertices,
		faces:    faces,
	}
}

// Vertex returns the unit-sphere position of seed vertex i.
func (s *Seed) Vertex(i int) s2.Point {
	return s.vertices[i]
}

// NumFaces returns the number of seed faces.
func (s *Seed) NumFaces() int {
	return len(s.faces)
}

// FaceVertexIndices returns the vertex ids of seed face f.
func (s *Seed) FaceVertexIndices(f int) [3]int {
	return s.faces[f]
}

// FaceVertices returns the corner points of seed face f in winding order.
func (s *Seed) FaceVertices(f int) (u, v, w s2.Point) {
	t := s.faces[f]
	return s.vertices[t[0]], s.vertices[t[1]], s.vertices[t[2]]
}

// BaseFaces returns the 5 representative faces whose sphere positions are
// computed directly.
func (s *Seed) BaseFaces() []BaseFace {
	out := make([]BaseFace, 0, numBaseFaces)
	for f := 0; f < numBaseFaces; f++ {
		u, v, w := s.FaceVertices(f)
		out = append(out, BaseFace{Face: f, U: u, V: v, W: w})
	}
	return out
}

// Symmetries returns the 15 derived faces as rotations of base faces. Each
// rotation is recovered from the two corner frames: it is the unique rigid
// rotation of the icosahedron carrying the base corners onto the derived
// corners slot for slot. Rotation commutes with spherical averaging, so
// transported positions are exact, not approximate.
func (s *Seed) Symmetries() []Symmetry {
	out := make([]Symmetry, 0, seedFaces-numBaseFaces)
	for f := numBaseFaces; f < seedFaces; f++ {
		base := f % numBaseFaces
		bu, bv, bw := s.FaceVertices(base)
		fu, fv, fw := s.FaceVertices(f)
		r := columnFrame(fu.Vector, fv.Vector, fw.Vector).
			mul(columnFrame(bu.Vector, bv.Vector, bw.Vector).inverse())
		out = append(out, Symmetry{Face: f, Base: base, Rotation: r})
	}
	return out
}
