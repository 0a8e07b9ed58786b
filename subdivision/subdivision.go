// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package subdivision implements the integer-barycentric lattice of a triangle
// subdivided n times. Vertices carry coordinates (X, Y, Z) with X+Y+Z = n and an
// implicit denominator of n, so all structural queries stay in exact integer
// arithmetic. Triangle and vertex indices follow closed forms, never searches.
package subdivision

import (
	"errors"
	"fmt"
)

// NumVertices returns the number of lattice vertices at subdivision level n.
func NumVertices(n int) int {
	return (n + 1) * (n + 2) / 2
}

// NumTriangles returns the number of lattice triangles at subdivision level n.
func NumTriangles(n int) int {
	return n * n
}

// NumTrianglesUp returns the number of upward-pointing triangles at subdivision
// level n. Upward triangles are stored before downward ones.
func NumTrianglesUp(n int) int {
	return n * (n + 1) / 2
}

// NumTrianglesDown returns the number of downward-pointing triangles at
// subdivision level n.
func NumTrianglesDown(n int) int {
	return n * (n - 1) / 2
}

// NumEdges returns the number of undirected edges between lattice vertices at
// subdivision level n. Every edge belongs to exactly one upward triangle.
func NumEdges(n int) int {
	return 3 * NumTrianglesUp(n)
}

// Vertex is a lattice vertex in integer barycentric coordinates. The
// denominator is implicit: the true position is (X, Y, Z) divided by the
// subdivision level of the owning triangle.
type Vertex struct {
	X, Y, Z int
}

// IsInterior reports whether v lies strictly inside the parent triangle.
func (v Vertex) IsInterior() bool {
	return v.X > 0 && v.Y > 0 && v.Z > 0
}

// Triangle is an index triple into a SubdividedTriangle's vertex list, wound
// counterclockwise.
type Triangle struct {
	U, V, W int
}

// vertexIndex is the closed-form index of (x, y) in the lexicographically
// ordered vertex list at level n. z is implied by x and y.
func vertexIndex(n int, v Vertex) int {
	return v.X*(2*(n+1)+1-v.X)/2 + v.Y
}

// SubdividedTriangle holds the lattice for one triangle subdivided n times.
// Vertices are in ascending lexicographic order on (X, Y); triangles are stored
// upward-first. Both lists are immutable after construction.
type SubdividedTriangle struct {
	n         int
	vertices  []Vertex
	triangles []Triangle
}

// New builds the lattice for subdivision level n. Subdividing into zero parts
// is undefined, so n < 1 is an error.
func New(n int) (*SubdividedTriangle, error) {
	if n < 1 {
		return nil, errors.New("subdivision: level must be at least 1")
	}

	vertices := make([]Vertex, 0, NumVertices(n))
	for x := 0; x <= n; x++ {
		for y := 0; y <= n-x; y++ {
			vertices = append(vertices, Vertex{X: x, Y: y, Z: n - x - y})
		}
	}

	triangles := make([]Triangle, 0, NumTriangles(n))
	for _, v := range vertices {
		if v.X > 0 {
			triangles = append(triangles, Triangle{
				U: vertexIndex(n, v),
				V: vertexIndex(n, Vertex{v.X - 1, v.Y + 1, v.Z}),
				W: vertexIndex(n, Vertex{v.X - 1, v.Y, v.Z + 1}),
			})
		}
	}
	for _, v := range vertices {
		if v.Y > 0 && v.Z > 0 {
			triangles = append(triangles, Triangle{
				U: vertexIndex(n, v),
				V: vertexIndex(n, Vertex{v.X + 1, v.Y - 1, v.Z}),
				W: vertexIndex(n, Vertex{v.X + 1, v.Y, v.Z - 1}),
			})
		}
	}

	return &SubdividedTriangle{
		n:         n,
		vertices:  vertices,
		triangles: triangles,
	}, nil
}

// N returns the subdivision level.
func (s *SubdividedTriangle) N() int {
	return s.n
}

// NumVertices returns the number of lattice vertices.
func (s *SubdividedTriangle) NumVertices() int {
	return len(s.vertices)
}

// NumTriangles returns the number of lattice triangles.
func (s *SubdividedTriangle) NumTriangles() int {
	return len(s.triangles)
}

// Vertex returns the lattice vertex with the given index.
func (s *SubdividedTriangle) Vertex(i int) Vertex {
	return s.vertices[i]
}

// Triangle returns the lattice triangle with the given index.
func (s *SubdividedTriangle) Triangle(i int) Triangle {
	return s.triangles[i]
}

// Centroid returns the coordinate sum of triangle i's corners. The implicit
// denominator of the result is 3n, which is what spherical placement needs for
// centroid weights.
func (s *SubdividedTriangle) Centroid(i int) Vertex {
	t := s.triangles[i]
	u, v, w := s.vertices[t.U], s.vertices[t.V], s.vertices[t.W]
	return Vertex{
		X: u.X + v.X + w.X,
		Y: u.Y + v.Y + w.Y,
		Z: u.Z + v.Z + w.Z,
	}
}

// VertexIndex returns the index of v in the vertex list. It returns an error if
// the coordinates do not name a vertex of this lattice.
func (s *SubdividedTriangle) VertexIndex(v Vertex) (int, error) {
	if v.X < 0 || v.Y < 0 || v.Z < 0 || v.X+v.Y+v.Z != s.n {
		return 0, fmt.Errorf("subdivision: (%d, %d, %d) is not a vertex at level %d", v.X, v.Y, v.Z, s.n)
	}
	return vertexIndex(s.n, v), nil
}

// InteriorIndex maps an interior vertex to its 0-based index within the
// interior-only subset, reusing the closed form shifted to level n-3. The
// caller must ensure v.IsInterior(); the result is undefined otherwise.
func (s *SubdividedTriangle) InteriorIndex(v Vertex) int {
	return vertexIndex(s.n-3, Vertex{v.X - 1, v.Y - 1, v.Z - 1})
}

// U returns the index of the corner triangle at the u vertex, (n, 0, 0) in
// barycentric coordinates.
func (s *SubdividedTriangle) U() int {
	return NumTrianglesUp(s.n) - 1
}

// V returns the index of the corner triangle at the v vertex, (0, n, 0).
func (s *SubdividedTriangle) V() int {
	return s.n - 1
}

// W returns the index of the corner triangle at the w vertex, (0, 0, n).
func (s *SubdividedTriangle) W() int {
	return 0
}

func (s *SubdividedTriangle) upwardRow(i int) (start, end int) {
	if i >= s.n {
		return 0, 0
	}
	k := s.n - i
	start = NumTrianglesUp(s.n) - k*(k+1)/2
	return start, start + k
}

func (s *SubdividedTriangle) downwardRow(i int) (start, end int) {
	if i >= s.n-1 {
		return 0, 0
	}
	k := s.n - 1 - i
	start = NumTrianglesUp(s.n) + NumTrianglesDown(s.n) - k*(k+1)/2
	return start, start + k
}

// Row returns the indices of triangles whose corners have X coordinates i and
// i+1, ordered by ascending centroid Y. Upward and downward triangles of the
// strip interleave, starting and ending with an upward one.
func (s *SubdividedTriangle) Row(i int) []int {
	us, ue := s.upwardRow(i)
	ds, de := s.downwardRow(i)
	out := make([]int, 0, (ue-us)+(de-ds))
	for us < ue || ds < de {
		if us < ue {
			out = append(out, us)
			us++
		}
		if ds < de {
			out = append(out, ds)
			ds++
		}
	}
	return out
}

// UV returns the 2n-1 triangles touching the uv boundary edge (Z = 0), sorted
// by descending centroid X. Corner-adjacent and edge-adjacent triangles
// alternate.
func (s *SubdividedTriangle) UV() []int {
	edge := make([]int, 2*s.n-1)
	for i := 0; i < s.n; i++ {
		edge[2*i] = NumTrianglesUp(s.n) - i*(i+1)/2 - 1
	}
	for i := 0; i < s.n-1; i++ {
		edge[2*i+1] = NumTriangles(s.n) - i*(i+1)/2 - 1
	}
	return edge
}

// VW returns the 2n-1 triangles touching the vw boundary edge (X = 0), sorted
// by descending centroid Y.
func (s *SubdividedTriangle) VW() []int {
	edge := make([]int, 2*s.n-1)
	for i := 0; i < s.n; i++ {
		edge[2*i] = s.n - 1 - i
	}
	for i := 0; i < s.n-1; i++ {
		edge[2*i+1] = NumTrianglesUp(s.n) + s.n - 2 - i
	}
	return edge
}

// WU returns the 2n-1 triangles touching the wu boundary edge (Y = 0), sorted
// by descending centroid Z.
func (s *SubdividedTriangle) WU() []int {
	edge := make([]int, 2*s.n-1)
	for i := 0; i < s.n; i++ {
		k := s.n - 1 - i
		edge[2*i] = NumTrianglesUp(s.n) - (k+1)*(k+2)/2
	}
	for i := 1; i < s.n; i++ {
		k := s.n - 1 - i
		edge[2*i-1] = NumTriangles(s.n) - (k+1)*(k+2)/2
	}
	return edge
}

// VertexAdjacency returns the undirected edges between lattice vertices.
// It exploits the row structure of the vertex list: each strip of rows x and
// x+1 contributes its horizontal, vertical, and diagonal edges, so every edge
// appears exactly once.
func (s *SubdividedTriangle) VertexAdjacency() [][2]int {
	edges := make([][2]int, 0, NumEdges(s.n))
	for x := 0; x < s.n; x++ {
		l := s.n + 1 - x
		start := NumVertices(s.n) - l*(l+1)/2
		end := start + l
		for i := start; i < end-1; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		for i := start; i < end-1; i++ {
			edges = append(edges, [2]int{i, i + l})
		}
		for i := start; i < end-1; i++ {
			edges = append(edges, [2]int{i + 1, i + l})
		}
	}
	return edges
}
