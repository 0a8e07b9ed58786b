// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import (
	"fmt"

	"github.com/MorganBennetDev/hexglobe/slerp"
	"github.com/MorganBennetDev/hexglobe/subdivision"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Centroids resolves every packed vertex to a sphere position: tile vertices
// are the spherical centroids of the lattice triangles. The result is indexed
// [seed face][triangle index]. A radius of 0 means 1.
//
// This is the most expensive operation. Spherical averages are computed only
// for the 5 base faces; the other 15 are obtained by applying the stored seed
// rotations, which commute with averaging, cutting the cost to a quarter.
func (g *Globe) Centroids(radius float64) [][]r3.Vector {
	if radius == 0 {
		radius = 1
	}

	nt := subdivision.NumTriangles(g.n)
	out := make([][]r3.Vector, seedFaces)
	for f := range out {
		out[f] = make([]r3.Vector, nt)
	}

	d := float64(3 * g.n)
	weights := make([]float64, 3)
	for _, bf := range g.seed.BaseFaces() {
		points := []s2.Point{bf.U, bf.V, bf.W}
		for i := 0; i < nt; i++ {
			c := g.subdivision.Centroid(i)
			weights[0] = float64(c.X) / d
			weights[1] = float64(c.Y) / d
			weights[2] = float64(c.Z) / d
			out[bf.Face][i] = slerp.SlerpN(weights, points).Mul(radius)
		}
	}

	for _, sym := range g.seed.Symmetries() {
		base := out[sym.Base]
		dst := out[sym.Face]
		for i, v := range base {
			dst[i] = sym.Rotation.Apply(v)
		}
	}

	return out
}

// Positions resolves every PackedIndex to its sphere position, scaled by
// radius (0 means 1). Nothing is cached; callers wanting to reuse positions
// should hold on to the map, or use Centroids for the flat form.
func (g *Globe) Positions(radius float64) map[PackedIndex]r3.Vector {
	centroids := g.Centroids(radius)
	out := make(map[PackedIndex]r3.Vector, seedFaces*len(centroids[0]))
	for f, vs := range centroids {
		for i, v := range vs {
			out[NewPackedIndex(f, i)] = v
		}
	}
	return out
}

// MeshVertices builds the flat vertex buffer: every face's corners in face
// order, pentagons first. centroids must be the output of Centroids.
func (g *Globe) MeshVertices(centroids [][]r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(g.FaceVertices))
	for i, p := range g.FaceVertices {
		out[i] = centroids[p.Face()][p.Vertex()]
	}
	return out
}

// MeshTriangles builds the flat index buffer, fan-triangulated per face from
// its first vertex. This is valid because each face is convex and near planar
// by construction. Indices are deterministic, so this can be called without
// computing positions.
func (g *Globe) MeshTriangles() []uint32 {
	numTriangles := 0
	for i := 0; i < g.NumFaces(); i++ {
		numTriangles += g.FaceOffsets[i+1] - g.FaceOffsets[i] - 2
	}

	out := make([]uint32, 0, 3*numTriangles)
	for i := 0; i < g.NumFaces(); i++ {
		base := g.FaceOffsets[i]
		end := g.FaceOffsets[i+1]
		for j := base + 2; j < end; j++ {
			out = append(out, uint32(base), uint32(j-1), uint32(j))
		}
	}
	return out
}

// MeshNormals computes one flat-shaded normal per face, broadcast to all of
// the face's vertices. vertices must be the output of MeshVertices; passing a
// buffer of the wrong length is a programmer error and panics.
func (g *Globe) MeshNormals(vertices []r3.Vector) []r3.Vector {
	if len(vertices) != len(g.FaceVertices) {
		panic(fmt.Sprintf("hexglobe: MeshNormals expects %d vertices, got %d", len(g.FaceVertices), len(vertices)))
	}

	normals := make([]r3.Vector, len(vertices))
	for i := 0; i < g.NumFaces(); i++ {
		start := g.FaceOffsets[i]
		end := g.FaceOffsets[i+1]

		u := vertices[start]
		v := vertices[start+2]
		w := vertices[end-2]
		normal := v.Sub(u).Cross(w.Sub(u)).Normalize()

		for j := start; j < end; j++ {
			normals[j] = normal
		}
	}
	return normals
}
