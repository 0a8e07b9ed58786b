// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import (
	"fmt"
	"sort"
	"testing"

	"github.com/MorganBennetDev/hexglobe/slerp"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

// Every polyhedron edge is shared by exactly two tiles, and both tiles spell
// the shared edge with the same pair of packed corner keys. Walking every
// tile's boundary therefore recovers the adjacency graph with no geometry.
func TestAdjacency_MatchesBoundaryOracle(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			g := mustNew(t, n)

			borders := make(map[[2]PackedIndex][]int)
			for i := 0; i < g.NumFaces(); i++ {
				f, err := g.Face(i)
				if err != nil {
					t.Fatalf("g.Face(%v) error = %v, want nil", i, err)
				}
				vs := f.VertexIndices()
				for j := range vs {
					a, b := vs[j], vs[(j+1)%len(vs)]
					if a > b {
						a, b = b, a
					}
					borders[[2]PackedIndex{a, b}] = append(borders[[2]PackedIndex{a, b}], i)
				}
			}

			oracle := make(map[[2]int]bool)
			for e, tiles := range borders {
				if len(tiles) != 2 {
					t.Fatalf("boundary edge %v borders %v tiles, want 2", e, len(tiles))
				}
				a, b := tiles[0], tiles[1]
				if a > b {
					a, b = b, a
				}
				oracle[[2]int{a, b}] = true
			}

			got := g.Adjacency()
			if len(got) != 30*n*n {
				t.Errorf("len(g.Adjacency()) = %v, want %v", len(got), 30*n*n)
			}

			gotSet := make(map[[2]int]bool)
			for _, e := range got {
				if e[0] > e[1] {
					e[0], e[1] = e[1], e[0]
				}
				if gotSet[e] {
					t.Errorf("duplicate adjacency pair %v", e)
				}
				gotSet[e] = true
			}

			if diff := cmp.Diff(sortedPairs(oracle), sortedPairs(gotSet)); diff != "" {
				t.Errorf("g.Adjacency() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Lattice vertices on seed corners and edges are replicated across up to five
// seed faces. Resolving each replica to its sphere position and clustering
// checks that all replicas of a vertex agree on the tile index, that distinct
// vertices get distinct tiles, and that every tile index is hit.
func TestFaceIndexOf_SeamConsistency(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			g := mustNew(t, n)
			s := g.Subdivision()
			d := float64(n)

			var centers []r3.Vector
			tileOf := make(map[int]int)
			seen := make([]bool, g.NumFaces())

			for f := 0; f < seedFaces; f++ {
				u, v, w := g.Seed().FaceVertices(f)
				for vi := 0; vi < s.NumVertices(); vi++ {
					vert := s.Vertex(vi)
					pos := slerp.Slerp3(
						float64(vert.X)/d, u,
						float64(vert.Y)/d, v,
						float64(vert.Z)/d, w,
					).Vector

					tile := g.faceIndexOf(f, vi)
					if tile < 0 || tile >= g.NumFaces() {
						t.Fatalf("faceIndexOf(%v, %v) = %v out of range [0 %v)", f, vi, tile, g.NumFaces())
					}

					corner := (vert.X == 0 && vert.Y == 0) ||
						(vert.Y == 0 && vert.Z == 0) ||
						(vert.X == 0 && vert.Z == 0)
					if corner != (tile < NumPentagons) {
						t.Errorf("faceIndexOf(%v, %v) = %v, corner vertices and pentagons must coincide", f, vi, tile)
					}

					id := findCenter(&centers, pos)
					if prev, ok := tileOf[id]; ok && prev != tile {
						t.Errorf("vertex at %v resolves to tiles %v and %v", pos, prev, tile)
					}
					tileOf[id] = tile
					seen[tile] = true
				}
			}

			if len(tileOf) != g.NumFaces() {
				t.Errorf("found %v distinct tile centers, want %v", len(tileOf), g.NumFaces())
			}
			for tile, ok := range seen {
				if !ok {
					t.Errorf("tile %v is never produced", tile)
				}
			}
		})
	}
}

// Helpers

// findCenter clusters positions: replicas of the same lattice vertex land
// within slerp tolerance of each other while distinct vertices are far apart.
func findCenter(centers *[]r3.Vector, pos r3.Vector) int {
	for i, c := range *centers {
		if c.Sub(pos).Norm() < 1e-5 {
			return i
		}
	}
	*centers = append(*centers, pos)
	return len(*centers) - 1
}

func sortedPairs(set map[[2]int]bool) [][2]int {
	out := make([][2]int, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
