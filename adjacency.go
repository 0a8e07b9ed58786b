// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import "github.com/MorganBennetDev/hexglobe/subdivision"

// faceIndexOf returns the index of the tile containing lattice vertex vi of
// seed face f. It case-splits on where the vertex sits: seed corners map
// through fixed modular tables, seed-edge vertices map through the edge
// ordinal times faces-per-edge plus the position along the edge, and interior
// vertices map through the interior index. All arithmetic is O(1); no face is
// ever searched.
func (g *Globe) faceIndexOf(f, vi int) int {
	v := g.subdivision.Vertex(vi)
	fpe := facesPerEdge(g.n)

	switch {
	// Seed corners.
	case v.Y == 0 && v.Z == 0: // u
		switch {
		case f < 5:
			return 0
		case f < 10:
			return 7 + f%5
		case f < 15:
			return 2 + f%5
		default:
			return 1
		}
	case v.X == 0 && v.Z == 0: // v
		switch {
		case f < 5:
			return 2 + (f+4)%5
		case f < 10:
			return 2 + f%5
		case f < 15:
			return 7 + f%5
		default:
			return 7 + (f+1)%5
		}
	case v.X == 0 && v.Y == 0: // w
		switch {
		case f < 5:
			return 2 + f
		case f < 10:
			return 2 + (f+4)%5
		case f < 15:
			return 7 + (f+1)%5
		default:
			return 7 + f%5
		}
	// Seed edges. The offset is NumPentagons - 1 because positions along an
	// edge start at 1.
	case v.Z == 0: // uv
		offset := NumPentagons - 1
		switch {
		case f < 5:
			return offset + ((f+4)%5)*fpe + v.X
		case f < 10:
			return offset + (10+f%5)*fpe + v.Y
		case f < 15:
			return offset + (10+f%5)*fpe + v.X
		default:
			return offset + (25+f%5)*fpe + v.Y
		}
	case v.X == 0: // vw
		offset := NumPentagons - 1
		switch {
		case f < 5:
			return offset + (5+f)*fpe + v.Z
		case f < 10:
			return offset + (5+f%5)*fpe + v.Y
		case f < 15:
			return offset + (20+f%5)*fpe + v.Z
		default:
			return offset + (20+f%5)*fpe + v.Y
		}
	case v.Y == 0: // wu
		offset := NumPentagons - 1
		switch {
		case f < 5:
			return offset + f*fpe + v.X
		case f < 10:
			return offset + (15+(f+4)%5)*fpe + v.Z
		case f < 15:
			return offset + (15+f%5)*fpe + v.X
		default:
			return offset + (25+(f+4)%5)*fpe + v.Z
		}
	// Interior.
	default:
		offset := NumPentagons + seedEdges*fpe + f*facesPerFace(g.n)
		return offset + g.subdivision.InteriorIndex(v)
	}
}

// Adjacency returns the undirected edges between adjacent tiles as index
// pairs. Each lattice edge is replicated across the 20 seed faces through
// faceIndexOf; seam edges reached from both incident seed faces are emitted
// once. No ordering guarantee is made, on the list or within a pair.
func (g *Globe) Adjacency() [][2]int {
	edges := g.subdivision.VertexAdjacency()
	out := make([][2]int, 0, seedFaces*subdivision.NumEdges(g.n))
	seen := make(map[[2]int]struct{}, seedFaces*subdivision.NumEdges(g.n))

	for _, e := range edges {
		for f := 0; f < seedFaces; f++ {
			a := g.faceIndexOf(f, e[0])
			b := g.faceIndexOf(f, e[1])
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}

	return out
}
