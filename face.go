package hexglobe

import "fmt"

// Face represents one tile of the polyhedron. It is a view structure for
// accessing a face in a Globe. Pentagons occupy indices 0..12, hexagons the
// rest.
type Face struct {
	idx int
	g   *Globe
}

// Index returns the face index within the Globe.
func (f Face) Index() int {
	return f.idx
}

// IsPentagon reports whether this face lies on a seed vertex. Exactly 12
// faces do; all others are hexagons.
func (f Face) IsPentagon() bool {
	return f.NumVertices() == 5
}

// NumVertices returns the number of vertices in the face: 5 for pentagons,
// 6 for hexagons.
func (f Face) NumVertices() int {
	return f.g.FaceOffsets[f.idx+1] - f.g.FaceOffsets[f.idx]
}

// VertexIndices returns the packed vertex keys that form the face, sorted in
// counter-clockwise order when looking out of the sphere.
func (f Face) VertexIndices() []PackedIndex {
	return f.g.FaceVertices[f.g.FaceOffsets[f.idx]:f.g.FaceOffsets[f.idx+1]]
}

// Vertex returns the packed vertex key at the specified position.
// It returns an error if the position is out of range.
func (f Face) Vertex(i int) (PackedIndex, error) {
	start := f.g.FaceOffsets[f.idx]
	end := f.g.FaceOffsets[f.idx+1]
	if i < 0 || i >= end-start {
		return 0, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return f.g.FaceVertices[start+i], nil
}

// MeshOffset returns the index of the face's first vertex in the flat buffers
// produced by MeshVertices and MeshNormals. Mesh vertices are emitted in face
// order, so the offset coincides with the face's offset in FaceVertices.
func (f Face) MeshOffset() int {
	return f.g.FaceOffsets[f.idx]
}
