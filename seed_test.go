// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexglobe

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestNewSeed_UnitVertices(t *testing.T) {
	s := NewSeed()
	for i := 0; i < seedVertices; i++ {
		if got := math.Abs(s.Vertex(i).Norm() - 1); got > 1e-12 {
			t.Errorf("|s.Vertex(%d)| deviates from 1 by %v", i, got)
		}
	}
}

func TestNewSeed_Regular(t *testing.T) {
	s := NewSeed()

	var first float64
	for f := 0; f < s.NumFaces(); f++ {
		u, v, w := s.FaceVertices(f)
		for _, d := range []float64{
			u.Sub(v.Vector).Norm(),
			v.Sub(w.Vector).Norm(),
			w.Sub(u.Vector).Norm(),
		} {
			if first == 0 {
				first = d
				continue
			}
			if math.Abs(d-first) > 1e-12 {
				t.Errorf("face %d edge length %v, want %v", f, d, first)
			}
		}
	}
}

func TestNewSeed_VertexValence(t *testing.T) {
	s := NewSeed()
	count := make([]int, seedVertices)
	for f := 0; f < s.NumFaces(); f++ {
		for _, id := range s.FaceVertexIndices(f) {
			count[id]++
		}
	}
	for id, c := range count {
		if c != 5 {
			t.Errorf("seed vertex %d appears in %d faces, want 5", id, c)
		}
	}
}

func TestNewSeed_ConsistentWinding(t *testing.T) {
	s := NewSeed()
	var sign float64
	for f := 0; f < s.NumFaces(); f++ {
		u, v, w := s.FaceVertices(f)
		d := v.Sub(u.Vector).Cross(w.Sub(u.Vector)).Dot(u.Vector)
		if math.Abs(d) < 1e-12 {
			t.Fatalf("face %d is degenerate", f)
		}
		if sign == 0 {
			sign = d
			continue
		}
		if d*sign < 0 {
			t.Errorf("face %d winds against face 0", f)
		}
	}
}

func TestBaseFaces(t *testing.T) {
	s := NewSeed()
	base := s.BaseFaces()
	if len(base) != numBaseFaces {
		t.Fatalf("len(s.BaseFaces()) = %v, want %v", len(base), numBaseFaces)
	}
	for i, bf := range base {
		if bf.Face != i {
			t.Errorf("s.BaseFaces()[%d].Face = %v, want %v", i, bf.Face, i)
		}
		u, v, w := s.FaceVertices(i)
		if bf.U != u || bf.V != v || bf.W != w {
			t.Errorf("s.BaseFaces()[%d] corners do not match s.FaceVertices(%d)", i, i)
		}
	}
}

func TestSymmetries(t *testing.T) {
	s := NewSeed()
	syms := s.Symmetries()
	if len(syms) != seedFaces-numBaseFaces {
		t.Fatalf("len(s.Symmetries()) = %v, want %v", len(syms), seedFaces-numBaseFaces)
	}

	for i, sym := range syms {
		if sym.Face != numBaseFaces+i {
			t.Errorf("s.Symmetries()[%d].Face = %v, want %v", i, sym.Face, numBaseFaces+i)
		}
		if sym.Base != sym.Face%numBaseFaces {
			t.Errorf("s.Symmetries()[%d].Base = %v, want %v", i, sym.Base, sym.Face%numBaseFaces)
		}

		if !isRotation(sym.Rotation, 1e-9) {
			t.Errorf("s.Symmetries()[%d].Rotation is not a proper rotation: %v", i, sym.Rotation)
		}

		bu, bv, bw := s.FaceVertices(sym.Base)
		fu, fv, fw := s.FaceVertices(sym.Face)
		pairs := []struct {
			from, to r3.Vector
		}{
			{bu.Vector, fu.Vector},
			{bv.Vector, fv.Vector},
			{bw.Vector, fw.Vector},
		}
		for _, p := range pairs {
			if got := sym.Rotation.Apply(p.from).Sub(p.to).Norm(); got > 1e-9 {
				t.Errorf("face %d rotation moves base corner %v to %v, off by %v",
					sym.Face, p.from, sym.Rotation.Apply(p.from), got)
			}
		}
	}
}

func TestRotation_Apply(t *testing.T) {
	// Quarter turn about z.
	m := Rotation{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
	got := m.Apply(r3.Vector{X: 1, Y: 0, Z: 0})
	want := r3.Vector{X: 0, Y: 1, Z: 0}
	if got.Sub(want).Norm() > 1e-12 {
		t.Errorf("m.Apply(x) = %v, want %v", got, want)
	}
}

// Helpers

// isRotation reports whether m is orthogonal with determinant +1.
func isRotation(m Rotation, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dot := m[0][i]*m[0][j] + m[1][i]*m[1][j] + m[2][i]*m[2][j]
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > eps {
				return false
			}
		}
	}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return det > 0
}
