// Copyright (c) 2026 Morgan Bennet
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package slerp implements weighted spherical averages of points on the unit
// sphere using the local linear convergence algorithm (A1) described by Buss
// and Fillmore in "Spherical Averages and Applications to Spherical Splines
// and Interpolation".
package slerp

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	// tolerance bounds the magnitude of the final tangent-space update.
	tolerance = 1e-6
	// weightEps is the allowed deviation of the weight sum from 1.
	weightEps = 1e-9
)

// ln maps p from the sphere to the tangent plane at q. The output has
// magnitude equal to the angle between p and q, pointing from q toward p.
// Inverse of exp.
func ln(q, p r3.Vector) r3.Vector {
	r := p.Angle(q).Radians()
	k := 1.0
	if r != 0 {
		k = r / math.Sin(r)
	}
	return p.Sub(q.Mul(math.Cos(r))).Mul(k)
}

// exp maps dp from the tangent plane at q back to the sphere, preserving
// distance and direction.
func exp(q, dp r3.Vector) r3.Vector {
	r := dp.Norm()
	k := 1.0
	if r != 0 {
		k = math.Sin(r) / r
	}
	return q.Mul(math.Cos(r)).Add(dp.Mul(k))
}

// SlerpN computes the weighted spherical average of points with the given
// weights. All points must be unit length and the weights must sum to 1;
// violating either is a programmer error and panics.
func SlerpN(weights []float64, points []s2.Point) s2.Point {
	if len(weights) != len(points) {
		panic("slerp: weights and points must have the same length")
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if math.Abs(total-1) > weightEps {
		panic("slerp: weights must sum to 1")
	}

	var q r3.Vector
	for i, w := range weights {
		q = q.Add(points[i].Mul(w))
	}
	q = q.Normalize()

	for {
		var u r3.Vector
		for i, w := range weights {
			u = u.Add(ln(q, points[i].Vector).Mul(w))
		}
		q = exp(q, u)
		if u.Norm() < tolerance {
			return s2.Point{Vector: q}
		}
	}
}

// Slerp3 is shorthand for SlerpN over three points.
func Slerp3(w0 float64, p0 s2.Point, w1 float64, p1 s2.Point, w2 float64, p2 s2.Point) s2.Point {
	return SlerpN([]float64{w0, w1, w2}, []s2.Point{p0, p1, p2})
}
