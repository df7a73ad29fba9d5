// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the bearing/offset/interpolation primitives shared
// by the alignment, profile and surface solvers: angle normalisation,
// azimuth-from-points, perpendicular offset, 2D distance, and linear and
// parabolic interpolation. All angles are radians; all lengths meters.
package geom

import "math"

// TwoPi is 2*π, the period bearings are normalized into [0, TwoPi)
const TwoPi = 2.0 * math.Pi

// NormalizeAngle wraps angle into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	return angle
}

// AzimuthFromPoints computes the bearing (radians, clockwise from +N) from
// point 1 to point 2: atan2(ΔE, ΔN) normalized to [0, 2π)
func AzimuthFromPoints(e1, n1, e2, n2 float64) float64 {
	de := e2 - e1
	dn := n2 - n1
	return NormalizeAngle(math.Atan2(de, dn))
}

// OffsetPoint shifts (e, n) perpendicular to bearing by offset; positive
// offset is to the right of travel
func OffsetPoint(e, n, bearing, offset float64) (float64, float64) {
	perp := bearing + math.Pi/2
	return e + offset*math.Sin(perp), n + offset*math.Cos(perp)
}

// PointAlongBearing advances (e, n) distance meters along bearing
func PointAlongBearing(e, n, bearing, distance float64) (float64, float64) {
	return e + distance*math.Sin(bearing), n + distance*math.Cos(bearing)
}

// Distance2D is the Euclidean distance between two points in the EN plane
func Distance2D(e1, n1, e2, n2 float64) float64 {
	de := e2 - e1
	dn := n2 - n1
	return math.Sqrt(de*de + dn*dn)
}

// InterpolateLinear interpolates y at x between (x1,y1) and (x2,y2); falls
// back to the average when the span collapses (x1 ≈ x2)
func InterpolateLinear(x, x1, y1, x2, y2 float64) float64 {
	if math.Abs(x2-x1) < 1e-12 {
		return (y1 + y2) / 2.0
	}
	t := (x - x1) / (x2 - x1)
	return y1 + t*(y2-y1)
}

// ParabolicCurveElevation evaluates a symmetric parabolic vertical curve of
// length curveLength centered on (pviStation, pviElevation), with incoming
// grade gradeIn and outgoing grade gradeOut, at station
func ParabolicCurveElevation(station, pviStation, pviElevation, gradeIn, gradeOut, curveLength float64) float64 {
	bvcStation := pviStation - curveLength/2.0
	bvcElevation := pviElevation - gradeIn*(curveLength/2.0)
	x := station - bvcStation
	r := (gradeOut - gradeIn) / curveLength
	return bvcElevation + gradeIn*x + (r/2.0)*x*x
}

// Clamp restricts value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
