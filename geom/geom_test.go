// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_normalize01(tst *testing.T) {
	chk.AnaNum(tst, "normalize(-pi/2)", 1e-15, 3*math.Pi/2, NormalizeAngle(-math.Pi/2), chk.Verbose)
	chk.AnaNum(tst, "normalize(5*pi)", 1e-15, math.Pi, NormalizeAngle(5*math.Pi), chk.Verbose)
}

func Test_azimuth01(tst *testing.T) {
	// due north
	az := AzimuthFromPoints(0, 0, 0, 10)
	chk.AnaNum(tst, "azimuth due north", 1e-15, 0, az, chk.Verbose)

	// due east
	az = AzimuthFromPoints(0, 0, 10, 0)
	chk.AnaNum(tst, "azimuth due east", 1e-15, math.Pi/2, az, chk.Verbose)
}

func Test_offset01(tst *testing.T) {
	// traveling due north, offset to the right (east) by 5
	e, n := OffsetPoint(0, 0, 0, 5)
	chk.AnaNum(tst, "offset e", 1e-12, 5, e, chk.Verbose)
	chk.AnaNum(tst, "offset n", 1e-12, 0, n, chk.Verbose)
}

func Test_distance01(tst *testing.T) {
	d := Distance2D(0, 0, 3, 4)
	chk.AnaNum(tst, "distance", 1e-15, 5, d, chk.Verbose)
}

func Test_interpolate01(tst *testing.T) {
	y := InterpolateLinear(5, 0, 0, 10, 100)
	chk.AnaNum(tst, "interp midpoint", 1e-12, 50, y, chk.Verbose)

	// degenerate span falls back to average
	y = InterpolateLinear(5, 3, 10, 3, 20)
	chk.AnaNum(tst, "interp degenerate", 1e-12, 15, y, chk.Verbose)
}

func Test_parabola01(tst *testing.T) {
	// symmetric crest: grade in +0.02, grade out -0.02, length 60; the
	// vertex sits (gradeOut-gradeIn)*L/8 below the PVI elevation
	elev := ParabolicCurveElevation(100, 100, 250.0, 0.02, -0.02, 60)
	want := 250.0 + (-0.02-0.02)*60/8.0
	chk.AnaNum(tst, "parabola at PVI", 1e-9, want, elev, chk.Verbose)
}

func Test_clamp01(tst *testing.T) {
	chk.AnaNum(tst, "clamp below", 1e-15, 0, Clamp(-5, 0, 10), chk.Verbose)
	chk.AnaNum(tst, "clamp above", 1e-15, 10, Clamp(15, 0, 10), chk.Verbose)
	chk.AnaNum(tst, "clamp inside", 1e-15, 5, Clamp(5, 0, 10), chk.Verbose)
}
