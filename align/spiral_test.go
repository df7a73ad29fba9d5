// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_spiral01(tst *testing.T) {
	// tangent-to-circular transition: infinite start radius, 50m end radius
	s := NewSpiralSegment(Endpoints{
		StartStation: 0, EndStation: 40,
		StartE: 0, StartN: 0,
	}, math.Inf(1), 50.0, 0, true)

	e0, n0, b0 := s.PointAtStation(0)
	chk.AnaNum(tst, "spiral start e", 1e-9, 0, e0, chk.Verbose)
	chk.AnaNum(tst, "spiral start n", 1e-9, 0, n0, chk.Verbose)
	chk.AnaNum(tst, "spiral start bearing", 1e-9, 0, b0, chk.Verbose)

	// the spiral should curve towards +E (clockwise from due north)
	eEnd, _, bEnd := s.PointAtStation(40)
	if eEnd <= 0 {
		tst.Errorf("expected spiral to deflect east, got e=%g", eEnd)
	}
	if bEnd <= 0 {
		tst.Errorf("expected spiral end bearing > 0, got %g", bEnd)
	}
}
