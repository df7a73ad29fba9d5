// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/levipl123-crypto/gdot-soundwall/ana"
)

func Test_profile_linear01(tst *testing.T) {
	v := &VerticalProfile{
		PVIs: []PVI{
			{Station: 0, Elevation: 100.0},
			{Station: 100, Elevation: 110.0},
		},
	}

	chk.AnaNum(tst, "profile start", 1e-12, 0, v.StartStation(), chk.Verbose)
	chk.AnaNum(tst, "profile end", 1e-12, 100, v.EndStation(), chk.Verbose)
	chk.AnaNum(tst, "elev@50", 1e-9, 105.0, v.ElevationAtStation(50), chk.Verbose)
	// extrapolation past the last PVI continues the last grade
	chk.AnaNum(tst, "elev@150", 1e-9, 115.0, v.ElevationAtStation(150), chk.Verbose)
}

func Test_profile_curve01(tst *testing.T) {
	// crest curve: +2% in, -2% out, 60m long, centered at station 100
	v := &VerticalProfile{
		PVIs: []PVI{
			{Station: 0, Elevation: 98.0},
			{Station: 100, Elevation: 100.0, CurveLength: 60},
			{Station: 200, Elevation: 98.0},
		},
	}

	elev := v.ElevationAtStation(100)
	want := 100.0 + ana.ParabolaVertexDrop(0.02, -0.02, 60)
	chk.AnaNum(tst, "elev at PVI (on curve)", 1e-9, want, elev, chk.Verbose)
}
