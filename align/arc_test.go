// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/levipl123-crypto/gdot-soundwall/ana"
)

func Test_arc01(tst *testing.T) {
	radius := 50.0
	centerE, centerN := 50.0, 0.0
	deltaAngle := math.Pi / 2.0
	length := radius * deltaAngle

	arc := NewArcSegment(Endpoints{
		StartStation: 0, EndStation: length,
		StartE: centerE, StartN: centerN + radius,
		EndE: centerE + radius*math.Sin(deltaAngle), EndN: centerN + radius*math.Cos(deltaAngle),
	}, radius, centerE, centerN, true, 0, deltaAngle)

	wantE, wantN, wantBearing := ana.ArcEndpoint(centerE, centerN, radius, deltaAngle)
	gotE, gotN, gotBearing := arc.PointAtStation(length)

	chk.AnaNum(tst, "arc endpoint e", 1e-9, wantE, gotE, chk.Verbose)
	chk.AnaNum(tst, "arc endpoint n", 1e-9, wantN, gotN, chk.Verbose)
	chk.AnaNum(tst, "arc endpoint bearing", 1e-9, wantBearing, gotBearing, chk.Verbose)

	chk.AnaNum(tst, "arc delta angle", 1e-12, deltaAngle, arc.DeltaAngle(), chk.Verbose)
}
