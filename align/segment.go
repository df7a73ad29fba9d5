// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package align implements the horizontal alignment: a composite of Line,
// Arc and Spiral segments dispatched by station, following the closed
// sum-type design spec.md §9 calls for (a shared Segment interface rather
// than a deep inheritance hierarchy or an open allocator registry, since
// the variant set is fixed at three members).
package align

// Segment is implemented by LineSegment, ArcSegment and SpiralSegment. Each
// resolves a station within [StartStation, EndStation] to (easting,
// northing, bearing).
type Segment interface {
	PointAtStation(station float64) (e, n, bearing float64)
	Bounds() (startStation, endStation float64)
}

// Endpoints holds the attributes common to every segment variant (spec.md
// §3's shared AlignmentSegment fields).
type Endpoints struct {
	StartStation float64
	EndStation   float64
	StartE       float64
	StartN       float64
	EndE         float64
	EndN         float64
}

// Length is EndStation - StartStation
func (p Endpoints) Length() float64 {
	return p.EndStation - p.StartStation
}
