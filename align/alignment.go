// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

// stationEps is the search tolerance used when bracketing a station within
// a segment's [StartStation, EndStation] range, per spec.md §4.B
const stationEps = 1e-6

// HorizontalAlignment is an ordered composite of Segments. Invariant:
// segment stations are contiguous (end[i] == start[i+1] within
// stationEps) and endpoints match (C0 continuity); C1 continuity of
// bearing is expected but not enforced.
type HorizontalAlignment struct {
	Name     string
	Segments []Segment
}

// StartStation is the first segment's StartStation, or 0 if empty
func (a *HorizontalAlignment) StartStation() float64 {
	if len(a.Segments) == 0 {
		return 0.0
	}
	s, _ := a.Segments[0].Bounds()
	return s
}

// EndStation is the last segment's EndStation, or 0 if empty
func (a *HorizontalAlignment) EndStation() float64 {
	if len(a.Segments) == 0 {
		return 0.0
	}
	_, e := a.Segments[len(a.Segments)-1].Bounds()
	return e
}

// TotalLength is EndStation - StartStation
func (a *HorizontalAlignment) TotalLength() float64 {
	return a.EndStation() - a.StartStation()
}

// PointAtStation finds the segment whose [start, end+ε] brackets station and
// delegates to it. Stations beyond either end clamp to that end segment's
// boundary endpoint, per spec.md §4.B.
func (a *HorizontalAlignment) PointAtStation(station float64) (e, n, bearing float64) {
	for _, seg := range a.Segments {
		start, end := seg.Bounds()
		if station >= start && station <= end+stationEps {
			clamped := station
			if clamped > end {
				clamped = end
			}
			return seg.PointAtStation(clamped)
		}
	}

	if len(a.Segments) == 0 {
		return 0, 0, 0
	}
	if station < a.StartStation() {
		first := a.Segments[0]
		start, _ := first.Bounds()
		return first.PointAtStation(start)
	}
	last := a.Segments[len(a.Segments)-1]
	_, end := last.Bounds()
	return last.PointAtStation(end)
}
