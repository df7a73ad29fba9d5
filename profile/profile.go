// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package profile implements the vertical alignment: a sequence of PVIs,
// optionally smoothed by symmetric parabolic vertical curves.
package profile

import "github.com/levipl123-crypto/gdot-soundwall/geom"

// PVI is a Point of Vertical Intersection. A PVI with CurveLength > 0 owns a
// symmetric parabolic vertical curve of that length, centered on it.
type PVI struct {
	Station     float64
	Elevation   float64
	CurveLength float64
}

// HasCurve reports whether this PVI owns a vertical curve
func (p PVI) HasCurve() bool {
	return p.CurveLength > 0.0
}

// BVCStation is the begin-vertical-curve station
func (p PVI) BVCStation() float64 {
	return p.Station - p.CurveLength/2.0
}

// EVCStation is the end-vertical-curve station
func (p PVI) EVCStation() float64 {
	return p.Station + p.CurveLength/2.0
}

// VerticalProfile is an ordered sequence of PVIs. Invariant: adjacent PVIs'
// curves do not overlap (EVC[i] <= BVC[i+1]).
type VerticalProfile struct {
	Name string
	PVIs []PVI
}

// StartStation is the first PVI's station, or 0 if empty
func (v *VerticalProfile) StartStation() float64 {
	if len(v.PVIs) == 0 {
		return 0.0
	}
	return v.PVIs[0].Station
}

// EndStation is the last PVI's station, or 0 if empty
func (v *VerticalProfile) EndStation() float64 {
	if len(v.PVIs) == 0 {
		return 0.0
	}
	return v.PVIs[len(v.PVIs)-1].Station
}

func grade(a, b PVI) float64 {
	ds := b.Station - a.Station
	if ds == 0 {
		return 0.0
	}
	return (b.Elevation - a.Elevation) / ds
}

// ElevationAtStation evaluates the profile at station, per spec.md §4.C:
//  1. no PVIs -> 0; one PVI -> its elevation
//  2. a PVI whose curve covers the station -> symmetric parabola
//  3. otherwise linear interpolation/extrapolation between adjacent PVIs
//
// Overlapping curves are a data error; this returns the first match found
// while scanning in order, per spec.md §4.C's edge case note.
func (v *VerticalProfile) ElevationAtStation(station float64) float64 {
	n := len(v.PVIs)
	if n == 0 {
		return 0.0
	}
	if n == 1 {
		return v.PVIs[0].Elevation
	}

	for i, pvi := range v.PVIs {
		if !pvi.HasCurve() {
			continue
		}
		if station < pvi.BVCStation() || station > pvi.EVCStation() {
			continue
		}
		var gradeIn, gradeOut float64
		if i > 0 {
			gradeIn = grade(v.PVIs[i-1], pvi)
		}
		if i < n-1 {
			gradeOut = grade(pvi, v.PVIs[i+1])
		}
		return geom.ParabolicCurveElevation(station, pvi.Station, pvi.Elevation, gradeIn, gradeOut, pvi.CurveLength)
	}

	if station <= v.PVIs[0].Station {
		g := grade(v.PVIs[0], v.PVIs[1])
		return v.PVIs[0].Elevation + g*(station-v.PVIs[0].Station)
	}
	if station >= v.PVIs[n-1].Station {
		g := grade(v.PVIs[n-2], v.PVIs[n-1])
		return v.PVIs[n-1].Elevation + g*(station-v.PVIs[n-1].Station)
	}

	for i := 0; i < n-1; i++ {
		p1 := v.PVIs[i]
		p2 := v.PVIs[i+1]
		sta1 := p1.Station
		if p1.HasCurve() {
			sta1 = p1.EVCStation()
		}
		sta2 := p2.Station
		if p2.HasCurve() {
			sta2 = p2.BVCStation()
		}
		if station >= sta1 && station <= sta2 {
			g := grade(p1, p2)
			return p1.Elevation + g*(station-p1.Station)
		}
	}

	return 0.0
}
