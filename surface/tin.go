// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surface implements the triangulated irregular network (TIN)
// terrain model and its barycentric elevation query, grounded on the
// area-coordinate convention used for the tri3 shape function in the
// teacher's shp package (shp/tris.go's NatCoords table for a 3-node linear
// triangle is the same {λ0, λ1, λ2} barycentric basis used here).
package surface

// Vertex is a 3D terrain sample point
type Vertex struct {
	E, N, Z float64
}

// denomTol is the degenerate-triangle tolerance on the barycentric
// denominator, per spec.md §4.D
const denomTol = 1e-12

// baryTol is the slack allowed on barycentric coordinates so that points
// exactly on a shared triangle edge are still considered "inside", per
// spec.md §4.D
const baryTol = -1e-6

// TerrainSurface is a triangulated mesh of Vertices with Triangles as index
// triples into Vertices. No topological invariant is enforced beyond valid
// indices (spec.md §3).
type TerrainSurface struct {
	Name      string
	Vertices  []Vertex
	Triangles [][3]int
}

// ElevationAt queries ground elevation at (e, n) via barycentric
// interpolation. Triangles are scanned in order and the first one found to
// contain the point wins; ok is false if no triangle contains the point
// (spec.md §4.D — a production implementation may accelerate this scan with
// a spatial index, but must return identical values).
func (t *TerrainSurface) ElevationAt(e, n float64) (elevation float64, ok bool) {
	for _, tri := range t.Triangles {
		v0 := t.Vertices[tri[0]]
		v1 := t.Vertices[tri[1]]
		v2 := t.Vertices[tri[2]]

		denom := (v1.N-v2.N)*(v0.E-v2.E) + (v2.E-v1.E)*(v0.N-v2.N)
		if denom > -denomTol && denom < denomTol {
			continue
		}

		lambda0 := ((v1.N-v2.N)*(e-v2.E) + (v2.E-v1.E)*(n-v2.N)) / denom
		lambda1 := ((v2.N-v0.N)*(e-v2.E) + (v0.E-v2.E)*(n-v2.N)) / denom
		lambda2 := 1.0 - lambda0 - lambda1

		if lambda0 >= baryTol && lambda1 >= baryTol && lambda2 >= baryTol {
			return lambda0*v0.Z + lambda1*v1.Z + lambda2*v2.Z, true
		}
	}
	return 0.0, false
}

// Bounds returns (minE, minN, maxE, maxN); all zero if there are no vertices
func (t *TerrainSurface) Bounds() (minE, minN, maxE, maxN float64) {
	if len(t.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minE, minN = t.Vertices[0].E, t.Vertices[0].N
	maxE, maxN = t.Vertices[0].E, t.Vertices[0].N
	for _, v := range t.Vertices[1:] {
		if v.E < minE {
			minE = v.E
		}
		if v.E > maxE {
			maxE = v.E
		}
		if v.N < minN {
			minN = v.N
		}
		if v.N > maxN {
			maxN = v.N
		}
	}
	return minE, minN, maxE, maxN
}
