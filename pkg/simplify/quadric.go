// Package simplify implements quadric-error mesh simplification: greedy
// edge collapse driven by a minimum-priority queue of candidate collapses,
// each scored by the squared distance of its optimal replacement point to
// the set of planes summarized by the combined quadric of its endpoints.
package simplify

import (
	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
)

// FaceQuadric returns the quadric K_f = (n,d) ⊗ (n,d) for f's supporting
// plane, where n is f's unit normal and d = -n·p for any vertex p of f.
// The result is meaningless for a boundary face and should not be called
// on one.
func FaceQuadric(m *halfedge.Mesh, f halfedge.FaceRef) geom.Mat4 {
	n := m.FaceNormal(f)
	p := m.Pos(m.HeVertex(m.FaceHalfedge(f)))
	d := -n.Dot(p)
	plane := geom.Vec4FromVec3(n, d)
	return geom.Outer(plane, plane)
}

// VertexQuadric sums the quadrics of v's incident non-boundary faces,
// looking each up in faceQuadrics rather than recomputing it.
func VertexQuadric(m *halfedge.Mesh, v halfedge.VertexRef, faceQuadrics map[halfedge.FaceRef]geom.Mat4) geom.Mat4 {
	sum := geom.ZeroMat4
	for h := range m.VertexOutgoing(v) {
		f := m.HeFace(h)
		if m.IsBoundary(f) {
			continue
		}
		sum = sum.Add(faceQuadrics[f])
	}
	return sum
}
