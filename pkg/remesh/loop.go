package remesh

import (
	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/meshedit"
	"github.com/samber/lo"
)

// LoopSubdivide refines a closed triangle mesh by one step of Loop
// subdivision. It refuses (returning false, leaving the mesh untouched)
// if any non-boundary face is not a triangle.
func LoopSubdivide(m *halfedge.Mesh) bool {
	for f := range m.Faces() {
		if !m.IsBoundary(f) && m.FaceArity(f) != 3 {
			return false
		}
	}

	var origVertices []halfedge.VertexRef
	for v := range m.Vertices() {
		origVertices = append(origVertices, v)
	}
	var origEdges []halfedge.EdgeRef
	for e := range m.Edges() {
		origEdges = append(origEdges, e)
	}

	for _, v := range origVertices {
		m.SetVertexNewPos(v, loopVertexStencil(m, v))
		m.SetVertexIsNew(v, false)
	}
	for _, e := range origEdges {
		m.SetEdgeNewPos(e, loopOddVertexStencil(m, e))
		m.SetEdgeIsNew(e, false)
	}

	for _, e := range origEdges {
		v0, v1 := m.EdgeVertices(e)
		target := m.EdgeNewPos(e)

		newV, ok := meshedit.SplitEdge(m, e)
		if !ok {
			continue
		}
		m.SetVertexIsNew(newV, true)
		m.SetPos(newV, target)

		for h := range m.VertexOutgoing(newV) {
			other := m.HeVertex(m.Twin(h))
			he := m.HeEdge(h)
			m.SetEdgeIsNew(he, other != v0 && other != v1)
		}
	}

	var allEdges []halfedge.EdgeRef
	for e := range m.Edges() {
		allEdges = append(allEdges, e)
	}
	newEdges := lo.Filter(allEdges, func(e halfedge.EdgeRef, _ int) bool { return m.EdgeIsNew(e) })
	for _, e := range newEdges {
		a, b := m.EdgeVertices(e)
		if m.VertexIsNew(a) != m.VertexIsNew(b) {
			meshedit.FlipEdge(m, e)
		}
	}

	for v := range m.Vertices() {
		if !m.VertexIsNew(v) {
			m.SetPos(v, m.VertexNewPos(v))
		}
	}

	return true
}

// loopVertexStencil computes the Loop-subdivision update for an original
// vertex from its current one-ring.
func loopVertexStencil(m *halfedge.Mesh, v halfedge.VertexRef) geom.Vec3 {
	n := m.VertexDegree(v)
	var sum geom.Vec3
	for h := range m.VertexOutgoing(v) {
		sum = sum.Add(m.Pos(m.HeVertex(m.Twin(h))))
	}
	beta := 3.0 / 16.0
	if n != 3 {
		beta = 3.0 / (8.0 * float64(n))
	}
	return m.Pos(v).Mul(1 - float64(n)*beta).Add(sum.Mul(beta))
}

// loopOddVertexStencil computes the position of the vertex that will be
// inserted by splitting e, weighting its own endpoints more heavily than
// the two opposite (apex) vertices of its incident triangles.
func loopOddVertexStencil(m *halfedge.Mesh, e halfedge.EdgeRef) geom.Vec3 {
	h0 := m.EdgeHalfedge(e)
	h1 := m.Twin(h0)
	a := m.HeVertex(h0)
	b := m.HeVertex(h1)
	c := m.HeVertex(m.Next(m.Next(h0)))
	d := m.HeVertex(m.Next(m.Next(h1)))
	return m.Pos(a).Add(m.Pos(b)).Mul(3.0 / 8.0).Add(m.Pos(c).Add(m.Pos(d)).Mul(1.0 / 8.0))
}
