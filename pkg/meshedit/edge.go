package meshedit

import "github.com/chazu/halfmesh/pkg/halfedge"

// FlipEdge rotates e so its endpoints become the two opposite vertices
// of its incident faces. Refuses on a boundary edge; otherwise it is
// purely connective and creates or destroys no element.
func FlipEdge(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.EdgeRef, bool) {
	h0 := m.EdgeHalfedge(e)
	h3 := m.Twin(h0)
	f0 := m.HeFace(h0)
	f1 := m.HeFace(h3)
	if m.IsBoundary(f0) || m.IsBoundary(f1) {
		return halfedge.NoEdge, false
	}

	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h4 := m.Next(h3)
	h5 := m.Next(h4)
	h6 := m.Twin(h1)
	h7 := m.Twin(h2)
	h8 := m.Twin(h4)
	h9 := m.Twin(h5)

	v0 := m.HeVertex(h0)
	v1 := m.HeVertex(h3)
	v2 := m.HeVertex(h8)
	v3 := m.HeVertex(h6)

	e1 := m.HeEdge(h5)
	e2 := m.HeEdge(h4)
	e3 := m.HeEdge(h2)
	e4 := m.HeEdge(h1)

	m.SetNeighbors(h0, h1, h3, v2, e, f0)
	m.SetNeighbors(h1, h2, h7, v3, e3, f0)
	m.SetNeighbors(h2, h0, h8, v0, e2, f0)
	m.SetNeighbors(h3, h4, h0, v3, e, f1)
	m.SetNeighbors(h4, h5, h9, v2, e1, f1)
	m.SetNeighbors(h5, h3, h6, v1, e4, f1)
	m.SetNeighbors(h6, m.Next(h6), h5, v3, e4, m.HeFace(h6))
	m.SetNeighbors(h7, m.Next(h7), h1, v0, e3, m.HeFace(h7))
	m.SetNeighbors(h8, m.Next(h8), h2, v2, e2, m.HeFace(h8))
	m.SetNeighbors(h9, m.Next(h9), h4, v1, e1, m.HeFace(h9))

	m.SetVertexHalfedge(v0, h2)
	m.SetVertexHalfedge(v1, h5)
	m.SetVertexHalfedge(v2, h4)
	m.SetVertexHalfedge(v3, h3)

	m.SetEdgeHalfedge(e, h0)
	m.SetEdgeHalfedge(e1, h4)
	m.SetEdgeHalfedge(e2, h2)
	m.SetEdgeHalfedge(e3, h1)
	m.SetEdgeHalfedge(e4, h5)

	m.SetFaceHalfedge(f0, h0)
	m.SetFaceHalfedge(f1, h3)

	return e, true
}

// SplitEdge inserts a new vertex at the midpoint of e, replacing its two
// incident triangles with four. If e touches the boundary, only the
// interior triangle is split, leaving the boundary side intact. Refuses
// only when both incident faces are the boundary sentinel, i.e. e bounds
// no real geometry at all.
func SplitEdge(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.VertexRef, bool) {
	h0 := m.EdgeHalfedge(e)
	h3 := m.Twin(h0)
	f0 := m.HeFace(h0)
	f1 := m.HeFace(h3)
	if m.IsBoundary(f0) && m.IsBoundary(f1) {
		return halfedge.NoVertex, false
	}
	if m.IsBoundary(f0) {
		// h0/f0 is always the real triangle that gets split; h3/f1 may
		// be the boundary sentinel.
		h0, h3 = h3, h0
		f0, f1 = f1, f0
	}
	edgeOnBoundary := m.IsBoundary(f1)

	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h4 := m.Next(h3)
	h5 := m.Next(h4)
	h6 := m.Twin(h1)

	v0 := m.HeVertex(h0)
	v1 := m.HeVertex(h3)
	v3 := m.HeVertex(h6)

	e3 := m.HeEdge(h2)
	e4 := m.HeEdge(h1)

	h10 := m.NewHalfedge()
	h11 := m.NewHalfedge()
	h12 := m.NewHalfedge()
	h13 := m.NewHalfedge()

	f3 := m.NewFace()

	v4 := m.NewVertex()

	e5 := m.NewEdge()
	e6 := m.NewEdge()

	h3prev := h3
	if edgeOnBoundary {
		for m.Next(m.Twin(h3prev)) != h3 {
			h3prev = m.Next(m.Twin(h3prev))
		}
		h3prev = m.Twin(h3prev)
	}

	m.SetNeighbors(h0, h13, h3, v0, e, f0)
	m.SetNeighbors(h1, h12, h6, v1, e4, f3)
	m.SetNeighbors(h2, h0, m.Twin(h2), v3, e3, f0)
	m.SetNeighbors(h11, h1, h10, v4, e5, f3)
	m.SetNeighbors(h12, h11, h13, v3, e6, f3)
	m.SetNeighbors(h13, h2, h12, v4, e6, f0)

	m.SetVertexHalfedge(v1, h1)
	m.SetVertexHalfedge(v4, h3)

	m.SetEdgeHalfedge(e5, h10)
	m.SetEdgeHalfedge(e6, h12)

	m.SetFaceHalfedge(f0, h0)
	m.SetFaceHalfedge(f1, h3)
	m.SetFaceHalfedge(f3, h1)

	if edgeOnBoundary {
		m.SetNeighbors(h3, m.Next(h3), h0, v4, e, f1)
		m.SetNext(h3prev, h10)
		m.SetNeighbors(h10, h3, h11, v1, e5, f1)
	} else {
		h8 := m.Twin(h4)
		v2 := m.HeVertex(h8)

		e1 := m.HeEdge(h5)
		e2 := m.HeEdge(h4)

		h14 := m.NewHalfedge()
		h15 := m.NewHalfedge()

		f2 := m.NewFace()

		e7 := m.NewEdge()

		m.SetNeighbors(h3, h4, h0, v4, e, f1)
		m.SetNeighbors(h4, h14, h8, v0, e2, f1)
		m.SetNeighbors(h5, h10, m.Twin(h5), v2, e1, f2)
		m.SetNeighbors(h10, h15, h11, v1, e5, f2)
		m.SetNeighbors(h14, h3, h15, v2, e7, f1)
		m.SetNeighbors(h15, h5, h14, v4, e7, f2)

		m.SetEdgeHalfedge(e7, h14)
		m.SetFaceHalfedge(f2, h5)
	}

	m.SetPos(v4, m.Pos(v0).Add(m.Pos(v1)).Mul(0.5))

	return v4, true
}
