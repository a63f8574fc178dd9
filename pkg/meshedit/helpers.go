// Package meshedit implements the local edit operators of the mesh
// kernel: flip, split and collapse of an edge, erasure of a vertex, and
// beveling of a face (plus the permissible edge-erase, face-collapse and
// vertex/edge bevel refusals). Every operator either completes and returns a live handle,
// or refuses up front and leaves the mesh untouched.
package meshedit

import "github.com/chazu/halfmesh/pkg/halfedge"

// collectHalfedgesBetween walks from the half-edge after start up to
// end.Twin, both start and end.Twin excluded, assigning each visited half-edge as its origin vertex's
// canonical outgoing half-edge along the way. Used by EraseVertex to
// gather the boundary of the hole left by a vertex removal. Assumes
// start and end already point the same direction around their shared
// one-ring.
func collectHalfedgesBetween(m *halfedge.Mesh, start, end halfedge.HalfedgeRef) []halfedge.HalfedgeRef {
	var out []halfedge.HalfedgeRef
	h := m.Next(start)
	for {
		m.SetVertexHalfedge(m.HeVertex(h), h)
		out = append(out, h)
		h = m.Next(h)
		if h == m.Twin(end) {
			break
		}
	}
	return out
}

// getAllHalfedgesOfVertex returns every other half-edge along v's
// outgoing umbrella, skipping the Next-only steps taken to get from one
// outgoing half-edge to the next. Used by CollapseEdge to find every
// half-edge that needs to be re-homed to the collapsed vertex.
func getAllHalfedgesOfVertex(m *halfedge.Mesh, v halfedge.VertexRef) []halfedge.HalfedgeRef {
	var out []halfedge.HalfedgeRef
	start := m.VertexHalfedge(v)
	cur := start
	counter := 0
	for {
		if counter%2 != 0 {
			cur = m.Next(cur)
		} else {
			out = append(out, cur)
			cur = m.Twin(cur)
		}
		counter++
		if cur == start {
			break
		}
	}
	return out
}

// reassignEraseForCollapseEdge handles one side of a double-triangle
// edge collapse: the triangle's two non-collapsed edges merge into one,
// its inner half-edges and one edge record are erased, and the
// triangle's face is erased. newV is the vertex the collapse is
// merging onto.
func reassignEraseForCollapseEdge(m *halfedge.Mesh, h0 halfedge.HalfedgeRef, newV halfedge.VertexRef) {
	face := m.HeFace(h0)

	h1 := m.Next(h0)
	h2 := m.Next(h1)
	h3 := m.Twin(h2)
	h4 := m.Twin(h1)

	v := m.HeVertex(h2)

	e1 := m.HeEdge(h1)
	e2 := m.HeEdge(h2)

	m.SetTwin(h3, h4)
	m.SetTwin(h4, h3)
	m.SetHeEdge(h4, e2)
	m.SetEdgeHalfedge(e2, h4)
	if m.VertexHalfedge(v) == h2 {
		m.SetVertexHalfedge(v, h4)
	}
	m.SetVertexHalfedge(newV, h3)

	m.EraseFace(face)
	m.EraseHalfedge(h1)
	m.EraseHalfedge(h2)
	m.EraseEdge(e1)
}

// canCollapseEdge implements the link condition: e must be interior, its
// endpoints must not already coincide, neither incident triangle may
// already be degenerate, and the two endpoints must share exactly two
// neighbour vertices.
func canCollapseEdge(m *halfedge.Mesh, e halfedge.EdgeRef) bool {
	if m.IsBoundaryEdge(e) {
		return false
	}

	h0 := m.EdgeHalfedge(e)
	h2 := m.Next(h0)
	h4 := m.Next(h2)
	h1 := m.Twin(h0)
	h3 := m.Next(h1)
	h5 := m.Next(h3)
	e2 := m.HeEdge(h2)
	e4 := m.HeEdge(h4)
	e1 := m.HeEdge(h5)
	e3 := m.HeEdge(h3)

	if m.HeVertex(h0) == m.HeVertex(h1) || e3 == e4 || e1 == e2 {
		return false
	}

	v0Neighbors := map[halfedge.VertexRef]bool{}
	for h := h0; ; {
		v0Neighbors[m.HeVertex(m.Twin(h))] = true
		h = m.Next(m.Twin(h))
		if h == h0 {
			break
		}
	}
	v1Neighbors := map[halfedge.VertexRef]bool{}
	for h := h1; ; {
		v1Neighbors[m.HeVertex(m.Twin(h))] = true
		h = m.Next(m.Twin(h))
		if h == h1 {
			break
		}
	}

	shared := 0
	for v := range v0Neighbors {
		if v1Neighbors[v] {
			shared++
		}
	}
	return shared == 2
}

// halfedgeFromVertex returns the half-edge on f whose origin is v, or
// f's canonical half-edge if none matches.
func halfedgeFromVertex(m *halfedge.Mesh, f halfedge.FaceRef, v halfedge.VertexRef) halfedge.HalfedgeRef {
	start := m.FaceHalfedge(f)
	h := start
	for {
		if m.HeVertex(h) == v {
			return h
		}
		h = m.Next(h)
		if h == start {
			return h
		}
	}
}

// halfedgeToVertexOnFace returns the half-edge on f whose destination is
// v, or f's canonical half-edge if none matches.
func halfedgeToVertexOnFace(m *halfedge.Mesh, f halfedge.FaceRef, v halfedge.VertexRef) halfedge.HalfedgeRef {
	start := m.FaceHalfedge(f)
	h := start
	for {
		if m.HeVertex(m.Next(h)) == v {
			return h
		}
		h = m.Next(h)
		if h == start {
			return h
		}
	}
}
