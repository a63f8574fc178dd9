package meshedit

import "github.com/chazu/halfmesh/pkg/halfedge"

// CollapseEdge merges e's two endpoints into a single new vertex at
// their midpoint, removing e and, if either incident face is a
// triangle degenerating to an edge, removing that face too. Refuses
// when the link condition (canCollapseEdge) is violated. The erasure
// performed here is logical only: call Validate (or CollapseEdgeErase)
// before code that depends on exact live counts.
func CollapseEdge(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.VertexRef, bool) {
	if !canCollapseEdge(m, e) {
		return halfedge.NoVertex, false
	}

	h0 := m.EdgeHalfedge(e)
	h0t := m.Twin(h0)

	doubleTriangle := m.FaceArity(m.HeFace(h0)) == 3 && m.FaceArity(m.HeFace(h0t)) == 3

	v1 := m.HeVertex(h0)
	v2 := m.HeVertex(h0t)
	v3 := m.NewVertex()
	m.SetPos(v3, m.Pos(v1).Add(m.Pos(v2)).Mul(0.5))

	edgesV1 := getAllHalfedgesOfVertex(m, v1)
	edgesV2 := getAllHalfedgesOfVertex(m, v2)
	all := make([]halfedge.HalfedgeRef, 0, len(edgesV1)+len(edgesV2))
	all = append(all, edgesV1...)
	all = append(all, edgesV2...)
	for _, h := range all {
		m.SetHeVertex(h, v3)
	}
	m.SetVertexHalfedge(v3, all[0])

	if doubleTriangle {
		// e's own two half-edges are erased once below, by this
		// function; each side's other two half-edges and face are
		// erased once by the helper. No element is erased twice.
		reassignEraseForCollapseEdge(m, h0, v3)
		reassignEraseForCollapseEdge(m, h0t, v3)
	} else {
		fFace := m.HeFace(h0)
		tFace := m.HeFace(h0t)
		m.SetFaceHalfedge(fFace, m.Next(h0))
		m.SetFaceHalfedge(tFace, m.Next(h0t))

		h1 := m.Prev(h0)
		h2 := m.Prev(h0t)
		m.SetNext(h1, m.Next(h0))
		m.SetNext(h2, m.Next(h0t))

		// all[0] may be h0 or h0t, which are erased below; re-home v3 to
		// a half-edge that survives this branch.
		m.SetVertexHalfedge(v3, m.Next(h0))
	}

	m.EraseEdge(e)
	m.EraseHalfedge(h0)
	m.EraseHalfedge(h0t)
	m.EraseVertex(v1)
	m.EraseVertex(v2)

	return v3, true
}

// CanCollapseEdge reports whether e satisfies the link condition, without
// attempting the collapse. The simplifier uses this to skip a queued
// record without disturbing the mesh.
func CanCollapseEdge(m *halfedge.Mesh, e halfedge.EdgeRef) bool {
	return canCollapseEdge(m, e)
}

// CollapseEdgeErase performs CollapseEdge followed immediately by
// Validate, so that callers counting live elements (the isotropic
// remesher, the collapse-edge script builtin) see exact counts without a
// separate compaction pass. The simplifier instead calls CollapseEdge and
// Validate itself, since it needs the full Remap.
func CollapseEdgeErase(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.VertexRef, bool) {
	v, ok := CollapseEdge(m, e)
	if !ok {
		return halfedge.NoVertex, false
	}
	remap := m.Validate()
	return remap.Vertex(v), true
}

// CollapseFace is a permissible refusal: the source leaves face
// collapse unimplemented, and nothing in this kernel depends on it.
func CollapseFace(m *halfedge.Mesh, f halfedge.FaceRef) (halfedge.VertexRef, bool) {
	return halfedge.NoVertex, false
}

// EraseVertex replaces v and its incident edges and faces with a single
// face bounded by v's former one-ring. Refuses on a boundary vertex or
// when v is the mesh's last remaining vertex.
func EraseVertex(m *halfedge.Mesh, v halfedge.VertexRef) (halfedge.FaceRef, bool) {
	if m.IsBoundaryVertex(v) {
		return halfedge.NoFace, false
	}
	if m.NumVertices() <= 1 {
		return halfedge.NoFace, false
	}

	var toErase []halfedge.FaceRef
	var boundaryHalfedges []halfedge.HalfedgeRef
	var halfedgesToErase []halfedge.HalfedgeRef

	start := m.VertexHalfedge(v)
	h := start
	for {
		partial := collectHalfedgesBetween(m, m.Next(m.Twin(h)), h)
		boundaryHalfedges = append(boundaryHalfedges, partial...)
		halfedgesToErase = append(halfedgesToErase, h, m.Twin(h))
		toErase = append(toErase, m.HeFace(h))
		h = m.Next(m.Twin(h))
		if h == start {
			break
		}
	}

	for i, j := 0, len(boundaryHalfedges)-1; i < j; i, j = i+1, j-1 {
		boundaryHalfedges[i], boundaryHalfedges[j] = boundaryHalfedges[j], boundaryHalfedges[i]
	}

	face := m.NewFace()
	for i, bh := range boundaryHalfedges {
		m.SetHeFace(bh, face)
		if i < len(boundaryHalfedges)-1 {
			m.SetNext(bh, boundaryHalfedges[i+1])
		} else {
			m.SetNext(bh, boundaryHalfedges[0])
		}
	}
	m.SetFaceHalfedge(face, boundaryHalfedges[0])

	for _, f := range toErase {
		m.EraseFace(f)
	}
	for _, he := range halfedgesToErase {
		e := m.HeEdge(he)
		m.EraseHalfedge(he)
		m.EraseEdge(e)
	}
	m.EraseVertex(v)

	return face, true
}

// EraseEdge is a permissible refusal: the source leaves edge erasure
// unimplemented.
func EraseEdge(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.FaceRef, bool) {
	return halfedge.NoFace, false
}
