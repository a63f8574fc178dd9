package halfedge

import "github.com/chazu/halfmesh/pkg/geom"

// FaceHalfedges iterates the half-edges bounding f in face order,
// starting from f's representative half-edge.
func (m *Mesh) FaceHalfedges(f FaceRef) func(func(HalfedgeRef) bool) {
	start := m.FaceHalfedge(f)
	return func(yield func(HalfedgeRef) bool) {
		if !start.Valid() {
			return
		}
		h := start
		for {
			if !yield(h) {
				return
			}
			h = m.Next(h)
			if h == start {
				return
			}
		}
	}
}

// VertexOutgoing iterates v's outgoing half-edges by stepping to
// Next(Twin(h)), which runs clockwise around the vertex when faces are
// wound counterclockwise, i.e. the "umbrella" used by split/collapse to
// locate neighboring edges and faces.
func (m *Mesh) VertexOutgoing(v VertexRef) func(func(HalfedgeRef) bool) {
	start := m.VertexHalfedge(v)
	return func(yield func(HalfedgeRef) bool) {
		if !start.Valid() {
			return
		}
		h := start
		for {
			if !yield(h) {
				return
			}
			h = m.Next(m.Twin(h))
			if h == start {
				return
			}
		}
	}
}

// FaceArity returns the number of sides of f.
func (m *Mesh) FaceArity(f FaceRef) int {
	n := 0
	for range m.FaceHalfedges(f) {
		n++
	}
	return n
}

// VertexDegree returns the number of edges incident to v.
func (m *Mesh) VertexDegree(v VertexRef) int {
	n := 0
	for range m.VertexOutgoing(v) {
		n++
	}
	return n
}

// IsBoundaryHalfedge reports whether h borders the mesh boundary, i.e.
// its face or its twin's face is the boundary sentinel.
func (m *Mesh) IsBoundaryHalfedge(h HalfedgeRef) bool {
	return m.IsBoundary(m.HeFace(h)) || m.IsBoundary(m.HeFace(m.Twin(h)))
}

// IsBoundaryEdge reports whether e borders the mesh boundary.
func (m *Mesh) IsBoundaryEdge(e EdgeRef) bool {
	return m.IsBoundaryHalfedge(m.EdgeHalfedge(e))
}

// IsBoundaryVertex reports whether v lies on the mesh boundary.
func (m *Mesh) IsBoundaryVertex(v VertexRef) bool {
	for h := range m.VertexOutgoing(v) {
		if m.IsBoundaryHalfedge(h) {
			return true
		}
	}
	return false
}

// EdgeVertices returns the two endpoints of e, in the order (origin of
// e's representative half-edge, origin of its twin).
func (m *Mesh) EdgeVertices(e EdgeRef) (VertexRef, VertexRef) {
	h := m.EdgeHalfedge(e)
	return m.HeVertex(h), m.HeVertex(m.Twin(h))
}

// FaceVertices returns the vertices bounding f in face order.
func (m *Mesh) FaceVertices(f FaceRef) []VertexRef {
	var vs []VertexRef
	for h := range m.FaceHalfedges(f) {
		vs = append(vs, m.HeVertex(h))
	}
	return vs
}

// FaceCentroid returns the average position of f's vertices.
func (m *Mesh) FaceCentroid(f FaceRef) geom.Vec3 {
	var sum geom.Vec3
	n := 0
	for h := range m.FaceHalfedges(f) {
		sum = sum.Add(m.Pos(m.HeVertex(h)))
		n++
	}
	if n == 0 {
		return sum
	}
	return sum.Mul(1.0 / float64(n))
}

// FaceNormal returns f's unit normal, computed from the cross product of
// the first two edges of its boundary loop, matching
// Halfedge_Mesh::Face::normal in the original implementation.
func (m *Mesh) FaceNormal(f FaceRef) geom.Vec3 {
	h := m.FaceHalfedge(f)
	p0 := m.Pos(m.HeVertex(h))
	h1 := m.Next(h)
	p1 := m.Pos(m.HeVertex(h1))
	p2 := m.Pos(m.HeVertex(m.Next(h1)))
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// VertexNormal returns v's unit normal, the average of the normals of its
// incident non-boundary faces.
func (m *Mesh) VertexNormal(v VertexRef) geom.Vec3 {
	var sum geom.Vec3
	for h := range m.VertexOutgoing(v) {
		f := m.HeFace(h)
		if m.IsBoundary(f) {
			continue
		}
		sum = sum.Add(m.FaceNormal(f))
	}
	if sum.Len() == 0 {
		return sum
	}
	return sum.Normalize()
}

// eraseHalfedgePair erases h and its twin together.
func (m *Mesh) eraseHalfedgePair(h HalfedgeRef) {
	t := m.Twin(h)
	m.EraseHalfedge(h)
	if t.Valid() {
		m.EraseHalfedge(t)
	}
}
