package halfedge

import "github.com/chazu/halfmesh/pkg/geom"

// Vertex returns a copy of v's attributes.
func (m *Mesh) Vertex(v VertexRef) Vertex { return m.vertices[v].v }

// Edge returns a copy of e's attributes.
func (m *Mesh) Edge(e EdgeRef) Edge { return m.edges[e].e }

// Face returns a copy of f's attributes.
func (m *Mesh) Face(f FaceRef) Face { return m.faces[f].f }

// Halfedge returns a copy of h's attributes.
func (m *Mesh) Halfedge(h HalfedgeRef) Halfedge { return m.halfedges[h].h }

// SetVertex overwrites v's attributes.
func (m *Mesh) SetVertex(v VertexRef, val Vertex) { m.vertices[v].v = val }

// SetEdge overwrites e's attributes.
func (m *Mesh) SetEdge(e EdgeRef, val Edge) { m.edges[e].e = val }

// SetFace overwrites f's attributes.
func (m *Mesh) SetFace(f FaceRef, val Face) { m.faces[f].f = val }

// SetHalfedge overwrites h's attributes.
func (m *Mesh) SetHalfedge(h HalfedgeRef, val Halfedge) { m.halfedges[h].h = val }

// Pos returns v's position.
func (m *Mesh) Pos(v VertexRef) geom.Vec3 { return m.vertices[v].v.Pos }

// SetPos sets v's position.
func (m *Mesh) SetPos(v VertexRef, p geom.Vec3) { m.vertices[v].v.Pos = p }

// VertexHalfedge returns one of v's outgoing half-edges.
func (m *Mesh) VertexHalfedge(v VertexRef) HalfedgeRef { return m.vertices[v].v.Halfedge }

// SetVertexHalfedge sets v's representative outgoing half-edge.
func (m *Mesh) SetVertexHalfedge(v VertexRef, h HalfedgeRef) { m.vertices[v].v.Halfedge = h }

// EdgeHalfedge returns one of e's two half-edges.
func (m *Mesh) EdgeHalfedge(e EdgeRef) HalfedgeRef { return m.edges[e].e.Halfedge }

// SetEdgeHalfedge sets e's representative half-edge.
func (m *Mesh) SetEdgeHalfedge(e EdgeRef, h HalfedgeRef) { m.edges[e].e.Halfedge = h }

// FaceHalfedge returns one of f's incident half-edges.
func (m *Mesh) FaceHalfedge(f FaceRef) HalfedgeRef { return m.faces[f].f.Halfedge }

// SetFaceHalfedge sets f's representative half-edge.
func (m *Mesh) SetFaceHalfedge(f FaceRef, h HalfedgeRef) { m.faces[f].f.Halfedge = h }

// VertexNewPos returns v's scratch subdivision position.
func (m *Mesh) VertexNewPos(v VertexRef) geom.Vec3 { return m.vertices[v].v.NewPos }

// SetVertexNewPos sets v's scratch subdivision position.
func (m *Mesh) SetVertexNewPos(v VertexRef, p geom.Vec3) { m.vertices[v].v.NewPos = p }

// VertexIsNew reports whether v was created by the current remesh pass.
func (m *Mesh) VertexIsNew(v VertexRef) bool { return m.vertices[v].v.IsNew }

// SetVertexIsNew sets v's remesher scratch flag.
func (m *Mesh) SetVertexIsNew(v VertexRef, isNew bool) { m.vertices[v].v.IsNew = isNew }

// EdgeNewPos returns e's scratch subdivision position.
func (m *Mesh) EdgeNewPos(e EdgeRef) geom.Vec3 { return m.edges[e].e.NewPos }

// SetEdgeNewPos sets e's scratch subdivision position.
func (m *Mesh) SetEdgeNewPos(e EdgeRef, p geom.Vec3) { m.edges[e].e.NewPos = p }

// EdgeIsNew reports whether e was created by the current remesh pass.
func (m *Mesh) EdgeIsNew(e EdgeRef) bool { return m.edges[e].e.IsNew }

// SetEdgeIsNew sets e's remesher scratch flag.
func (m *Mesh) SetEdgeIsNew(e EdgeRef, isNew bool) { m.edges[e].e.IsNew = isNew }

// FaceNewPos returns f's scratch subdivision position.
func (m *Mesh) FaceNewPos(f FaceRef) geom.Vec3 { return m.faces[f].f.NewPos }

// SetFaceNewPos sets f's scratch subdivision position.
func (m *Mesh) SetFaceNewPos(f FaceRef, p geom.Vec3) { m.faces[f].f.NewPos = p }

// IsBoundary reports whether f is the sentinel face bounding a hole.
func (m *Mesh) IsBoundary(f FaceRef) bool { return f.Valid() && m.faces[f].f.Boundary }

// Next returns h's successor around its face.
func (m *Mesh) Next(h HalfedgeRef) HalfedgeRef { return m.halfedges[h].h.Next }

// Twin returns h's opposite half-edge.
func (m *Mesh) Twin(h HalfedgeRef) HalfedgeRef { return m.halfedges[h].h.Twin }

// HeVertex returns h's origin vertex.
func (m *Mesh) HeVertex(h HalfedgeRef) VertexRef { return m.halfedges[h].h.Vertex }

// HeEdge returns h's edge.
func (m *Mesh) HeEdge(h HalfedgeRef) EdgeRef { return m.halfedges[h].h.Edge }

// HeFace returns h's face.
func (m *Mesh) HeFace(h HalfedgeRef) FaceRef { return m.halfedges[h].h.Face }

// SetNext sets h's successor.
func (m *Mesh) SetNext(h, next HalfedgeRef) { m.halfedges[h].h.Next = next }

// SetTwin sets h's twin.
func (m *Mesh) SetTwin(h, twin HalfedgeRef) { m.halfedges[h].h.Twin = twin }

// SetHeVertex sets h's origin vertex.
func (m *Mesh) SetHeVertex(h HalfedgeRef, v VertexRef) { m.halfedges[h].h.Vertex = v }

// SetHeEdge sets h's edge.
func (m *Mesh) SetHeEdge(h HalfedgeRef, e EdgeRef) { m.halfedges[h].h.Edge = e }

// SetHeFace sets h's face.
func (m *Mesh) SetHeFace(h HalfedgeRef, f FaceRef) { m.halfedges[h].h.Face = f }

// Prev walks forward around h's face until it finds the half-edge whose
// Next is h. Faces are small in practice, so a linear search is cheaper
// than maintaining an explicit Prev pointer on every half-edge.
func (m *Mesh) Prev(h HalfedgeRef) HalfedgeRef {
	cur := m.Next(h)
	for cur != h {
		next := m.Next(cur)
		if next == h {
			return cur
		}
		cur = next
	}
	return h
}

// SetNeighbors rewrites all five connectivity fields of h in one call,
// mirroring the original's Halfedge::set_neighbors convenience method
// used throughout the local operators to rewire a half-edge atomically.
func (m *Mesh) SetNeighbors(h, next, twin HalfedgeRef, v VertexRef, e EdgeRef, f FaceRef) {
	m.halfedges[h].h = Halfedge{Next: next, Twin: twin, Vertex: v, Edge: e, Face: f}
}
