package halfedge

// NewVertex allocates a new vertex and returns its ref.
func (m *Mesh) NewVertex() VertexRef {
	m.vertices = append(m.vertices, vertexSlot{live: true})
	m.liveV++
	return VertexRef(len(m.vertices) - 1)
}

// NewEdge allocates a new edge and returns its ref.
func (m *Mesh) NewEdge() EdgeRef {
	m.edges = append(m.edges, edgeSlot{live: true})
	m.liveE++
	return EdgeRef(len(m.edges) - 1)
}

// NewFace allocates a new face and returns its ref.
func (m *Mesh) NewFace() FaceRef {
	m.faces = append(m.faces, faceSlot{live: true})
	m.liveF++
	return FaceRef(len(m.faces) - 1)
}

// NewHalfedge allocates a new half-edge and returns its ref.
func (m *Mesh) NewHalfedge() HalfedgeRef {
	m.halfedges = append(m.halfedges, halfedgeSlot{live: true})
	m.liveHE++
	return HalfedgeRef(len(m.halfedges) - 1)
}

// EraseVertex logically erases v. Its data remains readable through v
// until Validate compacts the arena; v must not be reused as a live
// handle after this call.
func (m *Mesh) EraseVertex(v VertexRef) {
	s := &m.vertices[v]
	if s.live {
		s.live = false
		m.liveV--
	}
}

// EraseEdge logically erases e, as EraseVertex does for vertices.
func (m *Mesh) EraseEdge(e EdgeRef) {
	s := &m.edges[e]
	if s.live {
		s.live = false
		m.liveE--
	}
}

// EraseFace logically erases f, as EraseVertex does for vertices.
func (m *Mesh) EraseFace(f FaceRef) {
	s := &m.faces[f]
	if s.live {
		s.live = false
		m.liveF--
	}
}

// EraseHalfedge logically erases h, as EraseVertex does for vertices.
func (m *Mesh) EraseHalfedge(h HalfedgeRef) {
	s := &m.halfedges[h]
	if s.live {
		s.live = false
		m.liveHE--
	}
}

// VertexLive, EdgeLive, FaceLive and HalfedgeLive report whether a ref
// still denotes a live element. A ref that has never been issued by this
// mesh is out of range and not checked here; callers are expected to only
// pass refs they obtained from the mesh itself.
func (m *Mesh) VertexLive(v VertexRef) bool   { return v.Valid() && m.vertices[v].live }
func (m *Mesh) EdgeLive(e EdgeRef) bool       { return e.Valid() && m.edges[e].live }
func (m *Mesh) FaceLive(f FaceRef) bool       { return f.Valid() && m.faces[f].live }
func (m *Mesh) HalfedgeLive(h HalfedgeRef) bool { return h.Valid() && m.halfedges[h].live }

// NumVertices, NumEdges, NumFaces and NumHalfedges report the exact live
// element counts, independent of whether Validate has compacted the
// underlying arenas yet.
func (m *Mesh) NumVertices() int   { return m.liveV }
func (m *Mesh) NumEdges() int      { return m.liveE }
func (m *Mesh) NumFaces() int      { return m.liveF }
func (m *Mesh) NumHalfedges() int  { return m.liveHE }

// Vertices iterates the live vertex refs in arena order.
func (m *Mesh) Vertices() func(func(VertexRef) bool) {
	return func(yield func(VertexRef) bool) {
		for i, s := range m.vertices {
			if s.live && !yield(VertexRef(i)) {
				return
			}
		}
	}
}

// Edges iterates the live edge refs in arena order.
func (m *Mesh) Edges() func(func(EdgeRef) bool) {
	return func(yield func(EdgeRef) bool) {
		for i, s := range m.edges {
			if s.live && !yield(EdgeRef(i)) {
				return
			}
		}
	}
}

// Faces iterates the live face refs in arena order, including boundary
// faces; callers that want only interior faces should test Boundary.
func (m *Mesh) Faces() func(func(FaceRef) bool) {
	return func(yield func(FaceRef) bool) {
		for i, s := range m.faces {
			if s.live && !yield(FaceRef(i)) {
				return
			}
		}
	}
}

// Halfedges iterates the live half-edge refs in arena order.
func (m *Mesh) Halfedges() func(func(HalfedgeRef) bool) {
	return func(yield func(HalfedgeRef) bool) {
		for i, s := range m.halfedges {
			if s.live && !yield(HalfedgeRef(i)) {
				return
			}
		}
	}
}

// Remap translates refs issued before a Validate call to their
// post-compaction value. A ref that was erased translates to the
// corresponding NoXxx sentinel.
type Remap struct {
	vertex   []VertexRef
	edge     []EdgeRef
	face     []FaceRef
	halfedge []HalfedgeRef
}

// Vertex, Edge, Face and Halfedge translate a pre-Validate ref to its
// post-Validate value.
func (r Remap) Vertex(v VertexRef) VertexRef     { return r.vertex[v] }
func (r Remap) Edge(e EdgeRef) EdgeRef           { return r.edge[e] }
func (r Remap) Face(f FaceRef) FaceRef           { return r.face[f] }
func (r Remap) Halfedge(h HalfedgeRef) HalfedgeRef { return r.halfedge[h] }

// Validate physically compacts the arenas, discarding erased elements and
// reassigning dense indices to the survivors. Every ref cached by a
// caller before Validate is invalidated by the call; operators that need
// to keep working with refs across a compaction must translate them
// through the returned Remap.
func (m *Mesh) Validate() Remap {
	vMap := make([]VertexRef, len(m.vertices))
	eMap := make([]EdgeRef, len(m.edges))
	fMap := make([]FaceRef, len(m.faces))
	hMap := make([]HalfedgeRef, len(m.halfedges))

	newV := make([]vertexSlot, 0, m.liveV)
	for i, s := range m.vertices {
		if s.live {
			vMap[i] = VertexRef(len(newV))
			newV = append(newV, s)
		} else {
			vMap[i] = NoVertex
		}
	}
	newE := make([]edgeSlot, 0, m.liveE)
	for i, s := range m.edges {
		if s.live {
			eMap[i] = EdgeRef(len(newE))
			newE = append(newE, s)
		} else {
			eMap[i] = NoEdge
		}
	}
	newF := make([]faceSlot, 0, m.liveF)
	for i, s := range m.faces {
		if s.live {
			fMap[i] = FaceRef(len(newF))
			newF = append(newF, s)
		} else {
			fMap[i] = NoFace
		}
	}
	newH := make([]halfedgeSlot, 0, m.liveHE)
	for i, s := range m.halfedges {
		if s.live {
			hMap[i] = HalfedgeRef(len(newH))
			newH = append(newH, s)
		} else {
			hMap[i] = NoHalfedge
		}
	}

	for i := range newH {
		h := &newH[i].h
		h.Next = hMap[h.Next]
		h.Twin = hMap[h.Twin]
		h.Vertex = vMap[h.Vertex]
		h.Edge = eMap[h.Edge]
		h.Face = fMap[h.Face]
	}
	for i := range newV {
		newV[i].v.Halfedge = hMap[newV[i].v.Halfedge]
	}
	for i := range newE {
		newE[i].e.Halfedge = hMap[newE[i].e.Halfedge]
	}
	for i := range newF {
		newF[i].f.Halfedge = hMap[newF[i].f.Halfedge]
	}

	m.vertices, m.edges, m.faces, m.halfedges = newV, newE, newF, newH

	return Remap{vertex: vMap, edge: eMap, face: fMap, halfedge: hMap}
}
