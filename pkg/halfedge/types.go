package halfedge

import "github.com/chazu/halfmesh/pkg/geom"

// Vertex holds the attributes of a mesh vertex. NewPos and IsNew are
// scratch fields owned by the global remeshers in pkg/remesh; local
// operators in pkg/meshedit must not rely on them persisting across calls.
type Vertex struct {
	Pos      geom.Vec3
	NewPos   geom.Vec3
	IsNew    bool
	Halfedge HalfedgeRef // one outgoing half-edge
}

// Edge holds the attributes of a mesh edge (an unordered pair of
// half-edges). NewPos and IsNew are remesher scratch fields, as for Vertex.
type Edge struct {
	NewPos   geom.Vec3
	IsNew    bool
	Halfedge HalfedgeRef // either of its two half-edges
}

// Face holds the attributes of a mesh face. Boundary marks a sentinel
// face used to close a hole in the surface; half-edges around a boundary
// face form the mesh boundary.
type Face struct {
	Boundary bool
	NewPos   geom.Vec3
	Halfedge HalfedgeRef // one incident half-edge
}

// Halfedge is a directed side of an edge.
type Halfedge struct {
	Next, Twin HalfedgeRef
	Vertex     VertexRef // origin
	Edge       EdgeRef
	Face       FaceRef
}

type vertexSlot struct {
	v    Vertex
	live bool
}

type edgeSlot struct {
	e    Edge
	live bool
}

type faceSlot struct {
	f    Face
	live bool
}

type halfedgeSlot struct {
	h    Halfedge
	live bool
}

// Mesh is the element store: per-kind arenas of vertices, edges, faces
// and half-edges, addressed by stable Ref handles. Elements are created
// via the New* allocators and logically erased via the Erase* methods; erased elements
// remain dereferenceable (their data is still readable through their Ref)
// until Validate physically compacts the arenas.
type Mesh struct {
	vertices   []vertexSlot
	edges      []edgeSlot
	faces      []faceSlot
	halfedges  []halfedgeSlot
	liveV      int
	liveE      int
	liveF      int
	liveHE     int
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}
