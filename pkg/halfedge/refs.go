// Package halfedge implements the element store and connectivity
// primitives of a manifold half-edge polygon mesh: arenas for vertices,
// edges, faces and half-edges, addressed by stable integer handles that
// survive allocation and deferred erasure.
package halfedge

// VertexRef, EdgeRef, FaceRef and HalfedgeRef are dense integer handles
// into their respective arenas. The zero value of each is a live handle
// to the first arena element, not a null marker; use the NoXxx sentinels
// (-1) to represent "no element", mirroring the
// EmptyVertex/EmptyEdge/EmptyFace convention of index-based half-edge
// meshes.
type (
	VertexRef   int32
	EdgeRef     int32
	FaceRef     int32
	HalfedgeRef int32
)

// NoVertex, NoEdge, NoFace and NoHalfedge are the null sentinels returned
// by refusing operators in place of std::nullopt.
const (
	NoVertex   VertexRef   = -1
	NoEdge     EdgeRef     = -1
	NoFace     FaceRef     = -1
	NoHalfedge HalfedgeRef = -1
)

// Valid reports whether the ref is not a null sentinel. It does not by
// itself guarantee the element is still live; use Mesh.VertexLive et al.
// for that.
func (r VertexRef) Valid() bool   { return r != NoVertex }
func (r EdgeRef) Valid() bool     { return r != NoEdge }
func (r FaceRef) Valid() bool     { return r != NoFace }
func (r HalfedgeRef) Valid() bool { return r != NoHalfedge }
