package remesh

import (
	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
)

// LinearSubdividePositions writes the scratch new_pos fields for a linear
// (non-smoothing) quad subdivision: every vertex keeps its position,
// every edge gets the midpoint of its endpoints, and every face gets the
// arithmetic mean of its vertices. Boundary faces are left untouched.
func LinearSubdividePositions(m *halfedge.Mesh) {
	for v := range m.Vertices() {
		m.SetVertexNewPos(v, m.Pos(v))
	}
	for e := range m.Edges() {
		a, b := m.EdgeVertices(e)
		m.SetEdgeNewPos(e, m.Pos(a).Add(m.Pos(b)).Mul(0.5))
	}
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		m.SetFaceNewPos(f, m.FaceCentroid(f))
	}
}

// CatmullClarkSubdividePositions writes the scratch new_pos fields using
// the Catmull-Clark rules. Only meaningful on a mesh without boundary.
func CatmullClarkSubdividePositions(m *halfedge.Mesh) {
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		m.SetFaceNewPos(f, m.FaceCentroid(f))
	}

	for e := range m.Edges() {
		h := m.EdgeHalfedge(e)
		t := m.Twin(h)
		sum := m.FaceNewPos(m.HeFace(h)).Add(m.FaceNewPos(m.HeFace(t))).
			Add(m.Pos(m.HeVertex(h))).Add(m.Pos(m.HeVertex(t)))
		m.SetEdgeNewPos(e, sum.Mul(0.25))
	}

	for v := range m.Vertices() {
		n := float64(m.VertexDegree(v))
		var q, r geom.Vec3
		for h := range m.VertexOutgoing(v) {
			q = q.Add(m.FaceNewPos(m.HeFace(h)))
			r = r.Add(m.Pos(m.HeVertex(h)).Add(m.Pos(m.HeVertex(m.Twin(h)))).Mul(0.5))
		}
		q = q.Mul(1 / n)
		r = r.Mul(1 / n)
		m.SetVertexNewPos(v, q.Add(r.Mul(2)).Add(m.Pos(v).Mul(n-3)).Mul(1/n))
	}
}

// Subdivide consumes the new_pos scratch fields written by one of the
// position kernels above and rebuilds the mesh from scratch as a quad
// mesh: every live vertex, edge and non-boundary face of m becomes one
// vertex of the result, and each original face contributes one new quad
// per corner, circulating in the same orientation as the original face.
func Subdivide(m *halfedge.Mesh) (*halfedge.Mesh, error) {
	vertexIndex := make(map[halfedge.VertexRef]int)
	edgeIndex := make(map[halfedge.EdgeRef]int)
	faceIndex := make(map[halfedge.FaceRef]int)

	var positions []geom.Vec3
	for v := range m.Vertices() {
		vertexIndex[v] = len(positions)
		positions = append(positions, m.VertexNewPos(v))
	}
	for e := range m.Edges() {
		edgeIndex[e] = len(positions)
		positions = append(positions, m.EdgeNewPos(e))
	}
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		faceIndex[f] = len(positions)
		positions = append(positions, m.FaceNewPos(f))
	}

	var quads [][]int
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		for h := range m.FaceHalfedges(f) {
			leaving := m.HeEdge(h)
			entering := m.HeEdge(m.Prev(h))
			quads = append(quads, []int{
				vertexIndex[m.HeVertex(h)],
				edgeIndex[leaving],
				faceIndex[f],
				edgeIndex[entering],
			})
		}
	}

	return halfedge.BuildFromFaces(positions, quads)
}
