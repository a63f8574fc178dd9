// Package remesh implements the global mesh operators that rebuild large
// parts of a mesh's connectivity in one pass rather than incrementally:
// fan triangulation, the subdivision position kernels and driver, Loop
// subdivision, and isotropic remeshing.
package remesh

import (
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/samber/lo"
)

// Triangulate fan-triangulates every face of arity greater than 3 from
// the origin vertex of its canonical half-edge, leaving triangular faces
// untouched. Boundary faces are skipped; they bound holes, not geometry.
func Triangulate(m *halfedge.Mesh) {
	var allFaces []halfedge.FaceRef
	for f := range m.Faces() {
		allFaces = append(allFaces, f)
	}
	faces := lo.Filter(allFaces, func(f halfedge.FaceRef, _ int) bool { return !m.IsBoundary(f) })
	for _, f := range faces {
		triangulateFace(m, f)
	}
}

func triangulateFace(m *halfedge.Mesh, f halfedge.FaceRef) {
	var ogHalfedges []halfedge.HalfedgeRef
	for h := range m.FaceHalfedges(f) {
		ogHalfedges = append(ogHalfedges, h)
	}
	n := len(ogHalfedges)
	if n == 3 {
		return
	}

	newFaces := make([]halfedge.FaceRef, 0, n-2)
	halfedgesFromV := []halfedge.HalfedgeRef{ogHalfedges[0]}
	for i := 1; i < n-2; i++ {
		newFaces = append(newFaces, m.NewFace())
		halfedgesFromV = append(halfedgesFromV, m.NewHalfedge())
	}
	newFaces = append(newFaces, f)

	for i := 1; i < n-2; i++ {
		edge := m.NewEdge()
		fromV := halfedgesFromV[i]
		toV := m.NewHalfedge()

		m.SetNeighbors(toV, halfedgesFromV[i-1], fromV, m.HeVertex(ogHalfedges[i+1]), edge, newFaces[i-1])
		m.SetNeighbors(fromV, ogHalfedges[i+1], toV, m.HeVertex(ogHalfedges[0]), edge, newFaces[i])

		m.SetNext(ogHalfedges[i], toV)
		m.SetHeFace(ogHalfedges[i], newFaces[i-1])

		m.SetFaceHalfedge(newFaces[i-1], toV)
		m.SetEdgeHalfedge(edge, fromV)
	}

	m.SetHeFace(halfedgesFromV[0], newFaces[0])
	m.SetFaceHalfedge(newFaces[len(newFaces)-1], ogHalfedges[n-1])
	m.SetNext(ogHalfedges[n-1], halfedgesFromV[len(halfedgesFromV)-1])
}
