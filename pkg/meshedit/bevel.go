package meshedit

import (
	"math"

	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
)

// BevelFace replaces f with a central face of the same arity, a ring of
// quadrilateral side faces (one per original vertex), and a matching
// ring of new vertices initially placed at the original vertex
// positions. It updates connectivity only; call BevelFacePositions
// afterward to offset the new vertices.
func BevelFace(m *halfedge.Mesh, f halfedge.FaceRef) (halfedge.FaceRef, bool) {
	newFace := m.NewFace()
	ogVertices := m.FaceVertices(f)
	n := len(ogVertices)

	faces := make([]halfedge.FaceRef, n)
	newVertices := make([]halfedge.VertexRef, n)
	edgesToOld := make([]halfedge.EdgeRef, n)
	edgesToNext := make([]halfedge.EdgeRef, n)
	hToOld := make([]halfedge.HalfedgeRef, n)
	hToNext := make([]halfedge.HalfedgeRef, n)
	hFromOld := make([]halfedge.HalfedgeRef, n)
	hFromNext := make([]halfedge.HalfedgeRef, n)

	for i := 0; i < n; i++ {
		faces[i] = m.NewFace()
		newVertices[i] = m.NewVertex()
		edgesToOld[i] = m.NewEdge()
		edgesToNext[i] = m.NewEdge()
		hToOld[i] = m.NewHalfedge()
		hToNext[i] = m.NewHalfedge()
		hFromOld[i] = m.NewHalfedge()
		hFromNext[i] = m.NewHalfedge()
	}

	hesFromOg := make([]halfedge.HalfedgeRef, n)
	hesToOg := make([]halfedge.HalfedgeRef, n)
	for i := 0; i < n; i++ {
		hesFromOg[i] = halfedgeFromVertex(m, f, ogVertices[i])
		hesToOg[i] = halfedgeToVertexOnFace(m, f, ogVertices[i])
	}

	for i := 0; i < n; i++ {
		nextI := (i + 1) % n
		prevI := (i - 1 + n) % n

		newSmallFace := faces[i]
		v := newVertices[i]
		edgeToOld := edgesToOld[i]
		edgeToNext := edgesToNext[i]
		hVToOld := hToOld[i]
		hVToNext := hToNext[i]
		hVFromOld := hFromOld[i]
		hVFromNext := hFromNext[i]

		heFromOg := hesFromOg[i]
		heToOg := hesToOg[i]
		nVertex := newVertices[nextI]

		m.SetNeighbors(hVToOld, heFromOg, hVFromOld, v, edgeToOld, newSmallFace)
		m.SetNeighbors(hVFromOld, hFromNext[prevI], hVToOld, ogVertices[i], edgeToOld, faces[prevI])
		m.SetNeighbors(hVToNext, hToNext[nextI], hVFromNext, v, edgeToNext, newFace)
		m.SetNeighbors(hVFromNext, hVToOld, hVToNext, nVertex, edgeToNext, newSmallFace)

		m.SetNext(heToOg, hVFromOld)
		m.SetNext(heFromOg, hFromOld[nextI])
		m.SetHeFace(heFromOg, newSmallFace)
		m.SetHeFace(heToOg, faces[prevI])

		m.SetEdgeHalfedge(edgeToOld, hVToOld)
		m.SetEdgeHalfedge(edgeToNext, hVToNext)

		m.SetVertexHalfedge(v, hVToOld)
		m.SetPos(v, m.Pos(ogVertices[i]))

		m.SetFaceHalfedge(newSmallFace, heFromOg)
	}

	m.SetFaceHalfedge(newFace, hToNext[0])
	m.EraseFace(f)

	return newFace, true
}

// BevelFacePositions repositions the ring of vertices created by
// BevelFace according to a tangential and a normal offset from their
// starting positions (as captured by the caller before the first call).
// If flipOrientation is set, normalOffset is negated.
func BevelFacePositions(m *halfedge.Mesh, startPositions []geom.Vec3, face halfedge.FaceRef, tangentOffset, normalOffset float64, flipOrientation bool) {
	if flipOrientation {
		normalOffset = -normalOffset
	}

	var ring []halfedge.HalfedgeRef
	start := m.FaceHalfedge(face)
	h := start
	for {
		ring = append(ring, h)
		h = m.Next(h)
		if h == start {
			break
		}
	}
	n := len(ring)
	normal := m.FaceNormal(face)

	for i := 0; i < n; i++ {
		pi := startPositions[i]
		prev := startPositions[(i+n-1)%n]
		next := startPositions[(i+1)%n]
		toPrev := prev.Sub(pi).Normalize()
		toNext := next.Sub(pi).Normalize()
		tangent := toPrev.Add(toNext).Mul(1.0 / (math.Sqrt2 / 2.0))
		pos := pi.Add(normal.Mul(normalOffset)).Add(tangent.Mul(tangentOffset))
		m.SetPos(m.HeVertex(ring[i]), pos)
	}
}

// BevelVertex is a permissible refusal: the source leaves vertex bevel
// unimplemented.
func BevelVertex(m *halfedge.Mesh, v halfedge.VertexRef) (halfedge.FaceRef, bool) {
	return halfedge.NoFace, false
}

// BevelEdge is a permissible refusal: the source leaves edge bevel
// unimplemented.
func BevelEdge(m *halfedge.Mesh, e halfedge.EdgeRef) (halfedge.FaceRef, bool) {
	return halfedge.NoFace, false
}

// BevelVertexPositions accepts the same inputs as BevelFacePositions but
// leaves positions unchanged in the core.
func BevelVertexPositions(m *halfedge.Mesh, startPositions []geom.Vec3, face halfedge.FaceRef, tangentOffset, normalOffset float64, flipOrientation bool) {
}

// BevelEdgePositions accepts the same inputs as BevelFacePositions but
// leaves positions unchanged in the core.
func BevelEdgePositions(m *halfedge.Mesh, startPositions []geom.Vec3, face halfedge.FaceRef, tangentOffset, normalOffset float64, flipOrientation bool) {
}
