package remesh

import (
	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/meshedit"
	"github.com/samber/lo"
)

// IsotropicRemesh re-triangulates a closed triangle mesh toward a uniform
// target edge length derived from the mesh's current mean edge length,
// running 6 passes of split/collapse/flip/smooth. It refuses (returning
// false) if any non-boundary face is not a triangle.
func IsotropicRemesh(m *halfedge.Mesh) bool {
	for f := range m.Faces() {
		if !m.IsBoundary(f) && m.FaceArity(f) != 3 {
			return false
		}
	}

	target := meanEdgeLength(m)
	if target == 0 {
		return false
	}

	for iter := 0; iter < 6; iter++ {
		splitLongEdges(m, 4*target/3)
		collapseShortEdges(m, 4*target/5)
		flipForDegree(m)
		tangentialSmooth(m)
	}
	return true
}

func meanEdgeLength(m *halfedge.Mesh) float64 {
	var sum float64
	n := 0
	for e := range m.Edges() {
		sum += edgeLength(m, e)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func edgeLength(m *halfedge.Mesh, e halfedge.EdgeRef) float64 {
	a, b := m.EdgeVertices(e)
	return m.Pos(a).Sub(m.Pos(b)).Len()
}

// splitLongEdges splits every edge of a pre-mutation snapshot whose
// length exceeds threshold. SplitEdge only ever appends, so refs taken
// before this loop starts remain meaningful throughout it.
func splitLongEdges(m *halfedge.Mesh, threshold float64) {
	var snapshot []halfedge.EdgeRef
	for e := range m.Edges() {
		snapshot = append(snapshot, e)
	}
	toSplit := lo.Filter(snapshot, func(e halfedge.EdgeRef, _ int) bool {
		return edgeLength(m, e) > threshold
	})
	for _, e := range toSplit {
		meshedit.SplitEdge(m, e)
	}
}

// collapseShortEdges repeatedly collapses the next live edge shorter
// than threshold, scanning the arena from where the previous scan stopped
// and wrapping around, using the physical-erasure variant, which recompacts
// the edge arena on every successful collapse; any ref taken before a
// collapse is meaningless afterward, so this walks the live arena by
// position rather than holding a snapshot across collapses. It stops
// once a full pass over the current edges finds nothing left to collapse.
func collapseShortEdges(m *halfedge.Mesh, threshold float64) {
	idx := 0
	for {
		n := m.NumEdges()
		if n == 0 {
			return
		}
		progressed := false
		for tries := 0; tries < n; tries++ {
			e := halfedge.EdgeRef(idx % n)
			idx++
			if edgeLength(m, e) < threshold {
				if _, ok := meshedit.CollapseEdgeErase(m, e); ok {
					progressed = true
					break
				}
			}
		}
		if !progressed {
			return
		}
	}
}

// flipForDegree flips every edge whose flip would reduce the sum of
// squared deviations of its four surrounding vertices' degrees from 6.
func flipForDegree(m *halfedge.Mesh) {
	var snapshot []halfedge.EdgeRef
	for e := range m.Edges() {
		snapshot = append(snapshot, e)
	}
	interior := lo.Filter(snapshot, func(e halfedge.EdgeRef, _ int) bool {
		f0 := m.HeFace(m.EdgeHalfedge(e))
		f1 := m.HeFace(m.Twin(m.EdgeHalfedge(e)))
		return !m.IsBoundary(f0) && !m.IsBoundary(f1)
	})
	for _, e := range interior {
		h0 := m.EdgeHalfedge(e)
		h1 := m.Twin(h0)

		oldA := m.HeVertex(h0)
		oldB := m.HeVertex(h1)
		apexA := m.HeVertex(m.Next(m.Next(h0)))
		apexB := m.HeVertex(m.Next(m.Next(h1)))

		dOldA := m.VertexDegree(oldA)
		dOldB := m.VertexDegree(oldB)
		dApexA := m.VertexDegree(apexA)
		dApexB := m.VertexDegree(apexB)

		before := degreeDeviation(dOldA) + degreeDeviation(dOldB) + degreeDeviation(dApexA) + degreeDeviation(dApexB)
		after := degreeDeviation(dOldA-1) + degreeDeviation(dOldB-1) + degreeDeviation(dApexA+1) + degreeDeviation(dApexB+1)
		if after < before {
			meshedit.FlipEdge(m, e)
		}
	}
}

func degreeDeviation(degree int) float64 {
	d := float64(degree) - 6
	return d * d
}

// tangentialSmooth moves every interior vertex toward the centroid of
// its neighbors, projected onto the plane orthogonal to its vertex
// normal, computing all new positions from the pre-smoothing mesh before
// writing any of them back.
func tangentialSmooth(m *halfedge.Mesh) {
	var vertices []halfedge.VertexRef
	for v := range m.Vertices() {
		vertices = append(vertices, v)
	}

	for _, v := range vertices {
		if m.IsBoundaryVertex(v) {
			m.SetVertexNewPos(v, m.Pos(v))
			continue
		}
		var centroid geom.Vec3
		n := 0
		for h := range m.VertexOutgoing(v) {
			centroid = centroid.Add(m.Pos(m.HeVertex(m.Twin(h))))
			n++
		}
		centroid = centroid.Mul(1.0 / float64(n))
		normal := m.VertexNormal(v)
		offset := centroid.Sub(m.Pos(v))
		tangential := offset.Sub(normal.Mul(offset.Dot(normal)))
		m.SetVertexNewPos(v, m.Pos(v).Add(tangential))
	}

	for _, v := range vertices {
		m.SetPos(v, m.VertexNewPos(v))
	}
}
