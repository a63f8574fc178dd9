package simplify

import (
	"math"

	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
)

// EdgeRecord is a candidate collapse for e: the point that minimizes the
// combined quadric error of its two endpoints, and the error at that
// point.
type EdgeRecord struct {
	Edge    halfedge.EdgeRef
	Optimal geom.Vec3
	Cost    float64
}

// NewEdgeRecord builds the Edge_Record for e from the current vertex
// quadrics of its two endpoints. Solving A*x = b for the combined
// quadric's critical point requires A to be non-singular; when
// |det(A)| is too small to trust, it falls back to the edge midpoint.
func NewEdgeRecord(m *halfedge.Mesh, vertexQuadrics map[halfedge.VertexRef]geom.Mat4, e halfedge.EdgeRef) EdgeRecord {
	va, vb := m.EdgeVertices(e)
	k := vertexQuadrics[va].Add(vertexQuadrics[vb])

	a := geom.ZeroMat4
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			a.Set(row, col, k.At(row, col))
		}
	}
	a.Set(3, 3, 1)
	b := geom.Vec3{-k.At(3, 0), -k.At(3, 1), -k.At(3, 2)}

	optimal := m.Pos(va).Add(m.Pos(vb)).Mul(0.5)
	if math.Abs(a.Det()) > 1e-4 {
		x := a.Inv().Mul4x1(geom.Vec4{b[0], b[1], b[2], 0})
		optimal = geom.Vec3{x[0], x[1], x[2]}
	}

	x4 := geom.Vec4FromVec3(optimal, 1)
	cost := k.Mul4x1(x4).Dot(x4)

	return EdgeRecord{Edge: e, Optimal: optimal, Cost: cost}
}
