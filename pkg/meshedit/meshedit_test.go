package meshedit_test

import (
	"testing"

	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/meshedit"
)

func TestFlipEdgePreservesTriangulationAndDegrees(t *testing.T) {
	m := halfedge.Octahedron()
	wantDegrees := map[halfedge.VertexRef]int{}
	for v := range m.Vertices() {
		wantDegrees[v] = m.VertexDegree(v)
	}

	var e halfedge.EdgeRef
	for edge := range m.Edges() {
		e = edge
		break
	}

	got, ok := meshedit.FlipEdge(m, e)
	if !ok {
		t.Fatalf("FlipEdge refused on an interior octahedron edge")
	}
	if got != e {
		t.Fatalf("FlipEdge returned %d, want %d", got, e)
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after flip: %v", err)
	}

	h := m.EdgeHalfedge(e)
	if m.FaceArity(m.HeFace(h)) != 3 || m.FaceArity(m.HeFace(m.Twin(h))) != 3 {
		t.Fatalf("flip did not preserve triangular incident faces")
	}

	gotTotal, wantTotal := 0, 0
	for v, d := range wantDegrees {
		if m.VertexLive(v) {
			gotTotal += m.VertexDegree(v)
			wantTotal += d
		}
	}
	if gotTotal != wantTotal {
		t.Fatalf("sum of vertex degrees changed: got %d, want %d", gotTotal, wantTotal)
	}
}

func TestFlipEdgeRefusesNothingToFlipOnBoundary(t *testing.T) {
	// A single triangle has only boundary edges; flip must always refuse.
	m, err := halfedge.BuildFromFaces(
		[]geom.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][]int{{0, 1, 2}},
	)
	if err != nil {
		t.Fatalf("BuildFromFaces: %v", err)
	}
	for e := range m.Edges() {
		if _, ok := meshedit.FlipEdge(m, e); ok {
			t.Fatalf("FlipEdge succeeded on a boundary edge %d", e)
		}
	}
}

func TestSplitEdgeOnTetrahedron(t *testing.T) {
	m := halfedge.Tetrahedron()
	var e halfedge.EdgeRef
	for edge := range m.Edges() {
		e = edge
		break
	}
	v0, v1 := m.EdgeVertices(e)
	p0, p1 := m.Pos(v0), m.Pos(v1)
	want := p0.Add(p1).Mul(0.5)

	v, ok := meshedit.SplitEdge(m, e)
	if !ok {
		t.Fatalf("SplitEdge refused on an interior tetrahedron edge")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after split: %v", err)
	}
	if m.NumVertices() != 5 || m.NumEdges() != 9 || m.NumFaces() != 6 {
		t.Fatalf("counts after split = (%d,%d,%d), want (5,9,6)",
			m.NumVertices(), m.NumEdges(), m.NumFaces())
	}
	got := m.Pos(v)
	if got.Sub(want).Len() > 1e-9 {
		t.Fatalf("split vertex position = %v, want %v", got, want)
	}
	h := m.VertexHalfedge(v)
	dest := m.HeVertex(m.Twin(h))
	if dest != v0 && dest != v1 {
		t.Fatalf("split vertex's canonical halfedge does not lie along the original edge")
	}
}

func TestCollapseEdgeRefusalLeavesMeshUnchanged(t *testing.T) {
	m := halfedge.Tetrahedron()

	// Repeatedly collapse whatever edge is collapsible, verifying that
	// refused attempts never mutate the mesh and accepted ones preserve
	// every invariant, until no edge collapses any further.
	for {
		progressed := false
		for edge := range m.Edges() {
			beforeV, beforeE, beforeF := m.NumVertices(), m.NumEdges(), m.NumFaces()
			if _, ok := meshedit.CollapseEdgeErase(m, edge); ok {
				progressed = true
				if err := m.CheckInvariants(); err != nil {
					t.Fatalf("CheckInvariants after collapse: %v", err)
				}
				break
			}
			if m.NumVertices() != beforeV || m.NumEdges() != beforeE || m.NumFaces() != beforeF {
				t.Fatalf("refused collapse mutated the mesh")
			}
		}
		if !progressed {
			break
		}
	}

	for e := range m.Edges() {
		beforeV, beforeE, beforeF := m.NumVertices(), m.NumEdges(), m.NumFaces()
		if _, ok := meshedit.CollapseEdgeErase(m, e); ok {
			t.Fatalf("edge %d collapsed after the mesh was reported to have no more collapsible edges", e)
		}
		if m.NumVertices() != beforeV || m.NumEdges() != beforeE || m.NumFaces() != beforeF {
			t.Fatalf("refused collapse mutated the mesh")
		}
	}
}

func TestBevelCubeFace(t *testing.T) {
	m := halfedge.Cube()
	wantV, wantF, wantE := m.NumVertices()+4, m.NumFaces()+4, m.NumEdges()+8

	var f halfedge.FaceRef
	for face := range m.Faces() {
		f = face
		break
	}
	originalPositions := m.FaceVertices(f)

	newFace, ok := meshedit.BevelFace(m, f)
	if !ok {
		t.Fatalf("BevelFace refused")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after bevel: %v", err)
	}
	if m.NumVertices() != wantV || m.NumFaces() != wantF || m.NumEdges() != wantE {
		t.Fatalf("counts after bevel = (%d,%d,%d), want (%d,%d,%d)",
			m.NumVertices(), m.NumFaces(), m.NumEdges(), wantV, wantF, wantE)
	}
	for h := range m.FaceHalfedges(newFace) {
		v := m.HeVertex(h)
		found := false
		for _, op := range originalPositions {
			if m.Pos(v).Sub(m.Pos(op)).Len() < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("beveled ring vertex %d does not coincide with an original corner before positions are updated", v)
		}
	}
}

func TestEraseVertexOnOctahedron(t *testing.T) {
	m := halfedge.Octahedron()
	var v halfedge.VertexRef
	for vertex := range m.Vertices() {
		v = vertex
		break
	}
	degree := m.VertexDegree(v)

	wantV := m.NumVertices() - 1
	wantE := m.NumEdges() - degree
	wantF := m.NumFaces() - degree + 1

	face, ok := meshedit.EraseVertex(m, v)
	if !ok {
		t.Fatalf("EraseVertex refused on an interior octahedron vertex")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after erase_vertex: %v", err)
	}
	if m.NumVertices() != wantV || m.NumEdges() != wantE || m.NumFaces() != wantF {
		t.Fatalf("counts after erase_vertex = (%d,%d,%d), want (%d,%d,%d)",
			m.NumVertices(), m.NumEdges(), m.NumFaces(), wantV, wantE, wantF)
	}
	if m.FaceArity(face) != degree {
		t.Fatalf("new face arity = %d, want %d", m.FaceArity(face), degree)
	}
}

func TestCollapseFaceAndBevelVertexEdgeAreRefusals(t *testing.T) {
	m := halfedge.Tetrahedron()
	var f halfedge.FaceRef
	for face := range m.Faces() {
		f = face
		break
	}
	if _, ok := meshedit.CollapseFace(m, f); ok {
		t.Fatalf("CollapseFace unexpectedly succeeded")
	}
	var v halfedge.VertexRef
	for vertex := range m.Vertices() {
		v = vertex
		break
	}
	if _, ok := meshedit.BevelVertex(m, v); ok {
		t.Fatalf("BevelVertex unexpectedly succeeded")
	}
	var e halfedge.EdgeRef
	for edge := range m.Edges() {
		e = edge
		break
	}
	if _, ok := meshedit.BevelEdge(m, e); ok {
		t.Fatalf("BevelEdge unexpectedly succeeded")
	}
	if _, ok := meshedit.EraseEdge(m, e); ok {
		t.Fatalf("EraseEdge unexpectedly succeeded")
	}
}
