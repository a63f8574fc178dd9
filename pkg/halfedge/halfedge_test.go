package halfedge_test

import (
	"testing"

	"github.com/chazu/halfmesh/pkg/halfedge"
)

func TestSeedMeshesAreManifold(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *halfedge.Mesh
		wantV   int
		wantE   int
		wantF   int
		wantChi int
	}{
		{"tetrahedron", halfedge.Tetrahedron, 4, 6, 4, 2},
		{"cube", halfedge.Cube, 8, 12, 6, 2},
		{"octahedron", halfedge.Octahedron, 6, 12, 8, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.build()
			if err := m.CheckInvariants(); err != nil {
				t.Fatalf("CheckInvariants: %v", err)
			}
			if got := m.NumVertices(); got != tc.wantV {
				t.Errorf("NumVertices() = %d, want %d", got, tc.wantV)
			}
			if got := m.NumEdges(); got != tc.wantE {
				t.Errorf("NumEdges() = %d, want %d", got, tc.wantE)
			}
			if got := m.NumFaces(); got != tc.wantF {
				t.Errorf("NumFaces() = %d, want %d", got, tc.wantF)
			}
			if got := m.EulerCharacteristic(); got != tc.wantChi {
				t.Errorf("EulerCharacteristic() = %d, want %d", got, tc.wantChi)
			}
		})
	}
}

func TestFaceArityAndVertexDegree(t *testing.T) {
	m := halfedge.Cube()
	for f := range m.Faces() {
		if got := m.FaceArity(f); got != 4 {
			t.Errorf("FaceArity(%d) = %d, want 4", f, got)
		}
	}
	for v := range m.Vertices() {
		if got := m.VertexDegree(v); got != 3 {
			t.Errorf("VertexDegree(%d) = %d, want 3", v, got)
		}
	}
}

func TestEraseIsLogicalUntilValidate(t *testing.T) {
	m := halfedge.Tetrahedron()
	v := halfedge.VertexRef(0)
	wantV := m.NumVertices() - 1

	m.EraseVertex(v)
	if m.VertexLive(v) {
		t.Fatalf("VertexLive(%d) = true after EraseVertex", v)
	}
	if got := m.NumVertices(); got != wantV {
		t.Fatalf("NumVertices() = %d after erase, want %d", got, wantV)
	}
	// The slot is still dereferenceable before Validate.
	_ = m.Vertex(v)

	m.Validate()
	if got := m.NumVertices(); got != wantV {
		t.Fatalf("NumVertices() = %d after Validate, want %d", got, wantV)
	}
}

func TestNoBoundaryOnClosedMesh(t *testing.T) {
	m := halfedge.Tetrahedron()
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			t.Fatalf("closed tetrahedron has a boundary face %d", f)
		}
	}
	for e := range m.Edges() {
		if m.IsBoundaryEdge(e) {
			t.Fatalf("closed tetrahedron has a boundary edge %d", e)
		}
	}
}
