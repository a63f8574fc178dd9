package remesh_test

import (
	"math"
	"testing"

	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/remesh"
)

func closeVec(a, b geom.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func TestTriangulateCubeFaces(t *testing.T) {
	m := halfedge.Cube()
	wantV, wantE, wantF := m.NumVertices(), m.NumEdges()+6, m.NumFaces()+6

	remesh.Triangulate(m)

	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after triangulate: %v", err)
	}
	if m.NumVertices() != wantV || m.NumEdges() != wantE || m.NumFaces() != wantF {
		t.Fatalf("counts after triangulate = (%d,%d,%d), want (%d,%d,%d)",
			m.NumVertices(), m.NumEdges(), m.NumFaces(), wantV, wantE, wantF)
	}
	for f := range m.Faces() {
		if !m.IsBoundary(f) && m.FaceArity(f) != 3 {
			t.Fatalf("face %d has arity %d after triangulate", f, m.FaceArity(f))
		}
	}
}

func TestTriangulateSkipsAlreadyTriangularFaces(t *testing.T) {
	m := halfedge.Tetrahedron()
	wantV, wantE, wantF := m.NumVertices(), m.NumEdges(), m.NumFaces()

	remesh.Triangulate(m)

	if m.NumVertices() != wantV || m.NumEdges() != wantE || m.NumFaces() != wantF {
		t.Fatalf("triangulate mutated an already-triangular mesh: got (%d,%d,%d), want (%d,%d,%d)",
			m.NumVertices(), m.NumEdges(), m.NumFaces(), wantV, wantE, wantF)
	}
}

func TestCatmullClarkOnCube(t *testing.T) {
	m := halfedge.Cube()
	remesh.CatmullClarkSubdividePositions(m)

	wantFacePoints := map[geom.Vec3]bool{
		{0, 0, -1}: false, {0, 0, 1}: false,
		{0, -1, 0}: false, {1, 0, 0}: false,
		{0, 1, 0}: false, {-1, 0, 0}: false,
	}
	for f := range m.Faces() {
		got := m.FaceNewPos(f)
		matched := false
		for want := range wantFacePoints {
			if closeVec(got, want, 1e-9) {
				matched = true
				wantFacePoints[want] = true
			}
		}
		if !matched {
			t.Fatalf("face point %v is not one of the expected cube face centers", got)
		}
	}
	for want, seen := range wantFacePoints {
		if !seen {
			t.Fatalf("expected face point %v never appeared", want)
		}
	}

	// Every cube corner has degree 3, so the vertex rule collapses to
	// (Q + 2R) / 3 with no contribution from the vertex's own position.
	for v := range m.Vertices() {
		got := m.VertexNewPos(v)
		for i := 0; i < 3; i++ {
			if math.Abs(math.Abs(got[i])-5.0/9) > 1e-9 {
				t.Fatalf("vertex new_pos %v does not have magnitude 5/9 in every axis", got)
			}
		}
	}
}

func TestSubdivideDriverRebuildsAQuadMesh(t *testing.T) {
	m := halfedge.Cube()
	wantV := m.NumVertices() + m.NumEdges() + m.NumFaces()
	wantF := 4 * m.NumFaces()

	remesh.LinearSubdividePositions(m)
	sub, err := remesh.Subdivide(m)
	if err != nil {
		t.Fatalf("Subdivide: %v", err)
	}
	if err := sub.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants on subdivided mesh: %v", err)
	}
	if sub.NumVertices() != wantV {
		t.Fatalf("subdivided vertex count = %d, want %d", sub.NumVertices(), wantV)
	}
	if sub.NumFaces() != wantF {
		t.Fatalf("subdivided face count = %d, want %d", sub.NumFaces(), wantF)
	}
	for f := range sub.Faces() {
		if !sub.IsBoundary(f) && sub.FaceArity(f) != 4 {
			t.Fatalf("subdivided face %d has arity %d, want 4", f, sub.FaceArity(f))
		}
	}
}

func TestLoopSubdivideOnTetrahedron(t *testing.T) {
	m := halfedge.Tetrahedron()
	v0, e0, f0 := m.NumVertices(), m.NumEdges(), m.NumFaces()

	if !remesh.LoopSubdivide(m) {
		t.Fatalf("LoopSubdivide refused on a closed triangle mesh")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after loop subdivide: %v", err)
	}

	wantV := v0 + e0
	wantE := 2*e0 + 3*f0
	wantF := 4 * f0
	if m.NumVertices() != wantV || m.NumEdges() != wantE || m.NumFaces() != wantF {
		t.Fatalf("counts after loop subdivide = (%d,%d,%d), want (%d,%d,%d)",
			m.NumVertices(), m.NumEdges(), m.NumFaces(), wantV, wantE, wantF)
	}
	for f := range m.Faces() {
		if m.FaceArity(f) != 3 {
			t.Fatalf("face %d has arity %d after loop subdivide", f, m.FaceArity(f))
		}
	}
}

func TestLoopSubdivideRefusesNonTriangleMesh(t *testing.T) {
	m := halfedge.Cube()
	before := m.NumFaces()
	if remesh.LoopSubdivide(m) {
		t.Fatalf("LoopSubdivide accepted a quad mesh")
	}
	if m.NumFaces() != before {
		t.Fatalf("refused LoopSubdivide mutated the mesh")
	}
}

func TestIsotropicRemeshPreservesManifoldness(t *testing.T) {
	m := halfedge.Octahedron()
	if !remesh.IsotropicRemesh(m) {
		t.Fatalf("IsotropicRemesh refused on a closed triangle mesh")
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after isotropic remesh: %v", err)
	}
	for f := range m.Faces() {
		if m.FaceArity(f) != 3 {
			t.Fatalf("face %d has arity %d after isotropic remesh", f, m.FaceArity(f))
		}
	}
}

func TestIsotropicRemeshRefusesNonTriangleMesh(t *testing.T) {
	m := halfedge.Cube()
	if remesh.IsotropicRemesh(m) {
		t.Fatalf("IsotropicRemesh accepted a quad mesh")
	}
}
