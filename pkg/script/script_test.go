package script_test

import (
	"strings"
	"testing"

	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/script"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Tetrahedron()

	res, err := eng.Evaluate("", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Tetrahedron()

	res, err := eng.Evaluate("   \n\t  \n  ", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
}

func TestEvaluateValidExpressionDoesNotMutateMesh(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Tetrahedron()
	wantV, wantE, wantF := m.NumVertices(), m.NumEdges(), m.NumFaces()

	res, err := eng.Evaluate("(+ 1 2)", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if m.NumVertices() != wantV || m.NumEdges() != wantE || m.NumFaces() != wantF {
		t.Fatalf("mesh mutated by an expression with no mesh builtins")
	}
}

func TestFlipEdgeBuiltinFlipsFirstOctahedronEdge(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Octahedron()

	res, err := eng.Evaluate("(flip-edge 0)", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after script flip: %v", err)
	}
}

func TestCollapseEdgeBuiltinRefusalSurfacesAsEvalError(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Tetrahedron()

	// Every edge of a tetrahedron passes the link condition, but the first
	// collapse leaves two triangles sharing all three edges, and no edge of
	// that configuration can be collapsed. The second call must refuse and
	// report the refusal as an EvalError rather than a fatal error.
	res, err := eng.Evaluate("(collapse-edge 0) (collapse-edge 0)", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one eval error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0].Message, "collapse-edge") {
		t.Fatalf("eval error does not mention the failing builtin: %v", res.Errors[0])
	}
}

func TestTriangulateBuiltinLeavesOnlyTriangles(t *testing.T) {
	eng := script.NewEngine()
	m, err := halfedge.BuildFromFaces(
		[]geom.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[][]int{{0, 1, 2, 3}},
	)
	if err != nil {
		t.Fatalf("BuildFromFaces: %v", err)
	}

	res, evalErr := eng.Evaluate("(triangulate)", m)
	if evalErr != nil {
		t.Fatalf("unexpected fatal error: %v", evalErr)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		if m.FaceArity(f) != 3 {
			t.Fatalf("face %d has arity %d after triangulate", f, m.FaceArity(f))
		}
	}
}

func TestEulerBuiltinEvaluatesOnClosedCube(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Cube()

	res, err := eng.Evaluate("(euler)", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if got, want := m.EulerCharacteristic(), 2; got != want {
		t.Fatalf("EulerCharacteristic() = %d, want %d", got, want)
	}
}

func TestEvaluateSyntaxErrorProducesEvalError(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Tetrahedron()

	res, err := eng.Evaluate("(flip-edge", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) == 0 {
		t.Fatalf("expected at least one eval error for unbalanced parens")
	}
}

func TestEvaluateSimplifyBuiltin(t *testing.T) {
	eng := script.NewEngine()
	m := halfedge.Octahedron()

	res, err := eng.Evaluate("(simplify)", m)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after script simplify: %v", err)
	}
}
