package script

import (
	"fmt"

	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/meshedit"
	"github.com/chazu/halfmesh/pkg/remesh"
	"github.com/chazu/halfmesh/pkg/simplify"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms script source before passing it to zygomys.
// It performs three transformations, all respecting string literal and
// comment boundaries:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal).
//  2. Kebab-case to underscore: flip-edge -> flip_edge, since zygomys
//     does not allow hyphens in identifiers (it interprets them as the
//     subtraction operator).
//  3. Line comments: ; comment -> // comment.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// kwPrefix is the marker prepended to keyword names by preprocessSource.
// No builtin in this package currently takes a keyword argument, but the
// prefix is kept alongside the preprocessor it belongs to.
const kwPrefix = "__kw_"

// ---------------------------------------------------------------------------
// Value extraction / construction helpers
// ---------------------------------------------------------------------------

// toInt64 extracts an integer ref handle from a Sexp.
func toInt64(s zygo.Sexp) (int64, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected integer ref, got %T (%s)", s, s.SexpString(nil))
}

func sexpInt(v int32) zygo.Sexp {
	return &zygo.SexpInt{Val: int64(v)}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the mesh-operator builtins into a zygomys
// environment, each bound to m. Every builtin takes and returns ref
// handles as plain Lisp integers; a refused operator surfaces as a
// returned error, which the evaluator turns into an EvalError the same
// way it turns a parse error into one.
func registerBuiltins(env *zygo.Zlisp, m *halfedge.Mesh) {

	// (flip-edge e) -> new edge ref
	env.AddFunction("flip_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("flip-edge: expected 1 argument, got %d", len(args))
		}
		raw, err := toInt64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("flip-edge: %w", err)
		}
		newE, ok := meshedit.FlipEdge(m, halfedge.EdgeRef(raw))
		if !ok {
			return zygo.SexpNull, fmt.Errorf("flip-edge: refused")
		}
		return sexpInt(int32(newE)), nil
	})

	// (split-edge e) -> new vertex ref
	env.AddFunction("split_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("split-edge: expected 1 argument, got %d", len(args))
		}
		raw, err := toInt64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("split-edge: %w", err)
		}
		newV, ok := meshedit.SplitEdge(m, halfedge.EdgeRef(raw))
		if !ok {
			return zygo.SexpNull, fmt.Errorf("split-edge: refused")
		}
		return sexpInt(int32(newV)), nil
	})

	// (collapse-edge e) -> surviving vertex ref, compacting the mesh
	env.AddFunction("collapse_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("collapse-edge: expected 1 argument, got %d", len(args))
		}
		raw, err := toInt64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("collapse-edge: %w", err)
		}
		newV, ok := meshedit.CollapseEdgeErase(m, halfedge.EdgeRef(raw))
		if !ok {
			return zygo.SexpNull, fmt.Errorf("collapse-edge: refused (link condition)")
		}
		return sexpInt(int32(newV)), nil
	})

	// (bevel-face f) -> new inset face ref
	env.AddFunction("bevel_face", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("bevel-face: expected 1 argument, got %d", len(args))
		}
		raw, err := toInt64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bevel-face: %w", err)
		}
		newF, ok := meshedit.BevelFace(m, halfedge.FaceRef(raw))
		if !ok {
			return zygo.SexpNull, fmt.Errorf("bevel-face: refused")
		}
		return sexpInt(int32(newF)), nil
	})

	// (triangulate) -> nil, fan-triangulates every non-boundary face
	env.AddFunction("triangulate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		remesh.Triangulate(m)
		return zygo.SexpNull, nil
	})

	// (loop-subdivide) -> nil on success
	env.AddFunction("loop_subdivide", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if !remesh.LoopSubdivide(m) {
			return zygo.SexpNull, fmt.Errorf("loop-subdivide: mesh is not a closed triangle mesh")
		}
		return zygo.SexpNull, nil
	})

	// (simplify) -> nil on success
	env.AddFunction("simplify", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if !simplify.Simplify(m) {
			return zygo.SexpNull, fmt.Errorf("simplify: mesh has no faces to simplify")
		}
		return zygo.SexpNull, nil
	})

	// (euler) -> V - E + F, a quick invariant diagnostic
	env.AddFunction("euler", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return sexpInt(int32(m.EulerCharacteristic())), nil
	})
}
