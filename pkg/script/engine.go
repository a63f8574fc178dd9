// Package script provides a Lisp scripting surface over a halfedge mesh.
// It wraps zygomys in a sandboxed environment and binds a small set of
// mesh operators as builtins, so a script is a disposable batch of
// operator calls against one in-memory mesh.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/halfmesh/pkg/halfedge"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error raised by a builtin.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalResult bundles the non-fatal errors produced by one evaluation.
// The mesh itself carries the result of a successful run; there is no
// separate output value to report.
type EvalResult struct {
	Errors []EvalError
}

// Engine wraps the zygomys interpreter for mesh scripts. It is safe for
// concurrent use; each call to Evaluate creates a fresh sandboxed
// environment for determinism, and only the generation counter guarding
// a stale evaluation's result is itself synchronized (see timeout.go).
// The *halfedge.Mesh passed to Evaluate is not itself safe for concurrent
// mutation; callers must not run two Evaluate calls against the same mesh
// at once.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source against m, mutating it through whichever builtins
// the script calls, and returns the non-fatal errors the run produced.
//
// Return semantics:
//   - On success: returns a result (possibly with zero Errors) + nil error
//   - On fatal failure (timeout, panic): returns nil + error
func (e *Engine) Evaluate(source string, m *halfedge.Mesh) (*EvalResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, err := e.evaluate(source, m)
		ch <- evalResult{result: res, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string, m *halfedge.Mesh) (*EvalResult, error) {
	// Empty source is a valid, no-op script.
	if strings.TrimSpace(source) == "" {
		return &EvalResult{}, nil
	}

	// Create a fresh sandboxed zygomys environment. Sandbox mode prevents
	// script code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, m)

	processed := preprocessSource(source)

	if err := env.LoadString(processed); err != nil {
		return &EvalResult{Errors: parseZygomysError(err)}, nil
	}

	if _, err := env.Run(); err != nil {
		return &EvalResult{Errors: parseZygomysError(err)}, nil
	}

	return &EvalResult{}, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, attempting to extract line number information from the message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
