// Command meshsh is a small shell for driving the mesh operators through
// pkg/script. It builds a seed mesh, runs a script against it (from a
// file argument or from stdin), and prints the resulting vertex/edge/face
// counts and any evaluation errors. With no script file and an
// interactive stdin, it drops into a line-editing REPL instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/script"
	"github.com/glycerine/liner"
)

func main() {
	seedFlag := flag.String("seed", "tetrahedron", "seed mesh: tetrahedron, cube, or octahedron")
	flag.Parse()

	m, err := buildSeed(*seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
		os.Exit(1)
	}

	eng := script.NewEngine()

	if path := flag.Arg(0); path != "" {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
			os.Exit(1)
		}
		runOnce(eng, m, string(source))
		return
	}

	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
			os.Exit(1)
		}
		runOnce(eng, m, string(source))
		return
	}

	repl(eng, m)
}

func buildSeed(name string) (*halfedge.Mesh, error) {
	switch name {
	case "tetrahedron":
		return halfedge.Tetrahedron(), nil
	case "cube":
		return halfedge.Cube(), nil
	case "octahedron":
		return halfedge.Octahedron(), nil
	}
	return nil, fmt.Errorf("unknown seed mesh %q (want tetrahedron, cube, or octahedron)", name)
}

// runOnce evaluates one script against m and reports the outcome.
func runOnce(eng *script.Engine, m *halfedge.Mesh, source string) {
	res, err := eng.Evaluate(source, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
		os.Exit(1)
	}
	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, "error:", e.Error())
	}
	printCounts(m)
	if len(res.Errors) > 0 {
		os.Exit(1)
	}
}

// repl runs an interactive read-eval-print loop, evaluating one line at a
// time against the same mesh and reporting the mesh state after each one.
func repl(eng *script.Engine, m *halfedge.Mesh) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("meshsh: interactive mesh shell (Ctrl-D to quit)")
	printCounts(m)

	for {
		input, err := line.Prompt("meshsh> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
			return
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		res, err := eng.Evaluate(input, m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "meshsh: %v\n", err)
			continue
		}
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, "error:", e.Error())
		}
		printCounts(m)
	}
}

func printCounts(m *halfedge.Mesh) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	fmt.Fprintf(w, "V=%d E=%d F=%d\n", m.NumVertices(), m.NumEdges(), m.NumFaces())
}
