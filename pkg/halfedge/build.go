package halfedge

import (
	"fmt"

	"github.com/chazu/halfmesh/pkg/geom"
)

// BuildFromFaces constructs a manifold half-edge mesh from a vertex
// position list and a set of faces, each given as a counterclockwise
// list of indices into positions. Boundary loops are closed with
// sentinel faces marked Boundary. It returns an error if a directed
// edge is used by more than one face, which would make the mesh
// non-manifold.
func BuildFromFaces(positions []geom.Vec3, faces [][]int) (*Mesh, error) {
	m := NewMesh()

	vrefs := make([]VertexRef, len(positions))
	for i, p := range positions {
		v := m.NewVertex()
		m.SetPos(v, p)
		vrefs[i] = v
	}

	type dirKey struct{ a, b int }
	dirHE := make(map[dirKey]HalfedgeRef)

	for fi, face := range faces {
		n := len(face)
		if n < 3 {
			return nil, fmt.Errorf("halfedge: face %d has fewer than 3 vertices", fi)
		}
		f := m.NewFace()
		heList := make([]HalfedgeRef, n)
		for i := range heList {
			heList[i] = m.NewHalfedge()
		}
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			if a < 0 || a >= len(positions) {
				return nil, fmt.Errorf("halfedge: face %d references out-of-range vertex %d", fi, a)
			}
			h := heList[i]
			m.SetHeVertex(h, vrefs[a])
			m.SetHeFace(h, f)
			m.SetNext(h, heList[(i+1)%n])
			m.SetVertexHalfedge(vrefs[a], h)
			key := dirKey{a, b}
			if _, exists := dirHE[key]; exists {
				return nil, fmt.Errorf("halfedge: directed edge %d->%d used by more than one face", a, b)
			}
			dirHE[key] = h
		}
		m.SetFaceHalfedge(f, heList[0])
	}

	for key, h := range dirHE {
		if key.a >= key.b {
			continue
		}
		rev, ok := dirHE[dirKey{key.b, key.a}]
		if !ok {
			continue
		}
		e := m.NewEdge()
		m.SetTwin(h, rev)
		m.SetTwin(rev, h)
		m.SetHeEdge(h, e)
		m.SetHeEdge(rev, e)
		m.SetEdgeHalfedge(e, h)
	}

	outgoingBoundary := make(map[int]HalfedgeRef)
	for key, h := range dirHE {
		if _, ok := dirHE[dirKey{key.b, key.a}]; ok {
			continue // interior, already twinned
		}
		bh := m.NewHalfedge()
		e := m.NewEdge()
		m.SetHeVertex(bh, vrefs[key.b])
		m.SetTwin(h, bh)
		m.SetTwin(bh, h)
		m.SetHeEdge(h, e)
		m.SetHeEdge(bh, e)
		m.SetEdgeHalfedge(e, h)
		outgoingBoundary[key.b] = bh
	}
	for key, h := range dirHE {
		if _, ok := dirHE[dirKey{key.b, key.a}]; ok {
			continue
		}
		bh := m.Twin(h)
		m.SetNext(bh, outgoingBoundary[key.a])
	}

	visited := make(map[HalfedgeRef]bool)
	for _, bh := range outgoingBoundary {
		if visited[bh] {
			continue
		}
		f := m.NewFace()
		m.SetFace(f, Face{Boundary: true, Halfedge: bh})
		cur := bh
		for {
			m.SetHeFace(cur, f)
			visited[cur] = true
			cur = m.Next(cur)
			if cur == bh {
				break
			}
		}
	}

	return m, nil
}

// Tetrahedron returns a closed mesh with 4 triangular faces.
func Tetrahedron() *Mesh {
	positions := []geom.Vec3{
		{1, 1, 1},
		{-1, -1, 1},
		{-1, 1, -1},
		{1, -1, -1},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	m, err := BuildFromFaces(positions, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// Cube returns a closed mesh with 6 quadrilateral faces.
func Cube() *Mesh {
	positions := []geom.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	faces := [][]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	m, err := BuildFromFaces(positions, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// Octahedron returns a closed mesh with 8 triangular faces.
func Octahedron() *Mesh {
	positions := []geom.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	faces := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m, err := BuildFromFaces(positions, faces)
	if err != nil {
		panic(err)
	}
	return m
}
