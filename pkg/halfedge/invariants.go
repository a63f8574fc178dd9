package halfedge

import "fmt"

// CheckInvariants walks every live element and verifies the manifold
// half-edge invariants: twin is an involution, every face's Next cycle
// closes on itself, every vertex's outgoing umbrella closes on itself,
// and every half-edge's Edge and Face agree with its twin and Next
// chain. It returns the first violation found, or nil if the mesh is
// well-formed.
func (m *Mesh) CheckInvariants() error {
	for h := range m.Halfedges() {
		t := m.Twin(h)
		if !t.Valid() {
			return fmt.Errorf("halfedge: %d has no twin", h)
		}
		if m.Twin(t) != h {
			return fmt.Errorf("halfedge: twin(%d)=%d but twin(%d)=%d", h, t, t, m.Twin(t))
		}
		if m.HeEdge(h) != m.HeEdge(t) {
			return fmt.Errorf("halfedge: %d and its twin %d disagree on edge", h, t)
		}
		n := m.Next(h)
		if !n.Valid() {
			return fmt.Errorf("halfedge: %d has no next", h)
		}
		if m.HeFace(n) != m.HeFace(h) {
			return fmt.Errorf("halfedge: %d and next(%d)=%d disagree on face", h, h, n)
		}
	}

	for f := range m.Faces() {
		start := m.FaceHalfedge(f)
		if !start.Valid() {
			return fmt.Errorf("face: %d has no halfedge", f)
		}
		cur := start
		n := 0
		for {
			if m.HeFace(cur) != f {
				return fmt.Errorf("face: halfedge %d in face %d's cycle claims face %d", cur, f, m.HeFace(cur))
			}
			cur = m.Next(cur)
			n++
			if cur == start {
				break
			}
			if n > len(m.halfedges) {
				return fmt.Errorf("face: %d's next cycle does not close", f)
			}
		}
	}

	for v := range m.Vertices() {
		start := m.VertexHalfedge(v)
		if !start.Valid() {
			return fmt.Errorf("vertex: %d has no halfedge", v)
		}
		if m.HeVertex(start) != v {
			return fmt.Errorf("vertex: %d's halfedge %d does not originate at it", v, start)
		}
		cur := start
		n := 0
		for {
			cur = m.Next(m.Twin(cur))
			n++
			if cur == start {
				break
			}
			if n > len(m.halfedges) {
				return fmt.Errorf("vertex: %d's outgoing umbrella does not close", v)
			}
		}
	}

	for e := range m.Edges() {
		h := m.EdgeHalfedge(e)
		if !h.Valid() {
			return fmt.Errorf("edge: %d has no halfedge", e)
		}
		if m.HeEdge(h) != e {
			return fmt.Errorf("edge: %d's halfedge %d does not reference it back", e, h)
		}
	}

	return nil
}

// EulerCharacteristic returns V - E + F over the mesh's live interior
// faces, excluding boundary sentinels.
func (m *Mesh) EulerCharacteristic() int {
	interior := 0
	for f := range m.Faces() {
		if !m.IsBoundary(f) {
			interior++
		}
	}
	return m.NumVertices() - m.NumEdges() + interior
}
