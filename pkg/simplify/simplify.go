package simplify

import (
	"github.com/chazu/halfmesh/pkg/geom"
	"github.com/chazu/halfmesh/pkg/halfedge"
	"github.com/chazu/halfmesh/pkg/meshedit"
	"github.com/samber/lo"
)

// Simplify reduces m's non-boundary face count toward max(initial/4, 4) by
// greedily collapsing the edge with the lowest quadric error, as judged by
// a priority queue rebuilt around each collapse. It refuses (returning
// false, leaving the mesh untouched) if m has no faces to begin with.
func Simplify(m *halfedge.Mesh) bool {
	faceQuadrics := map[halfedge.FaceRef]geom.Mat4{}
	initialFaces := 0
	for f := range m.Faces() {
		if m.IsBoundary(f) {
			continue
		}
		initialFaces++
		faceQuadrics[f] = FaceQuadric(m, f)
	}
	if initialFaces == 0 {
		return false
	}

	vertexQuadrics := map[halfedge.VertexRef]geom.Mat4{}
	for v := range m.Vertices() {
		vertexQuadrics[v] = VertexQuadric(m, v, faceQuadrics)
	}

	queue := NewPQueue()
	for e := range m.Edges() {
		queue.Insert(NewEdgeRecord(m, vertexQuadrics, e))
	}

	target := initialFaces / 4
	if target < 4 {
		target = 4
	}

	for nonBoundaryFaceCount(m) > target && queue.Len() > 0 {
		chosen, ok := popCollapsible(m, queue)
		if !ok {
			break
		}

		va, vb := m.EdgeVertices(chosen.Edge)
		newQuadric := vertexQuadrics[va].Add(vertexQuadrics[vb])
		removeIncident(m, queue, va)
		removeIncident(m, queue, vb)

		newVertex, ok := meshedit.CollapseEdge(m, chosen.Edge)
		if !ok {
			continue
		}
		remap := m.Validate()
		newVertex = remap.Vertex(newVertex)

		vertexQuadrics = remapVertexQuadrics(vertexQuadrics, remap)
		queue = remapQueue(queue, remap)

		m.SetPos(newVertex, chosen.Optimal)
		vertexQuadrics[newVertex] = newQuadric

		for h := range m.VertexOutgoing(newVertex) {
			e := m.HeEdge(h)
			queue.Insert(NewEdgeRecord(m, vertexQuadrics, e))
		}
	}

	return true
}

func nonBoundaryFaceCount(m *halfedge.Mesh) int {
	n := 0
	for f := range m.Faces() {
		if !m.IsBoundary(f) {
			n++
		}
	}
	return n
}

// popCollapsible removes and returns the cheapest record whose edge still
// satisfies the link condition, reinserting every cheaper-but-uncollapsible
// record it had to skip along the way.
func popCollapsible(m *halfedge.Mesh, queue *PQueue) (EdgeRecord, bool) {
	var skipped []EdgeRecord
	for {
		rec, ok := queue.Top()
		if !ok {
			for _, s := range skipped {
				queue.Insert(s)
			}
			return EdgeRecord{}, false
		}
		if meshedit.CanCollapseEdge(m, rec.Edge) {
			queue.Remove(rec.Edge)
			for _, s := range skipped {
				queue.Insert(s)
			}
			return rec, true
		}
		queue.Pop()
		skipped = append(skipped, rec)
	}
}

func removeIncident(m *halfedge.Mesh, queue *PQueue, v halfedge.VertexRef) {
	for h := range m.VertexOutgoing(v) {
		queue.Remove(m.HeEdge(h))
	}
}

// remapVertexQuadrics translates a vertex-quadric map across a Validate
// compaction, dropping entries for vertices that did not survive.
func remapVertexQuadrics(old map[halfedge.VertexRef]geom.Mat4, remap halfedge.Remap) map[halfedge.VertexRef]geom.Mat4 {
	next := make(map[halfedge.VertexRef]geom.Mat4, len(old))
	for v, q := range old {
		if nv := remap.Vertex(v); nv.Valid() {
			next[nv] = q
		}
	}
	return next
}

// remapQueue translates every queued record's edge across a Validate
// compaction, dropping records for edges that did not survive the
// collapse that triggered it.
func remapQueue(old *PQueue, remap halfedge.Remap) *PQueue {
	next := NewPQueue()
	recs := lo.FilterMap(old.All(), func(rec EdgeRecord, _ int) (EdgeRecord, bool) {
		e := remap.Edge(rec.Edge)
		if !e.Valid() {
			return EdgeRecord{}, false
		}
		rec.Edge = e
		return rec, true
	})
	for _, rec := range recs {
		next.Insert(rec)
	}
	return next
}
