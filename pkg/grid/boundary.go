package grid

import "github.com/wordgrid/engine/pkg/geom"

// BoundaryEdge is one (inside-empty, outside-or-letter) pair on the perimeter
// of a connected cluster of empty cells.
type BoundaryEdge struct {
	Inside  geom.Point
	Outside geom.Point
}

func (g *Grid) orthogonalNeighbors(p geom.Point) [4]geom.Point {
	return [4]geom.Point{
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
	}
}

func (g *Grid) isBoundaryPoint(p geom.Point) bool {
	for _, n := range g.orthogonalNeighbors(p) {
		if c, ok := g.GetChar(n); ok && c != Block {
			return true
		}
	}
	return false
}

func (g *Grid) emptyCluster(seed geom.Point) []geom.Point {
	visited := map[geom.Point]bool{seed: true}
	queue := []geom.Point{seed}
	var cluster []geom.Point
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cluster = append(cluster, p)
		for _, n := range g.orthogonalNeighbors(p) {
			if visited[n] {
				continue
			}
			if c, ok := g.GetChar(n); !ok || c != Block {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return cluster
}

func (g *Grid) clusterBoundary(cluster []geom.Point) []BoundaryEdge {
	inCluster := make(map[geom.Point]bool, len(cluster))
	for _, p := range cluster {
		inCluster[p] = true
	}
	var edges []BoundaryEdge
	for _, p := range cluster {
		for _, n := range g.orthogonalNeighbors(p) {
			if inCluster[n] {
				continue
			}
			edges = append(edges, BoundaryEdge{Inside: p, Outside: n})
		}
	}
	return edges
}

// SmallestEmptyBoundary scans the grid in row-major order for boundary points
// (empty cells adjacent to a letter) and returns the perimeter of the
// smallest connected empty cluster touching a letter. It returns nil if the
// grid has no such cluster (e.g. it is entirely empty, or entirely full).
func (g *Grid) SmallestEmptyBoundary() []BoundaryEdge {
	visited := make(map[geom.Point]bool)
	var best []BoundaryEdge
	haveBest := false

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := geom.Point{X: x, Y: y}
			if visited[p] {
				continue
			}
			if c, _ := g.GetChar(p); c != Block {
				continue
			}
			if !g.isBoundaryPoint(p) {
				continue
			}

			cluster := g.emptyCluster(p)
			edges := g.clusterBoundary(cluster)
			for _, q := range cluster {
				visited[q] = true
			}

			if len(edges) <= 1 {
				return edges
			}
			if !haveBest || len(edges) < len(best) {
				best = edges
				haveBest = true
			}
		}
	}
	return best
}
