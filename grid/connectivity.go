package grid

import "container/list"

// Components returns the walkable regions of g under the given connectivity.
// Each region lists its cells in flood-fill order; regions are ordered by
// their first cell in row-major order.
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) Components(allowDiagonal bool) [][]Point {
	seen := make([]bool, g.Size())
	var comps [][]Point

	for i := range g.roles {
		if seen[i] || g.roles[i] == Obstacle {
			continue
		}
		seen[i] = true
		queue := []Point{g.Coordinate(i)}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.Neighbors(u.X, u.Y, allowDiagonal) {
				vi := g.Index(v)
				if seen[vi] || g.roles[vi] == Obstacle {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a walkable route joins a and b. Obstacles and
// out-of-range points are never connected.
func (g *Grid) Connected(a, b Point, allowDiagonal bool) bool {
	if !g.IsWalkable(a.X, a.Y) || !g.IsWalkable(b.X, b.Y) {
		return false
	}
	_, removed := g.cheapestOpening(a, b, allowDiagonal)
	return removed == 0
}

// OpenPath clears the fewest obstacles needed to join start and goal and
// returns the cleared cells in route order. It returns nil when an endpoint
// is unset or the endpoints are already connected.
//
// Behavior:
//  1. 0-1 BFS from start: entering a walkable cell costs 0, an obstacle 1.
//  2. Stop when goal is dequeued.
//  3. Walk predecessors back and clear every obstacle on the route.
//
// Time: O(W·H·d). Memory: O(W·H).
func (g *Grid) OpenPath(allowDiagonal bool) []Point {
	if !g.HasEndpoints() {
		return nil
	}
	route, removed := g.cheapestOpening(g.start, g.goal, allowDiagonal)
	if removed == 0 {
		return nil
	}

	cleared := make([]Point, 0, removed)
	for _, p := range route {
		i := g.Index(p)
		if g.roles[i] == Obstacle {
			g.roles[i] = Empty
			cleared = append(cleared, p)
		}
	}

	return cleared
}

// cheapestOpening returns a route from a to b through the fewest obstacles
// and that count. a and b must be in range.
func (g *Grid) cheapestOpening(a, b Point, allowDiagonal bool) ([]Point, int) {
	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Zero-cost moves go to the front, unit-cost moves to the back.
	src, dst := g.Index(a), g.Index(b)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		up := g.Coordinate(u)
		for _, v := range g.Neighbors(up.X, up.Y, allowDiagonal) {
			vi := g.Index(v)
			w := 0
			if g.roles[vi] == Obstacle {
				w = 1
			}
			if dist[u]+w >= dist[vi] {
				continue
			}
			dist[vi] = dist[u] + w
			prev[vi] = u
			if w == 0 {
				dq.PushFront(vi)
			} else {
				dq.PushBack(vi)
			}
		}
	}

	var route []Point
	for at := dst; at != -1; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[dst]
}
