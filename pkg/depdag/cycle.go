package depdag

// IsCyclic reports whether the graph contains at least one directed cycle,
// including a vertex that depends on itself.
//
// The search is an iterative depth-first walk. A vertex is on the current
// path while its supporters are being explored; reaching such a vertex again
// is a back edge and therefore a cycle. Vertices whose supporters have all
// been explored are marked safe and never walked again, so the check runs in
// O(V+E) time and its depth is bounded by the graph size, not the call stack.
func (g *Graph[N]) IsCyclic() bool {
	const (
		unvisited = iota
		onPath
		safe
	)

	type frame struct {
		v    *Vertex[N]
		next int // index of the next supporter to explore
	}

	state := make(map[*Vertex[N]]int, len(g.order))
	var stack []frame

	for _, start := range g.order {
		if state[start] != unvisited {
			continue
		}
		state[start] = onPath
		stack = append(stack[:0], frame{v: start})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.v.supporters) {
				state[top.v] = safe
				stack = stack[:len(stack)-1]
				continue
			}
			s := top.v.supporters[top.next]
			top.next++

			switch state[s] {
			case onPath:
				return true
			case unvisited:
				state[s] = onPath
				stack = append(stack, frame{v: s})
			}
		}
	}
	return false
}
