package meshbuild

// vertexCacheSize is the simulated post-transform FIFO cache used when
// reordering triangles. Real GPU caches vary; a moderate value keeps the
// reorder beneficial across hardware.
const vertexCacheSize = 24

// optimizeTriangleOrder reorders an indexed triangle list so that
// consecutive triangles reuse vertices while they are still resident in
// a simulated FIFO post-transform cache. The result draws the same
// triangle multiset; only the order changes.
func optimizeTriangleOrder(indices []uint32) []uint32 {
	triCount := len(indices) / 3
	if triCount < 3 {
		return indices
	}

	// Per-vertex adjacency.
	adj := make(map[uint32][]int)
	for t := 0; t < triCount; t++ {
		for k := 0; k < 3; k++ {
			v := indices[3*t+k]
			adj[v] = append(adj[v], t)
		}
	}

	var (
		emitted  = make([]bool, triCount)
		inCache  = make(map[uint32]int) // vertex -> cache slot age
		cache    []uint32               // FIFO, newest last
		out      = make([]uint32, 0, len(indices))
		nextScan = 0
	)

	push := func(v uint32) {
		if _, ok := inCache[v]; ok {
			return
		}
		cache = append(cache, v)
		inCache[v] = 0
		if len(cache) > vertexCacheSize {
			evicted := cache[0]
			cache = cache[1:]
			delete(inCache, evicted)
		}
	}

	emit := func(t int) {
		emitted[t] = true
		for k := 0; k < 3; k++ {
			v := indices[3*t+k]
			out = append(out, v)
			push(v)
		}
	}

	// pickCached returns the unemitted triangle sharing the most cached
	// vertices, or -1 when the cache touches nothing new.
	pickCached := func() int {
		best, bestScore := -1, 0
		for _, v := range cache {
			for _, t := range adj[v] {
				if emitted[t] {
					continue
				}
				score := 0
				for k := 0; k < 3; k++ {
					if _, ok := inCache[indices[3*t+k]]; ok {
						score++
					}
				}
				if score > bestScore {
					best, bestScore = t, score
				}
			}
		}
		return best
	}

	for len(out) < len(indices) {
		t := pickCached()
		if t < 0 {
			// Cold start or exhausted neighbourhood: take the next
			// triangle in input order.
			for nextScan < triCount && emitted[nextScan] {
				nextScan++
			}
			if nextScan == triCount {
				break
			}
			t = nextScan
		}
		emit(t)
	}
	return out
}
