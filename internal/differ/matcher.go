package differ

// sequenceMatcher implements longest-common-subsequence alignment with the
// classic "longest contiguous block first, leftmost" resolution order. Every
// element is significant: there is deliberately no junk heuristic, so frequent
// but meaningful lines (closing braces, near-blank lines) still anchor
// matches.
type sequenceMatcher struct {
	a, b []string
	b2j  map[string][]int
}

type match struct {
	a, b, size int
}

func newSequenceMatcher(a, b []string) *sequenceMatcher {
	m := &sequenceMatcher{a: a, b: b}
	m.buildB2J()
	return m
}

func (m *sequenceMatcher) buildB2J() {
	m.b2j = make(map[string][]int, len(m.b))
	for i, s := range m.b {
		m.b2j[s] = append(m.b2j[s], i)
	}
}

// findLongestMatch locates the longest matching block within
// a[alo:ahi] x b[blo:bhi], preferring the leftmost block on ties.
func (m *sequenceMatcher) findLongestMatch(alo, ahi, blo, bhi int) match {
	bestI, bestJ, bestSize := alo, blo, 0
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return match{bestI, bestJ, bestSize}
}

// matchingBlocks returns the merged, A-ordered list of matching blocks,
// terminated by a zero-size sentinel.
func (m *sequenceMatcher) matchingBlocks() []match {
	queue := [][4]int{{0, len(m.a), 0, len(m.b)}}
	var blocks []match
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		alo, ahi, blo, bhi := q[0], q[1], q[2], q[3]
		best := m.findLongestMatch(alo, ahi, blo, bhi)
		if best.size > 0 {
			blocks = append(blocks, best)
			if alo < best.a && blo < best.b {
				queue = append(queue, [4]int{alo, best.a, blo, best.b})
			}
			if best.a+best.size < ahi && best.b+best.size < bhi {
				queue = append(queue, [4]int{best.a + best.size, ahi, best.b + best.size, bhi})
			}
		}
	}

	sortBlocks(blocks)

	// Merge blocks that ended up adjacent after recursion.
	var merged []match
	i1, j1, k1 := 0, 0, 0
	for _, b := range blocks {
		if i1+k1 == b.a && j1+k1 == b.b {
			k1 += b.size
		} else {
			if k1 > 0 {
				merged = append(merged, match{i1, j1, k1})
			}
			i1, j1, k1 = b.a, b.b, b.size
		}
	}
	if k1 > 0 {
		merged = append(merged, match{i1, j1, k1})
	}
	merged = append(merged, match{len(m.a), len(m.b), 0})
	return merged
}

func sortBlocks(blocks []match) {
	// Insertion sort by A start; block counts are small relative to input.
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].a < blocks[j-1].a; j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}

// segments converts matching blocks into the ordered typed segment list.
func (m *sequenceMatcher) segments() []Segment {
	blocks := m.matchingBlocks()
	var segs []Segment
	i, j := 0, 0
	for _, b := range blocks {
		kind := SegmentEqual
		switch {
		case i < b.a && j < b.b:
			kind = SegmentReplace
		case i < b.a:
			kind = SegmentDelete
		case j < b.b:
			kind = SegmentInsert
		}
		if i < b.a || j < b.b {
			segs = append(segs, Segment{Kind: kind, AStart: i, AEnd: b.a, BStart: j, BEnd: b.b})
		}
		i, j = b.a+b.size, b.b+b.size
		if b.size > 0 {
			segs = append(segs, Segment{Kind: SegmentEqual, AStart: b.a, AEnd: i, BStart: b.b, BEnd: j})
		}
	}
	return segs
}
