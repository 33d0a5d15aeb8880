package services

import (
	"cmp"
	"slices"
)

type keyCount struct {
	key   string
	count int
}

// rankCounts orders counts by count descending, then key ascending, and keeps the first topN.
// topN < 0 keeps everything.
func rankCounts(counts map[string]int, topN int) []keyCount {
	ranked := make([]keyCount, 0, len(counts))
	for k, c := range counts {
		ranked = append(ranked, keyCount{key: k, count: c})
	}
	slices.SortFunc(ranked, func(a, b keyCount) int {
		if a.count != b.count {
			return cmp.Compare(b.count, a.count)
		}
		return cmp.Compare(a.key, b.key)
	})
	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// distinctCounter counts distinct tweets per key. Tweets without an id count once per row.
type distinctCounter struct {
	seen   map[string]map[string]struct{}
	counts map[string]int
}

func newDistinctCounter() *distinctCounter {
	return &distinctCounter{
		seen:   make(map[string]map[string]struct{}),
		counts: make(map[string]int),
	}
}

func (d *distinctCounter) add(key, id string) {
	if id == "" {
		d.counts[key]++
		return
	}
	ids, ok := d.seen[key]
	if !ok {
		ids = make(map[string]struct{})
		d.seen[key] = ids
	}
	if _, dup := ids[id]; dup {
		return
	}
	ids[id] = struct{}{}
	d.counts[key]++
}
