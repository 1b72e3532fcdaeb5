package mapreduce

import "sort"

// Entry is a key with its count.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// Entries returns every key with its count in first-seen order.
func (c *Counter[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], len(c.order))
	for i, key := range c.order {
		entries[i] = Entry[K]{Key: key, Count: c.counts[key]}
	}
	return entries
}

// TopN returns the n entries with the highest counts, highest first.
// Equal counts keep first-seen order. n larger than the number of keys returns all of them.
func TopN[K comparable](c *Counter[K], n int) []Entry[K] {
	ss := c.Entries()

	// Stable sort: ties must stay in encounter order
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	return ss[:limit]
}
