package mapreduce

// Counter tallies occurrences per key and remembers the order keys were first seen.
// Iteration order is therefore deterministic, unlike a plain map.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

// NewCounter returns an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

// Add increases the count for key by n.
func (c *Counter[K]) Add(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Inc increases the count for key by one.
func (c *Counter[K]) Inc(key K) {
	c.Add(key, 1)
}

// Get returns the count for key and whether it was ever added.
func (c *Counter[K]) Get(key K) (int, bool) {
	n, ok := c.counts[key]
	return n, ok
}

// Len is the number of distinct keys.
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Keys returns the keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	keys := make([]K, len(c.order))
	copy(keys, c.order)
	return keys
}

// Map folds every item into a fresh counter. emit is called once per item
// and may report any number of keys through inc.
func Map[T any, K comparable](items []T, emit func(item T, inc func(K))) *Counter[K] {
	c := NewCounter[K]()
	for _, item := range items {
		emit(item, c.Inc)
	}
	return c
}
