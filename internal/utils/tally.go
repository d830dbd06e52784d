package util

// Tally counts occurrences of keys and remembers the order in which each key
// was first seen. Ties in MostFrequent go to the earliest-seen key.
type Tally[K comparable] struct {
	order  []K
	counts map[K]int
}

func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

func (t *Tally[K]) Add(k K) {
	if _, ok := t.counts[k]; !ok {
		t.order = append(t.order, k)
	}
	t.counts[k]++
}

func (t *Tally[K]) Count(k K) int {
	return t.counts[k]
}

func (t *Tally[K]) Len() int {
	return len(t.order)
}

// Total is the sum of all counts.
func (t *Tally[K]) Total() int {
	total := 0
	for _, k := range t.order {
		total += t.counts[k]
	}
	return total
}

// Entries returns the counts in first-seen order.
func (t *Tally[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry[K]{Key: k, Count: t.counts[k]})
	}
	return entries
}

// MostFrequent returns the key with the highest count. ok is false when empty.
func (t *Tally[K]) MostFrequent() (key K, count int, ok bool) {
	for _, k := range t.order {
		if c := t.counts[k]; !ok || c > count {
			key, count, ok = k, c, true
		}
	}
	return key, count, ok
}

type Entry[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}
