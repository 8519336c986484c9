package dictionary

import "unicode/utf8"

// partition is one length bucket of a Remaining: the words in sorted order
// and the subset still live.
type partition struct {
	order []string
	live  map[string]struct{}
}

// Remaining is a consumable copy of a Dictionary, partitioned by word length
// in runes.
// Words leave it through Take and never come back.
type Remaining struct {
	parts map[int]*partition
	size  int
}

// NewRemaining copies every word of d into a fresh Remaining.
// The sorted partitions of d are shared read-only; only liveness is copied.
func NewRemaining(d *Dictionary) *Remaining {
	r := &Remaining{parts: make(map[int]*partition, len(d.byLen))}
	for n, words := range d.byLen {
		p := &partition{order: words, live: make(map[string]struct{}, len(words))}
		for _, w := range words {
			p.live[w] = struct{}{}
		}
		r.parts[n] = p
		r.size += len(words)
	}
	return r
}

// Contains reports whether w is still live.
func (r *Remaining) Contains(w string) bool {
	p, ok := r.parts[utf8.RuneCountInString(w)]
	if !ok {
		return false
	}
	_, ok = p.live[w]
	return ok
}

// Take removes w and reports whether it was live before the call.
func (r *Remaining) Take(w string) bool {
	p, ok := r.parts[utf8.RuneCountInString(w)]
	if !ok {
		return false
	}
	if _, ok = p.live[w]; !ok {
		return false
	}
	delete(p.live, w)
	r.size--
	return true
}

// Each calls fn for every live word of n runes in sorted order until fn
// returns false. Words taken while Each runs are skipped once reached.
func (r *Remaining) Each(n int, fn func(w string) bool) {
	p, ok := r.parts[n]
	if !ok {
		return
	}
	for _, w := range p.order {
		if _, live := p.live[w]; !live {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

// Len returns the number of live words.
func (r *Remaining) Len() int {
	return r.size
}
