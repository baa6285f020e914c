// Package ledger maps clues to the suspects they implicate.
//
// The ledger is a hash table with a fixed number of buckets and separate chaining. New keys are prepended to their
// bucket's chain, so a chain lists its keys from the most recently added to the oldest.
package ledger

import "iter"

// BucketCount is the number of buckets used by New.
const BucketCount = 17

const hashSeed uint64 = 5381

// Hash is the djb2 hash of s: starting from 5381, every byte is folded in as h = h*33 + b.
func Hash(s string) uint64 {
	h := hashSeed
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint64(s[i])
	}
	return h
}

// Bucket returns the bucket index of s in a table with n buckets.
func Bucket(s string, n int) int {
	return int(Hash(s) % uint64(n))
}

type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Ledger associates clue texts with suspect names. It is not safe for concurrent use.
type Ledger struct {
	buckets []*entry
	size    int
}

// New creates an empty ledger with BucketCount buckets.
func New() *Ledger {
	return NewSized(BucketCount)
}

// NewSized creates an empty ledger with n buckets. n is raised to 1 if smaller.
func NewSized(n int) *Ledger {
	return &Ledger{buckets: make([]*entry, max(n, 1))}
}

// Buckets returns the number of buckets.
func (l *Ledger) Buckets() int {
	return len(l.buckets)
}

// Len returns the number of distinct clues.
func (l *Ledger) Len() int {
	return l.size
}

// Upsert associates clue with suspect, replacing the suspect of an existing entry. An empty clue is ignored.
func (l *Ledger) Upsert(clue, suspect string) {
	if clue == "" {
		return
	}
	idx := Bucket(clue, len(l.buckets))
	for e := l.buckets[idx]; e != nil; e = e.next {
		if e.clue == clue {
			e.suspect = suspect
			return
		}
	}
	l.buckets[idx] = &entry{clue: clue, suspect: suspect, next: l.buckets[idx]}
	l.size++
}

// Lookup returns the suspect associated with clue.
func (l *Ledger) Lookup(clue string) (string, bool) {
	if clue == "" {
		return "", false
	}
	for e := l.buckets[Bucket(clue, len(l.buckets))]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// All yields every (clue, suspect) pair, bucket by bucket, each chain from head to tail.
func (l *Ledger) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, head := range l.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.clue, e.suspect) {
					return
				}
			}
		}
	}
}

// Chain returns the clues stored in bucket i from head to tail. It returns nil for an out of range bucket.
func (l *Ledger) Chain(i int) []string {
	if i < 0 || i >= len(l.buckets) {
		return nil
	}
	var clues []string
	for e := l.buckets[i]; e != nil; e = e.next {
		clues = append(clues, e.clue)
	}
	return clues
}

// Suspects returns the distinct suspect names in the order All first yields them.
func (l *Ledger) Suspects() []string {
	seen := make(map[string]bool)
	var suspects []string
	for _, suspect := range l.All() {
		if !seen[suspect] {
			seen[suspect] = true
			suspects = append(suspects, suspect)
		}
	}
	return suspects
}
