// Package accusation checks an accusation against the collected evidence.
package accusation

import "iter"

// Threshold is the number of corroborating clues an accusation needs to hold.
const Threshold = 2

// ClueSet is a collection of distinct clues.
type ClueSet interface {
	All() iter.Seq[string]
}

// SuspectLookup resolves the suspect a clue points to.
type SuspectLookup interface {
	Lookup(clue string) (string, bool)
}

// Verdict is the evaluation of an accusation.
type Verdict struct {
	Suspect string
	Count   int
	Valid   bool
	// Evidence lists the corroborating clues in the order clues yielded them.
	Evidence []string
}

// Tally counts the clues whose suspect is exactly suspect. Names are compared byte for byte.
func Tally(clues ClueSet, suspects SuspectLookup, suspect string) int {
	return len(corroborating(clues, suspects, suspect))
}

// IsValid reports whether count corroborating clues are enough to hold an accusation.
func IsValid(count int) bool {
	return count >= Threshold
}

// Evaluate tallies the clues for suspect and decides whether the accusation holds.
func Evaluate(clues ClueSet, suspects SuspectLookup, suspect string) Verdict {
	evidence := corroborating(clues, suspects, suspect)
	return Verdict{
		Suspect:  suspect,
		Count:    len(evidence),
		Valid:    IsValid(len(evidence)),
		Evidence: evidence,
	}
}

func corroborating(clues ClueSet, suspects SuspectLookup, suspect string) []string {
	var evidence []string
	for clue := range clues.All() {
		if s, ok := suspects.Lookup(clue); ok && s == suspect {
			evidence = append(evidence, clue)
		}
	}
	return evidence
}
