package domain

import "fmt"

// Conflict returns K, the total mass the two sources assign to mutually
// exclusive focal-set pairs: the sum of m1(A)*m2(B) over all pairs with
// A ∩ B = ∅. K is 0 when the sources never disagree on exclusive
// hypotheses and 1 under total disagreement.
//
// The cross product is walked in canonical key order so the accumulated
// float is reproducible. Focal-set counts are bounded by 2^|frame|, so no
// shortcut over the O(n*m) scan is attempted.
func Conflict(m1, m2 *BeliefMass) (float64, error) {
	if !m1.frame.Equal(m2.frame) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrIncompatibleFrames, m1.frame, m2.frame)
	}
	k := 0.0
	keys2 := m2.sortedKeys()
	for _, k1 := range m1.sortedKeys() {
		e1 := m1.entries[k1]
		for _, k2 := range keys2 {
			e2 := m2.entries[k2]
			if !e1.set.Intersects(e2.set) {
				k += e1.mass * e2.mass
			}
		}
	}
	return k, nil
}
