package domain

import (
	"fmt"
	"sort"
)

// FusionRule selects the combination policy for fusing two belief masses.
// The set is closed; Fuse dispatches on it exhaustively.
type FusionRule string

const (
	// RuleDempster is the conjunctive rule with conflict normalization.
	// Fails on total conflict; commutative and associative to numerical
	// tolerance.
	RuleDempster FusionRule = "dempster"
	// RuleYager moves conflict mass onto the frame (ignorance) instead of
	// normalizing. Never fails; commutative but not associative, because
	// the reassigned conflict is pairwise, not globally accumulated.
	RuleYager FusionRule = "yager"
	// RuleDuboisPrade moves the mass of each disjoint pair onto the union
	// of the pair, preserving where the disagreement lives. Never fails.
	RuleDuboisPrade FusionRule = "dubois_prade"
	// RuleAverage is the arithmetic mean over the union of focal sets. Not
	// a Dempster-Shafer rule; a robust baseline. Pairwise averaging folded
	// over three or more sources is not a true n-way mean, so chains are
	// order-dependent.
	RuleAverage FusionRule = "average"
)

// DefaultRule is used when no rule is given.
const DefaultRule = RuleDempster

// HighConflictThreshold is the conflict level above which a fusion result
// is flagged as high-conflict. The result is still produced; the flag is
// advisory.
const HighConflictThreshold = 0.9

// ValidFusionRule reports whether r names a known rule.
func ValidFusionRule(r string) bool {
	switch FusionRule(r) {
	case RuleDempster, RuleYager, RuleDuboisPrade, RuleAverage:
		return true
	}
	return false
}

// FusionResult is the outcome of a pairwise fusion. Conflict is K between
// the two inputs; HighConflict advises that K reached
// HighConflictThreshold. The advisory never blocks the result.
type FusionResult struct {
	Mass         *BeliefMass
	Conflict     float64
	HighConflict bool
}

// Fuse combines two belief masses under the given rule. An empty rule
// selects DefaultRule. The inputs must share a frame; the result inherits
// the left operand's frame and tolerance and is revalidated through
// NewBeliefMass. Inputs are never mutated.
func Fuse(m1, m2 *BeliefMass, rule FusionRule) (*FusionResult, error) {
	if rule == "" {
		rule = DefaultRule
	}
	if !m1.frame.Equal(m2.frame) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrIncompatibleFrames, m1.frame, m2.frame)
	}
	switch rule {
	case RuleDempster:
		return fuseDempster(m1, m2)
	case RuleYager:
		return fuseYager(m1, m2)
	case RuleDuboisPrade:
		return fuseDuboisPrade(m1, m2)
	case RuleAverage:
		return fuseAverage(m1, m2)
	default:
		return nil, fmt.Errorf("unknown fusion rule %q", rule)
	}
}

// FuseAll left-folds Fuse over the sources in input order. It fails with
// ErrNoSources on an empty slice and returns the single element unchanged
// for a singleton.
//
// The fold order is part of the contract: only Dempster is associative (to
// numerical tolerance), so under Yager and Average the final distribution
// depends on the order of the inputs.
func FuseAll(sources []*BeliefMass, rule FusionRule) (*BeliefMass, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	acc := sources[0]
	for i, m := range sources[1:] {
		res, err := Fuse(acc, m, rule)
		if err != nil {
			return nil, fmt.Errorf("fuse source %d: %w", i+1, err)
		}
		acc = res.Mass
	}
	return acc, nil
}

// crossProducts walks the Cartesian product of the two focal-set
// collections in canonical key order, calling intersecting for pairs with
// a nonempty intersection and disjoint otherwise. Fixed iteration order
// keeps float accumulation reproducible.
func crossProducts(m1, m2 *BeliefMass, intersecting func(a, b FocalSet, product float64), disjoint func(a, b FocalSet, product float64)) {
	keys2 := m2.sortedKeys()
	for _, k1 := range m1.sortedKeys() {
		e1 := m1.entries[k1]
		for _, k2 := range keys2 {
			e2 := m2.entries[k2]
			p := e1.mass * e2.mass
			if e1.set.Intersects(e2.set) {
				intersecting(e1.set, e2.set, p)
			} else {
				disjoint(e1.set, e2.set, p)
			}
		}
	}
}

// accumulator collects combined masses keyed by canonical set key.
type accumulator map[string]massEntry

func (acc accumulator) add(set FocalSet, mass float64) {
	key := set.Key()
	e := acc[key]
	e.set = set
	e.mass += mass
	acc[key] = e
}

// assignments flattens the accumulator in canonical order, optionally
// scaling every mass.
func (acc accumulator) assignments(scale float64) []Assignment {
	keys := make([]string, 0, len(acc))
	for key := range acc {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Assignment, 0, len(keys))
	for _, key := range keys {
		e := acc[key]
		out = append(out, Assignment{Set: e.set, Mass: e.mass * scale})
	}
	return out
}

func (m *BeliefMass) rebuild(assignments []Assignment) (*BeliefMass, error) {
	return NewBeliefMass(assignments, WithFrame(m.frame), WithTolerance(m.tolerance))
}

func fuseDempster(m1, m2 *BeliefMass) (*FusionResult, error) {
	combined := make(accumulator)
	k := 0.0
	crossProducts(m1, m2,
		func(a, b FocalSet, p float64) { combined.add(a.Intersect(b), p) },
		func(a, b FocalSet, p float64) { k += p },
	)
	return finalizeDempster(m1, combined, k)
}

func finalizeDempster(m1 *BeliefMass, combined accumulator, k float64) (*FusionResult, error) {
	if k >= 1-m1.tolerance {
		return nil, fmt.Errorf("%w: K=%g", ErrTotalConflict, k)
	}
	mass, err := m1.rebuild(combined.assignments(1 / (1 - k)))
	if err != nil {
		return nil, fmt.Errorf("dempster combination: %w", err)
	}
	return &FusionResult{Mass: mass, Conflict: k, HighConflict: k >= HighConflictThreshold}, nil
}

func fuseYager(m1, m2 *BeliefMass) (*FusionResult, error) {
	combined := make(accumulator)
	k := 0.0
	crossProducts(m1, m2,
		func(a, b FocalSet, p float64) { combined.add(a.Intersect(b), p) },
		func(a, b FocalSet, p float64) { k += p },
	)
	return finalizeYager(m1, combined, k)
}

func finalizeYager(m1 *BeliefMass, combined accumulator, k float64) (*FusionResult, error) {
	if k > 0 {
		combined.add(m1.frame, k)
	}
	mass, err := m1.rebuild(combined.assignments(1))
	if err != nil {
		return nil, fmt.Errorf("yager combination: %w", err)
	}
	return &FusionResult{Mass: mass, Conflict: k, HighConflict: k >= HighConflictThreshold}, nil
}

func fuseDuboisPrade(m1, m2 *BeliefMass) (*FusionResult, error) {
	combined := make(accumulator)
	k := 0.0
	crossProducts(m1, m2,
		func(a, b FocalSet, p float64) { combined.add(a.Intersect(b), p) },
		func(a, b FocalSet, p float64) {
			combined.add(a.Union(b), p)
			k += p
		},
	)
	return finalizeDuboisPrade(m1, combined, k)
}

func finalizeDuboisPrade(m1 *BeliefMass, combined accumulator, k float64) (*FusionResult, error) {
	mass, err := m1.rebuild(combined.assignments(1))
	if err != nil {
		return nil, fmt.Errorf("dubois-prade combination: %w", err)
	}
	return &FusionResult{Mass: mass, Conflict: k, HighConflict: k >= HighConflictThreshold}, nil
}

func fuseAverage(m1, m2 *BeliefMass) (*FusionResult, error) {
	combined := make(accumulator)
	for _, key := range m1.sortedKeys() {
		e := m1.entries[key]
		combined.add(e.set, e.mass/2)
	}
	for _, key := range m2.sortedKeys() {
		e := m2.entries[key]
		combined.add(e.set, e.mass/2)
	}
	mass, err := m1.rebuild(combined.assignments(1))
	if err != nil {
		return nil, fmt.Errorf("average combination: %w", err)
	}
	k, err := Conflict(m1, m2)
	if err != nil {
		return nil, err
	}
	return &FusionResult{Mass: mass, Conflict: k, HighConflict: k >= HighConflictThreshold}, nil
}
