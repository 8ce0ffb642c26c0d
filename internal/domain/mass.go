package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultTolerance is the floating-point tolerance used for range and
// normalization checks when none is configured.
const DefaultTolerance = 1e-6

// Assignment pairs a focal set with its probability mass. Duplicate sets in
// an assignment list are accumulated before validation.
type Assignment struct {
	Set  FocalSet
	Mass float64
}

type massConfig struct {
	frame        FocalSet
	frameSet     bool
	tolerance    float64
	toleranceSet bool
}

// MassOption configures belief mass construction.
type MassOption func(*massConfig)

// WithFrame fixes the frame of discernment instead of inferring it as the
// union of the focal sets.
func WithFrame(frame FocalSet) MassOption {
	return func(c *massConfig) {
		c.frame = frame
		c.frameSet = true
	}
}

// WithTolerance overrides the floating-point tolerance (default 1e-6).
func WithTolerance(eps float64) MassOption {
	return func(c *massConfig) {
		c.tolerance = eps
		c.toleranceSet = true
	}
}

type massEntry struct {
	set  FocalSet
	mass float64
}

// BeliefMass is a validated Dempster-Shafer mass function: an assignment of
// probability masses to focal subsets of a frame of discernment, summing to
// 1. Values are immutable after construction; fusion and discounting always
// produce new values, so a BeliefMass may be shared across goroutines.
type BeliefMass struct {
	frame     FocalSet
	entries   map[string]massEntry
	tolerance float64
}

// NewBeliefMass validates an assignment and returns an immutable belief
// mass. The constructor is the single gate for the mass-function
// invariants: every fusion rule emits its combined mapping back through it.
//
// When the mass sum deviates from 1 by less than the tolerance, the masses
// are rescaled so the stored distribution sums to exactly 1; a deviation of
// the tolerance or more fails with ErrNotNormalized. Entries with zero mass
// pass validation and are dropped.
func NewBeliefMass(assignments []Assignment, opts ...MassOption) (*BeliefMass, error) {
	cfg := massConfig{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.toleranceSet && cfg.tolerance <= 0 {
		return nil, fmt.Errorf("tolerance must be positive, got %g", cfg.tolerance)
	}
	eps := cfg.tolerance

	if len(assignments) == 0 {
		return nil, ErrEmptyDistribution
	}

	// Accumulate duplicates before any numeric check so the checks see the
	// effective per-set mass.
	entries := make(map[string]massEntry, len(assignments))
	for _, a := range assignments {
		if a.Set.IsEmpty() {
			return nil, fmt.Errorf("%w: assignment carries mass %g", ErrEmptyFocalSet, a.Mass)
		}
		key := a.Set.Key()
		e := entries[key]
		e.set = a.Set
		e.mass += a.Mass
		entries[key] = e
	}

	frame := cfg.frame
	if !cfg.frameSet {
		for _, e := range entries {
			frame = frame.Union(e.set)
		}
	}

	sum := 0.0
	for _, e := range entries {
		if e.mass < 0 || e.mass > 1+eps {
			return nil, fmt.Errorf("%w: mass %g for %s outside [0, 1]", ErrMassOutOfRange, e.mass, e.set)
		}
		if !e.set.SubsetOf(frame) {
			return nil, fmt.Errorf("%w: %s not a subset of %s", ErrFocalSetNotInFrame, e.set, frame)
		}
		sum += e.mass
	}

	if math.Abs(sum-1) >= eps {
		return nil, fmt.Errorf("%w: sum is %g", ErrNotNormalized, sum)
	}

	// Zero-mass sets are not focal by definition. Rescaling by the measured
	// sum is order-independent, so round-off inside the tolerance cannot
	// make two logically equal assignments diverge.
	out := make(map[string]massEntry, len(entries))
	for key, e := range entries {
		if e.mass == 0 {
			continue
		}
		if sum != 1 {
			e.mass /= sum
		}
		out[key] = e
	}

	return &BeliefMass{frame: frame, entries: out, tolerance: eps}, nil
}

// Frame returns the frame of discernment.
func (m *BeliefMass) Frame() FocalSet {
	return m.frame
}

// Tolerance returns the floating-point tolerance attached to this value.
func (m *BeliefMass) Tolerance() float64 {
	return m.tolerance
}

// Mass returns the mass assigned to the given set, or 0 if it is not focal.
func (m *BeliefMass) Mass(set FocalSet) float64 {
	return m.entries[set.Key()].mass
}

// FocalSets returns the focal sets in canonical key order.
func (m *BeliefMass) FocalSets() []FocalSet {
	out := make([]FocalSet, 0, len(m.entries))
	for _, key := range m.sortedKeys() {
		out = append(out, m.entries[key].set)
	}
	return out
}

// FocalCount returns the number of focal sets.
func (m *BeliefMass) FocalCount() int {
	return len(m.entries)
}

// Distribution returns a copy of the mass mapping keyed by canonical set key.
func (m *BeliefMass) Distribution() map[string]float64 {
	out := make(map[string]float64, len(m.entries))
	for key, e := range m.entries {
		out[key] = e.mass
	}
	return out
}

func (m *BeliefMass) sortedKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Belief returns Bel(proposition): the summed mass of focal sets contained
// in the proposition. It is the lower bound of the probability that the
// proposition holds. The proposition need not be focal.
func (m *BeliefMass) Belief(proposition FocalSet) float64 {
	total := 0.0
	for _, key := range m.sortedKeys() {
		e := m.entries[key]
		if e.set.SubsetOf(proposition) {
			total += e.mass
		}
	}
	return total
}

// Plausibility returns Pl(proposition): the summed mass of focal sets that
// intersect the proposition, the upper bound of its probability.
func (m *BeliefMass) Plausibility(proposition FocalSet) float64 {
	total := 0.0
	for _, key := range m.sortedKeys() {
		e := m.entries[key]
		if e.set.Intersects(proposition) {
			total += e.mass
		}
	}
	return total
}

// UncertaintyInterval returns the [Bel, Pl] interval for a proposition. The
// width of the interval is the residual ignorance about the proposition.
func (m *BeliefMass) UncertaintyInterval(proposition FocalSet) (bel, pl float64) {
	return m.Belief(proposition), m.Plausibility(proposition)
}

// IsValid re-checks the construction invariants. It holds for every value
// produced by NewBeliefMass; it exists so callers can assert it cheaply.
func (m *BeliefMass) IsValid() bool {
	if m == nil || len(m.entries) == 0 {
		return false
	}
	sum := 0.0
	for _, e := range m.entries {
		if e.set.IsEmpty() || !e.set.SubsetOf(m.frame) {
			return false
		}
		if e.mass < 0 || e.mass > 1+m.tolerance {
			return false
		}
		sum += e.mass
	}
	return math.Abs(sum-1) < m.tolerance
}

// Discount applies Shafer discounting with reliability factor alpha in
// [0, 1]: every focal mass is scaled by alpha and the remaining 1-alpha is
// moved onto the frame as ignorance. Discounting low-credibility evidence
// before fusion keeps one unreliable source from dominating the fold.
func (m *BeliefMass) Discount(alpha float64) (*BeliefMass, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: discount factor %g outside [0, 1]", ErrMassOutOfRange, alpha)
	}
	assignments := make([]Assignment, 0, len(m.entries)+1)
	for _, key := range m.sortedKeys() {
		e := m.entries[key]
		assignments = append(assignments, Assignment{Set: e.set, Mass: e.mass * alpha})
	}
	assignments = append(assignments, Assignment{Set: m.frame, Mass: 1 - alpha})
	return NewBeliefMass(assignments, WithFrame(m.frame), WithTolerance(m.tolerance))
}

// ApproxEqual reports whether two belief masses share a frame and agree on
// every focal mass within tol.
func (m *BeliefMass) ApproxEqual(o *BeliefMass, tol float64) bool {
	if !m.frame.Equal(o.frame) {
		return false
	}
	for key, e := range m.entries {
		if math.Abs(e.mass-o.entries[key].mass) > tol {
			return false
		}
	}
	for key, e := range o.entries {
		if math.Abs(e.mass-m.entries[key].mass) > tol {
			return false
		}
	}
	return true
}

// String renders the distribution in canonical order, e.g.
// "{true}:0.8500 {true, false}:0.1500".
func (m *BeliefMass) String() string {
	parts := make([]string, 0, len(m.entries))
	for _, key := range m.sortedKeys() {
		e := m.entries[key]
		parts = append(parts, fmt.Sprintf("%s:%.4f", e.set, e.mass))
	}
	return strings.Join(parts, " ")
}
