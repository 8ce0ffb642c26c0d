package domain

import (
	"errors"
	"math"
	"testing"
)

func massOrFatal(t *testing.T, assignments []Assignment, opts ...MassOption) *BeliefMass {
	t.Helper()
	m, err := NewBeliefMass(assignments, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestNewBeliefMass_Valid(t *testing.T) {
	theta := NewFocalSet("true", "false")
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("true"), Mass: 0.85},
		{Set: theta, Mass: 0.15},
	})
	if !m.IsValid() {
		t.Error("constructed mass should be valid")
	}
	if !m.Frame().Equal(theta) {
		t.Errorf("inferred frame = %s, want %s", m.Frame(), theta)
	}
	if got := m.Mass(NewFocalSet("true")); got != 0.85 {
		t.Errorf("mass({true}) = %g, want 0.85", got)
	}
	if got := m.Mass(NewFocalSet("false")); got != 0 {
		t.Errorf("mass({false}) = %g, want 0 for non-focal set", got)
	}
}

func TestNewBeliefMass_Errors(t *testing.T) {
	theta := NewFocalSet("a", "b")
	tests := []struct {
		name        string
		assignments []Assignment
		opts        []MassOption
		want        error
	}{
		{
			name: "empty distribution",
			want: ErrEmptyDistribution,
		},
		{
			name:        "empty focal set",
			assignments: []Assignment{{Set: FocalSet{}, Mass: 1.0}},
			want:        ErrEmptyFocalSet,
		},
		{
			name: "negative mass",
			assignments: []Assignment{
				{Set: NewFocalSet("a"), Mass: -0.1},
				{Set: NewFocalSet("b"), Mass: 1.1},
			},
			want: ErrMassOutOfRange,
		},
		{
			name:        "mass above one",
			assignments: []Assignment{{Set: NewFocalSet("a"), Mass: 1.5}},
			want:        ErrMassOutOfRange,
		},
		{
			name:        "focal set outside frame",
			assignments: []Assignment{{Set: NewFocalSet("c"), Mass: 1.0}},
			opts:        []MassOption{WithFrame(theta)},
			want:        ErrFocalSetNotInFrame,
		},
		{
			name: "sum below one",
			assignments: []Assignment{
				{Set: NewFocalSet("a"), Mass: 0.4},
				{Set: NewFocalSet("b"), Mass: 0.4},
			},
			want: ErrNotNormalized,
		},
		{
			name: "sum above one",
			assignments: []Assignment{
				{Set: NewFocalSet("a"), Mass: 0.7},
				{Set: NewFocalSet("b"), Mass: 0.7},
			},
			want: ErrNotNormalized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBeliefMass(tt.assignments, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewBeliefMass_RescalesWithinTolerance(t *testing.T) {
	// Sum deviates from 1 by less than the (loose) tolerance: masses are
	// rescaled so the stored distribution sums to exactly 1.
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 0.6},
		{Set: NewFocalSet("b"), Mass: 0.4004},
	}, WithTolerance(1e-3))

	sum := 0.0
	for _, v := range m.Distribution() {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("rescaled sum = %.15f, want exactly 1", sum)
	}
	if got := m.Mass(NewFocalSet("a")); math.Abs(got-0.6/1.0004) > 1e-12 {
		t.Errorf("mass(a) = %.15f, want %.15f", got, 0.6/1.0004)
	}
}

func TestNewBeliefMass_StrictToleranceRejects(t *testing.T) {
	_, err := NewBeliefMass([]Assignment{
		{Set: NewFocalSet("a"), Mass: 0.6},
		{Set: NewFocalSet("b"), Mass: 0.4004},
	})
	if !errors.Is(err, ErrNotNormalized) {
		t.Errorf("default tolerance should reject sum 1.0004, got %v", err)
	}
}

func TestNewBeliefMass_AccumulatesDuplicates(t *testing.T) {
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 0.3},
		{Set: NewFocalSet("a"), Mass: 0.3},
		{Set: NewFocalSet("b"), Mass: 0.4},
	})
	if got := m.Mass(NewFocalSet("a")); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("mass(a) = %g, want 0.6", got)
	}
	if m.FocalCount() != 2 {
		t.Errorf("focal count = %d, want 2", m.FocalCount())
	}
}

func TestNewBeliefMass_DropsZeroMass(t *testing.T) {
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 1.0},
		{Set: NewFocalSet("b"), Mass: 0.0},
	})
	if m.FocalCount() != 1 {
		t.Errorf("focal count = %d, want 1 (zero-mass set dropped)", m.FocalCount())
	}
}

func TestNewBeliefMass_InvalidTolerance(t *testing.T) {
	_, err := NewBeliefMass([]Assignment{{Set: NewFocalSet("a"), Mass: 1}}, WithTolerance(-1))
	if err == nil {
		t.Error("negative tolerance should fail")
	}
}

func TestBeliefPlausibility_Scenario(t *testing.T) {
	// θ={A,B,C}, m={A:0.4, B:0.3, {A,B}:0.2, θ:0.1}
	theta := NewFocalSet("A", "B", "C")
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("A"), Mass: 0.4},
		{Set: NewFocalSet("B"), Mass: 0.3},
		{Set: NewFocalSet("A", "B"), Mass: 0.2},
		{Set: theta, Mass: 0.1},
	}, WithFrame(theta))

	if got := m.Belief(NewFocalSet("A", "B")); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("Bel({A,B}) = %g, want 0.9", got)
	}
	if got := m.Plausibility(NewFocalSet("A")); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Pl({A}) = %g, want 0.7", got)
	}
	if got := m.Plausibility(NewFocalSet("A", "B")); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Pl({A,B}) = %g, want 1.0", got)
	}

	bel, pl := m.UncertaintyInterval(NewFocalSet("A"))
	if bel != m.Belief(NewFocalSet("A")) || pl != m.Plausibility(NewFocalSet("A")) {
		t.Error("UncertaintyInterval should match Belief and Plausibility")
	}
}

func TestBeliefPlausibility_ComplementIdentity(t *testing.T) {
	theta := NewFocalSet("A", "B", "C")
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("A"), Mass: 0.5},
		{Set: NewFocalSet("B", "C"), Mass: 0.3},
		{Set: theta, Mass: 0.2},
	}, WithFrame(theta))

	for _, prop := range []FocalSet{NewFocalSet("A"), NewFocalSet("B"), NewFocalSet("A", "C")} {
		bel := m.Belief(prop)
		pl := m.Plausibility(prop)
		if bel > pl+1e-9 {
			t.Errorf("Bel(%s)=%g exceeds Pl=%g", prop, bel, pl)
		}
		complementPl := m.Plausibility(prop.Complement(theta))
		if math.Abs(bel+complementPl-1) > 1e-9 {
			t.Errorf("Bel(%s) + Pl(complement) = %g, want 1", prop, bel+complementPl)
		}
	}
}

func TestDiscount(t *testing.T) {
	theta := NewFocalSet("true", "false")
	m := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("true"), Mass: 0.8},
		{Set: theta, Mass: 0.2},
	}, WithFrame(theta))

	d, err := m.Discount(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Mass(NewFocalSet("true")); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("discounted mass({true}) = %g, want 0.4", got)
	}
	if got := d.Mass(theta); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("discounted mass(θ) = %g, want 0.6", got)
	}
	if !d.IsValid() {
		t.Error("discounted mass should be valid")
	}

	// Full reliability is the identity; zero reliability is vacuous.
	same, err := m.Discount(1)
	if err != nil || !same.ApproxEqual(m, 1e-12) {
		t.Errorf("Discount(1) should be identity, got %s (err %v)", same, err)
	}
	vacuous, err := m.Discount(0)
	if err != nil || math.Abs(vacuous.Mass(theta)-1) > 1e-12 {
		t.Errorf("Discount(0) should be vacuous, got %s (err %v)", vacuous, err)
	}

	if _, err := m.Discount(1.5); !errors.Is(err, ErrMassOutOfRange) {
		t.Errorf("Discount(1.5) error = %v, want ErrMassOutOfRange", err)
	}
}

func TestApproxEqual(t *testing.T) {
	theta := NewFocalSet("a", "b")
	m1 := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 0.5},
		{Set: NewFocalSet("b"), Mass: 0.5},
	}, WithFrame(theta))
	m2 := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 0.5000001},
		{Set: NewFocalSet("b"), Mass: 0.4999999},
	}, WithFrame(theta))
	m3 := massOrFatal(t, []Assignment{
		{Set: NewFocalSet("a"), Mass: 1.0},
	}, WithFrame(theta))

	if !m1.ApproxEqual(m2, 1e-6) {
		t.Error("near-identical masses should compare equal at 1e-6")
	}
	if m1.ApproxEqual(m3, 1e-6) {
		t.Error("different masses should not compare equal")
	}
	other := massOrFatal(t, []Assignment{{Set: NewFocalSet("a"), Mass: 1.0}})
	if m3.ApproxEqual(other, 1e-6) {
		t.Error("masses over different frames should not compare equal")
	}
}
