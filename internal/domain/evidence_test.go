package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidCredibility(t *testing.T) {
	for _, c := range []Credibility{CredibilityHigh, CredibilityMedium, CredibilityLow} {
		if !ValidCredibility(string(c)) {
			t.Errorf("%s should be valid", c)
		}
	}
	if ValidCredibility("stellar") {
		t.Error("stellar is not a credibility grade")
	}
}

func TestCredibility_DiscountFactor(t *testing.T) {
	if CredibilityHigh.DiscountFactor() != 1.0 {
		t.Error("high credibility should not be discounted")
	}
	if CredibilityMedium.DiscountFactor() <= CredibilityLow.DiscountFactor() {
		t.Error("lower credibility should discount harder")
	}
	for _, c := range []Credibility{CredibilityHigh, CredibilityMedium, CredibilityLow, Credibility("unknown")} {
		f := c.DiscountFactor()
		if f <= 0 || f > 1 {
			t.Errorf("%s: factor %g outside (0, 1]", c, f)
		}
	}
}

func TestNewEvidence(t *testing.T) {
	m := massOrFatal(t, []Assignment{{Set: NewFocalSet("true"), Mass: 1.0}})
	ev := NewEvidence("reuters", CredibilityHigh, m)

	if ev.ID == uuid.Nil {
		t.Error("evidence should be assigned an ID")
	}
	if ev.Source != "reuters" || ev.Credibility != CredibilityHigh {
		t.Errorf("provenance not recorded: %+v", ev)
	}
	if ev.Mass != m {
		t.Error("evidence should reference the given mass")
	}
	if ev.CollectedAt.IsZero() {
		t.Error("collection time should be stamped")
	}
}
