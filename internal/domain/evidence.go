package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credibility grades how reliable an evidence source is considered.
type Credibility string

const (
	CredibilityHigh   Credibility = "high"
	CredibilityMedium Credibility = "medium"
	CredibilityLow    Credibility = "low"
)

// ValidCredibility reports whether c names a known grade.
func ValidCredibility(c string) bool {
	switch Credibility(c) {
	case CredibilityHigh, CredibilityMedium, CredibilityLow:
		return true
	}
	return false
}

// DiscountFactor returns the Shafer discounting reliability for the grade.
// High-credibility evidence is taken at face value.
func (c Credibility) DiscountFactor() float64 {
	switch c {
	case CredibilityHigh:
		return 1.0
	case CredibilityMedium:
		return 0.9
	case CredibilityLow:
		return 0.75
	default:
		return 0.9
	}
}

// Evidence attributes a belief mass to a named source so fusion steps can
// be traced back to where each piece of support came from.
type Evidence struct {
	ID          uuid.UUID   `json:"id"`
	Source      string      `json:"source"`
	Credibility Credibility `json:"credibility"`
	Mass        *BeliefMass `json:"-"`
	CollectedAt time.Time   `json:"collected_at"`
}

// NewEvidence stamps a belief mass with provenance.
func NewEvidence(source string, credibility Credibility, mass *BeliefMass) Evidence {
	return Evidence{
		ID:          uuid.New(),
		Source:      source,
		Credibility: credibility,
		Mass:        mass,
		CollectedAt: time.Now(),
	}
}
