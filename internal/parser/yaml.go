// Package parser loads evidence files: YAML documents declaring a frame of
// discernment and a list of sources with their mass assignments. Files are
// peripheral input glue; every distribution still passes through the domain
// constructor, so a malformed file fails with the same typed errors as any
// other invalid input.
package parser

import (
	"fmt"
	"os"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"gopkg.in/yaml.v3"
)

// File schema:
//
//	frame: [true, false]
//	tolerance: 1e-6        # optional
//	sources:
//	  - name: ipcc
//	    credibility: high  # optional, defaults to medium
//	    masses:
//	      - hypotheses: [true]
//	        mass: 0.95
//	      - hypotheses: [true, false]
//	        mass: 0.05

type evidenceFile struct {
	Frame     []string    `yaml:"frame"`
	Tolerance float64     `yaml:"tolerance"`
	Sources   []sourceDoc `yaml:"sources"`
}

type sourceDoc struct {
	Name        string    `yaml:"name"`
	Credibility string    `yaml:"credibility"`
	Masses      []massDoc `yaml:"masses"`
}

type massDoc struct {
	Hypotheses []string `yaml:"hypotheses"`
	Mass       float64  `yaml:"mass"`
}

// EvidenceSet is a parsed evidence file.
type EvidenceSet struct {
	Frame    domain.FocalSet
	Evidence []domain.Evidence
}

// LoadEvidenceFile reads and validates an evidence YAML file.
func LoadEvidenceFile(path string) (*EvidenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read evidence file: %w", err)
	}
	return ParseEvidence(data)
}

// ParseEvidence validates an evidence document against the domain rules.
func ParseEvidence(data []byte) (*EvidenceSet, error) {
	var doc evidenceFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse evidence file: %w", err)
	}
	if len(doc.Frame) == 0 {
		return nil, fmt.Errorf("evidence file declares no frame")
	}
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("evidence file declares no sources")
	}

	frame := domain.NewFocalSet(doc.Frame...)
	opts := []domain.MassOption{domain.WithFrame(frame)}
	if doc.Tolerance != 0 {
		opts = append(opts, domain.WithTolerance(doc.Tolerance))
	}

	set := &EvidenceSet{Frame: frame}
	for i, src := range doc.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("source %d has no name", i)
		}
		credibility := domain.CredibilityMedium
		if src.Credibility != "" {
			if !domain.ValidCredibility(src.Credibility) {
				return nil, fmt.Errorf("source %q: unknown credibility %q", src.Name, src.Credibility)
			}
			credibility = domain.Credibility(src.Credibility)
		}

		assignments := make([]domain.Assignment, 0, len(src.Masses))
		for _, md := range src.Masses {
			assignments = append(assignments, domain.Assignment{
				Set:  domain.NewFocalSet(md.Hypotheses...),
				Mass: md.Mass,
			})
		}
		mass, err := domain.NewBeliefMass(assignments, opts...)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
		set.Evidence = append(set.Evidence, domain.NewEvidence(src.Name, credibility, mass))
	}
	return set, nil
}
