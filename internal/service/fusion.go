package service

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHighConflictThreshold = domain.HighConflictThreshold
	DefaultParallelThreshold     = 64
	DefaultWorkers               = 4
)

// FusionService folds evidence from multiple sources into a single belief
// mass, logging each step. The exported fields are tunable after
// construction.
type FusionService struct {
	logger *zap.Logger

	// Rule is the combination rule applied at every fold step.
	Rule domain.FusionRule
	// HighConflictThreshold is the per-step conflict level that triggers
	// an advisory warning. The step still produces a result.
	HighConflictThreshold float64
	// ParallelThreshold is the focal-set cross-product size above which
	// the sharded combiner is used.
	ParallelThreshold int
	Workers           int
	// DiscountByCredibility applies Shafer discounting per the evidence's
	// credibility grade before folding.
	DiscountByCredibility bool
}

func NewFusionService(logger *zap.Logger) *FusionService {
	return &FusionService{
		logger:                logger,
		Rule:                  domain.DefaultRule,
		HighConflictThreshold: DefaultHighConflictThreshold,
		ParallelThreshold:     DefaultParallelThreshold,
		Workers:               DefaultWorkers,
	}
}

// Fuse combines two belief masses under the service rule, switching to the
// sharded combiner for large cross products and logging the advisory when
// the step conflict reaches the threshold.
func (s *FusionService) Fuse(ctx context.Context, m1, m2 *domain.BeliefMass) (*domain.FusionResult, error) {
	var res *domain.FusionResult
	var err error
	if m1.FocalCount()*m2.FocalCount() >= s.ParallelThreshold {
		res, err = domain.FuseParallel(ctx, m1, m2, s.Rule, s.Workers)
	} else {
		res, err = domain.Fuse(m1, m2, s.Rule)
	}
	if err != nil {
		return nil, err
	}
	if res.Conflict >= s.HighConflictThreshold {
		s.logger.Warn("high conflict between sources",
			zap.Float64("conflict", res.Conflict),
			zap.String("rule", string(s.Rule)))
	}
	return res, nil
}

// FusionStep records the conflict observed when one piece of evidence was
// folded into the running combination.
type FusionStep struct {
	EvidenceID   uuid.UUID `json:"evidence_id"`
	Source       string    `json:"source"`
	Conflict     float64   `json:"conflict"`
	HighConflict bool      `json:"high_conflict"`
}

// FusionOutcome is the result of folding an ordered evidence sequence.
type FusionOutcome struct {
	Final *domain.BeliefMass `json:"-"`
	Rule  domain.FusionRule  `json:"rule"`
	Steps []FusionStep       `json:"steps"`
}

// FuseEvidence left-folds the evidence in input order. Input order is
// observable: only Dempster is associative, so under Yager or Average a
// different ordering can change the outcome.
//
// A total-conflict failure on the Dempster path is returned as is; choosing
// a fallback rule is the caller's policy, not the fold's.
func (s *FusionService) FuseEvidence(ctx context.Context, evidence []domain.Evidence) (*FusionOutcome, error) {
	if len(evidence) == 0 {
		return nil, domain.ErrNoSources
	}

	masses := make([]*domain.BeliefMass, len(evidence))
	for i, ev := range evidence {
		m := ev.Mass
		if s.DiscountByCredibility {
			var err error
			m, err = m.Discount(ev.Credibility.DiscountFactor())
			if err != nil {
				return nil, fmt.Errorf("discount evidence from %s: %w", ev.Source, err)
			}
		}
		masses[i] = m
	}

	outcome := &FusionOutcome{Final: masses[0], Rule: s.Rule}
	for i, m := range masses[1:] {
		ev := evidence[i+1]
		res, err := s.Fuse(ctx, outcome.Final, m)
		if err != nil {
			return nil, fmt.Errorf("fuse evidence from %s: %w", ev.Source, err)
		}
		outcome.Final = res.Mass
		outcome.Steps = append(outcome.Steps, FusionStep{
			EvidenceID:   ev.ID,
			Source:       ev.Source,
			Conflict:     res.Conflict,
			HighConflict: res.Conflict >= s.HighConflictThreshold,
		})
		s.logger.Debug("fused evidence",
			zap.String("source", ev.Source),
			zap.String("evidence_id", ev.ID.String()),
			zap.Float64("conflict", res.Conflict),
			zap.Int("focal_sets", outcome.Final.FocalCount()))
	}
	return outcome, nil
}
