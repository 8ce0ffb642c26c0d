package service

import (
	"github.com/Harshitk-cp/veritas/internal/domain"
	"go.uber.org/zap"
)

// DefaultPublishThreshold is the belief level a proposition must reach
// before it is considered established.
const DefaultPublishThreshold = 0.85

// Decision is the outcome of assessing fused evidence against a threshold.
type Decision string

const (
	DecisionPublish Decision = "publish"
	DecisionHold    Decision = "hold"
)

// Assessment summarizes how well fused evidence supports a proposition.
type Assessment struct {
	Proposition  domain.FocalSet `json:"-"`
	Belief       float64         `json:"belief"`
	Plausibility float64         `json:"plausibility"`
	Threshold    float64         `json:"threshold"`
	Decision     Decision        `json:"decision"`
}

// AssessmentService turns a fused belief mass into a publish/hold verdict
// for a proposition.
type AssessmentService struct {
	logger *zap.Logger

	PublishThreshold float64
}

func NewAssessmentService(logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		logger:           logger,
		PublishThreshold: DefaultPublishThreshold,
	}
}

// Assess computes the uncertainty interval for the proposition and decides
// against the publish threshold. The decision uses belief, the lower bound:
// plausibility alone can be high purely from ignorance.
func (s *AssessmentService) Assess(m *domain.BeliefMass, proposition domain.FocalSet) *Assessment {
	bel, pl := m.UncertaintyInterval(proposition)

	decision := DecisionHold
	if bel >= s.PublishThreshold {
		decision = DecisionPublish
	}

	s.logger.Debug("assessed proposition",
		zap.String("proposition", proposition.String()),
		zap.Float64("belief", bel),
		zap.Float64("plausibility", pl),
		zap.String("decision", string(decision)))

	return &Assessment{
		Proposition:  proposition,
		Belief:       bel,
		Plausibility: pl,
		Threshold:    s.PublishThreshold,
		Decision:     decision,
	}
}
