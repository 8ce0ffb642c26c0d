package main

import (
	"fmt"

	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/service"
	"github.com/spf13/cobra"
)

var newsroomCmd = &cobra.Command{
	Use:   "newsroom",
	Short: "Multi-source fact-checking scenario",
	Long:  "Folds five sources of varying credibility over a binary claim and\nrenders a publish/hold verdict against the configured threshold.",
	RunE:  runNewsroom,
}

func runNewsroom(cmd *cobra.Command, args []string) error {
	theta := domain.NewFocalSet("true", "false")
	claimTrue := domain.NewFocalSet("true")
	claimFalse := domain.NewFocalSet("false")

	// Claim: global temperatures have risen 1.1°C since pre-industrial
	// times. Credibility grades follow the editorial source tiers.
	evidence := []domain.Evidence{
		domain.NewEvidence("ipcc-report", domain.CredibilityHigh, mustMass(theta,
			domain.Assignment{Set: claimTrue, Mass: 0.95},
			domain.Assignment{Set: theta, Mass: 0.05})),
		domain.NewEvidence("nasa-temperature-records", domain.CredibilityHigh, mustMass(theta,
			domain.Assignment{Set: claimTrue, Mass: 0.90},
			domain.Assignment{Set: theta, Mass: 0.10})),
		domain.NewEvidence("university-study", domain.CredibilityMedium, mustMass(theta,
			domain.Assignment{Set: claimTrue, Mass: 0.85},
			domain.Assignment{Set: theta, Mass: 0.15})),
		domain.NewEvidence("policy-think-tank", domain.CredibilityMedium, mustMass(theta,
			domain.Assignment{Set: claimTrue, Mass: 0.60},
			domain.Assignment{Set: claimFalse, Mass: 0.10},
			domain.Assignment{Set: theta, Mass: 0.30})),
		domain.NewEvidence("social-media-sentiment", domain.CredibilityLow, mustMass(theta,
			domain.Assignment{Set: claimTrue, Mass: 0.55},
			domain.Assignment{Set: claimFalse, Mass: 0.20},
			domain.Assignment{Set: theta, Mass: 0.25})),
	}

	fmt.Println("=== Fact-checking: climate claim ===")
	for _, ev := range evidence {
		fmt.Printf("%-26s credibility=%-6s %s\n", ev.Source, ev.Credibility, ev.Mass)
	}
	fmt.Println()

	fuser := service.NewFusionService(logger)
	fuser.Rule = domain.FusionRule(config.FusionRule())
	fuser.HighConflictThreshold = config.HighConflictThreshold()
	fuser.Workers = config.Workers()

	outcome, err := fuser.FuseEvidence(cmd.Context(), evidence)
	if err != nil {
		return err
	}

	fmt.Printf("Folding with %s:\n", outcome.Rule)
	fmt.Printf("  start: %s (%s)\n", evidence[0].Source, evidence[0].Mass)
	for _, step := range outcome.Steps {
		marker := ""
		if step.HighConflict {
			marker = "  [high conflict]"
		}
		fmt.Printf("  + %-26s conflict=%.4f%s\n", step.Source, step.Conflict, marker)
	}
	fmt.Printf("  final: %s\n\n", outcome.Final)

	assessor := service.NewAssessmentService(logger)
	assessor.PublishThreshold = config.PublishThreshold()
	verdict := assessor.Assess(outcome.Final, claimTrue)

	fmt.Println("=== Editorial decision ===")
	fmt.Printf("belief in claim: %.2f%%, plausibility: %.2f%%\n", verdict.Belief*100, verdict.Plausibility*100)
	switch verdict.Decision {
	case service.DecisionPublish:
		fmt.Printf("PUBLISH: belief %.1f%% exceeds threshold %.0f%%\n", verdict.Belief*100, verdict.Threshold*100)
	default:
		fmt.Printf("HOLD: belief %.1f%% below threshold %.0f%%; gather more high-credibility evidence\n",
			verdict.Belief*100, verdict.Threshold*100)
	}
	return nil
}
