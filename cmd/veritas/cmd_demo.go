package main

import (
	"fmt"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Two-source fusion walkthrough",
	Long:  "Fuses two agreeing sources of different strength and compares\nDempster and Yager combination.",
	RunE:  runDemo,
}

// mustMass builds a belief mass from literal assignments. Only for the
// static fixtures in this package.
func mustMass(frame domain.FocalSet, assignments ...domain.Assignment) *domain.BeliefMass {
	m, err := domain.NewBeliefMass(assignments, domain.WithFrame(frame))
	if err != nil {
		panic(err)
	}
	return m
}

func runDemo(cmd *cobra.Command, args []string) error {
	theta := domain.NewFocalSet("true", "false")
	claimTrue := domain.NewFocalSet("true")

	// Source A: wire service, high credibility.
	sourceA := mustMass(theta,
		domain.Assignment{Set: claimTrue, Mass: 0.85},
		domain.Assignment{Set: theta, Mass: 0.15},
	)
	// Source B: social media, lower credibility.
	sourceB := mustMass(theta,
		domain.Assignment{Set: claimTrue, Mass: 0.60},
		domain.Assignment{Set: theta, Mass: 0.40},
	)

	fmt.Println("Source A (wire service):")
	fmt.Printf("  belief in 'true': %.2f, uncertainty: %.2f\n\n", sourceA.Mass(claimTrue), sourceA.Mass(theta))
	fmt.Println("Source B (social media):")
	fmt.Printf("  belief in 'true': %.2f, uncertainty: %.2f\n\n", sourceB.Mass(claimTrue), sourceB.Mass(theta))

	conflict, err := domain.Conflict(sourceA, sourceB)
	if err != nil {
		return err
	}
	fmt.Printf("Conflict between sources: %.4f\n\n", conflict)

	dempster, err := domain.Fuse(sourceA, sourceB, domain.RuleDempster)
	if err != nil {
		return err
	}
	fmt.Println("Dempster's rule:")
	fmt.Printf("  combined belief in 'true': %.4f, uncertainty: %.4f\n\n",
		dempster.Mass.Mass(claimTrue), dempster.Mass.Mass(theta))

	yager, err := domain.Fuse(sourceA, sourceB, domain.RuleYager)
	if err != nil {
		return err
	}
	fmt.Println("Yager's rule (conservative):")
	fmt.Printf("  combined belief in 'true': %.4f, uncertainty: %.4f\n\n",
		yager.Mass.Mass(claimTrue), yager.Mass.Mass(theta))

	bel, pl := dempster.Mass.UncertaintyInterval(claimTrue)
	fmt.Printf("Uncertainty interval for 'true': [%.4f, %.4f] (width %.4f)\n", bel, pl, pl-bel)
	fmt.Println("\nBoth sources agree, so fused confidence exceeds either source alone.")
	return nil
}
