package main

import (
	"fmt"

	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/parser"
	"github.com/Harshitk-cp/veritas/internal/service"
	"github.com/spf13/cobra"
)

var (
	fuseRule        string
	fuseProposition []string
	fuseDiscount    bool
	fuseThreshold   float64
)

var fuseCmd = &cobra.Command{
	Use:   "fuse <evidence.yaml>",
	Short: "Fuse evidence from a YAML file",
	Long:  "Loads an evidence file (frame, sources, mass assignments), folds the\nsources in file order and prints the combined distribution.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFuse,
}

func init() {
	fuseCmd.Flags().StringVar(&fuseRule, "rule", "", "fusion rule: dempster, yager, dubois_prade, average")
	fuseCmd.Flags().StringSliceVar(&fuseProposition, "proposition", nil, "hypotheses to assess, e.g. --proposition true")
	fuseCmd.Flags().BoolVar(&fuseDiscount, "discount", false, "discount sources by credibility before fusing")
	fuseCmd.Flags().Float64Var(&fuseThreshold, "threshold", 0, "publish threshold for the assessment (default from config)")
}

func runFuse(cmd *cobra.Command, args []string) error {
	set, err := parser.LoadEvidenceFile(args[0])
	if err != nil {
		return err
	}

	rule := fuseRule
	if rule == "" {
		rule = config.FusionRule()
	}
	if !domain.ValidFusionRule(rule) {
		return fmt.Errorf("unknown fusion rule %q", rule)
	}

	fuser := service.NewFusionService(logger)
	fuser.Rule = domain.FusionRule(rule)
	fuser.HighConflictThreshold = config.HighConflictThreshold()
	fuser.Workers = config.Workers()
	fuser.DiscountByCredibility = fuseDiscount

	outcome, err := fuser.FuseEvidence(cmd.Context(), set.Evidence)
	if err != nil {
		return err
	}

	fmt.Printf("frame: %s\nrule: %s\n", set.Frame, outcome.Rule)
	for _, step := range outcome.Steps {
		marker := ""
		if step.HighConflict {
			marker = "  [high conflict]"
		}
		fmt.Printf("  + %-20s conflict=%.4f%s\n", step.Source, step.Conflict, marker)
	}
	fmt.Printf("combined: %s\n", outcome.Final)

	if len(fuseProposition) > 0 {
		proposition := domain.NewFocalSet(fuseProposition...)
		assessor := service.NewAssessmentService(logger)
		assessor.PublishThreshold = config.PublishThreshold()
		if fuseThreshold > 0 {
			assessor.PublishThreshold = fuseThreshold
		}
		verdict := assessor.Assess(outcome.Final, proposition)
		fmt.Printf("assessment of %s: belief=%.4f plausibility=%.4f decision=%s\n",
			proposition, verdict.Belief, verdict.Plausibility, verdict.Decision)
	}
	return nil
}
