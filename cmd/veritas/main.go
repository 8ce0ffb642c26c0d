package main

import (
	"fmt"
	"os"

	"github.com/Harshitk-cp/veritas/internal/buildconfig"
	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "veritas",
	Short:   "Dempster-Shafer evidence fusion",
	Long:    "Veritas fuses uncertain evidence from multiple sources using\nDempster-Shafer belief functions.",
	Version: buildconfig.Short(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		var err error
		logger, err = newLogger(config.LogLevel())
		return err
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veritas %s\ncommit: %s\n", buildconfig.Version(), buildconfig.Commit())
	},
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	rootCmd.AddCommand(versionCmd, demoCmd, compareCmd, newsroomCmd, fuseCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
