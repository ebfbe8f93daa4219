package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vennsets/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dotenvPath string

	// Set up by the root command before any subcommand runs
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "venn [list1 [list2 [list3]]]",
	Short: "Compare up to three identifier lists and draw their Venn diagram",
	Long: `venn loads two or three lists of identifiers (gene names, accessions, ...)
from tab-separated files, writes their intersection and union as sorted
lists and renders an area-proportional Venn diagram.

Running venn without a subcommand is the same as "venn run".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.ArbitraryArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered venn.yaml)")
	rootCmd.PersistentFlags().StringVar(&dotenvPath, "env-file", ".env", "Dotenv file with VENN_* overrides")

	addRunFlags(rootCmd, &rootRunFlags)

	rootCmd.AddCommand(runCmd, watchCmd, historyCmd, reportCmd, configCmd)
}

// setup loads the config, applies environment overrides and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, _, err = config.LoadFromPath(configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return err
	}

	lookup, err := config.EnvLookup(dotenvPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", dotenvPath, err)
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}

	logger, err = newLogger(cfg.Log.Level, verbose)
	return err
}

func newLogger(level string, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
