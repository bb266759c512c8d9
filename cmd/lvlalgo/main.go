// Command lvlalgo is a small front end for the lvlalgo packages: sequence
// comparison, sorting, binary search and number theory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand.
type app struct {
	// Global flags
	verbose       bool
	configPath    string
	unit          string
	normalization string

	cfg    Config
	logger *zap.Logger
}

func main() {
	a := &app{}
	if err := a.execute(a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs root and flushes the logger whether or not the command failed.
func (a *app) execute(root *cobra.Command) error {
	defer a.sync()

	return root.Execute()
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// rootCmd builds the command tree.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvlalgo",
		Short: "Classic algorithms: LCS, longest common substring, sorts, search, gcd",
		Long: `lvlalgo runs the algorithms of the lvlalgo library from the command line.

Strings are compared by character (code point by default, or grapheme
cluster with --unit graphemes), never by byte.

Integer arguments may be negative. Put "--" before the first one when it
starts with a minus sign, e.g. "lvlalgo sort -- -5 3 2".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.unit, "unit", "", "text unit: runes or graphemes (overrides config)")
	pf.StringVar(&a.normalization, "normalization", "", "unicode normalization: none, nfc, nfd, nfkc, nfkd (overrides config)")

	root.AddCommand(
		a.lcsCmd(),
		a.substringCmd(),
		a.sortCmd(),
		a.searchCmd(),
		a.gcdCmd(),
		a.factorsCmd(),
		a.demoCmd(),
	)

	return root
}

// setup initializes the logger and merges config file and flags.
func (a *app) setup(cmd *cobra.Command) error {
	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("unit") {
		cfg.Text.Unit = a.unit
	}
	if cmd.Flags().Changed("normalization") {
		cfg.Text.Normalization = a.normalization
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", a.configPath),
		zap.String("unit", cfg.Text.Unit),
		zap.String("normalization", cfg.Text.Normalization),
		zap.String("algorithm", cfg.Sort.Algorithm),
	)

	return nil
}
