// SPDX-License-Identifier: MIT

// Command linstep solves small linear systems step by step.
//
//	linstep solve -f system.yaml -m gauss-jordan
//	linstep compare -f system.txt
//	linstep dominance -f system.yaml
//	linstep methods
//	linstep serve --addr :8080
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linstep/config"
	"github.com/katalvlaran/linstep/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	jsonOut bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "linstep",
	Short: "Step-by-step solver for small linear systems",
	Long: `linstep solves n×n systems A·x = b (2 ≤ n ≤ 6) with Gaussian elimination,
Gauss-Jordan, Cramer's rule or Jacobi iteration, and explains every step.

Input files are YAML/JSON documents ({method, a, b, ...}) or plain text with
one augmented row per line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		if logger, err = cfg.Log.Build(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("config", cfgFile),
			zap.String("default_method", cfg.Solver.DefaultMethod))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print machine-readable JSON instead of the styled report")

	rootCmd.AddCommand(solveCmd, compareCmd, dominanceCmd, methodsCmd, serveCmd)
}

// newRenderer styles output only when w is a terminal.
func newRenderer(w io.Writer, opts ...render.Option) *render.Renderer {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		opts = append(opts, render.WithPlain())
	}

	return render.New(w, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
