package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/expatfin/rentenscore/internal/calculation"
	"github.com/expatfin/rentenscore/internal/config"
	"github.com/expatfin/rentenscore/internal/logging"
	"github.com/expatfin/rentenscore/internal/output"
	"github.com/expatfin/rentenscore/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rentenscore",
	Short: "Retirement readiness calculator for expats in Germany",
	Long:  "Scores a financial profile for retirement readiness: savings projection, German tax and contribution estimates, and rule-based recommendations.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate a retirement readiness score from a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := config.LoadProfileFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		result := engine.Calculate(profile)

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (supported: %v)", format, output.FormatterNames())
		}
		data, err := f.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadService()
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		development, _ := cmd.Flags().GetBool("dev")
		if err := logging.Init(cfg.LogLevel, development); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logging.Sync()
		log := logging.L()

		engine, err := buildEngineFromPath(cfg.AssumptionsFile)
		if err != nil {
			return err
		}
		if cfg.AssumptionsFile != "" {
			log.Info("loaded assumptions override", zap.String("file", cfg.AssumptionsFile))
		}

		server.Version = version
		return server.New(engine, log, cfg).ListenAndServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "rentenscore %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

// buildEngine constructs the engine, honoring an --assumptions override.
func buildEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	path, _ := cmd.Flags().GetString("assumptions")
	return buildEngineFromPath(path)
}

func buildEngineFromPath(path string) (*calculation.Engine, error) {
	if path == "" {
		return calculation.NewEngine(), nil
	}
	assumptions, err := config.LoadAssumptionsFromFile(path)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngineWithAssumptions(assumptions), nil
}

func init() {
	calculateCmd.Flags().String("format", "console", "output format (console, json)")
	calculateCmd.Flags().String("assumptions", "", "path to an assumptions override file")
	serveCmd.Flags().Int("port", 0, "listen port (overrides PORT)")
	serveCmd.Flags().Bool("dev", false, "use development logging")

	rootCmd.AddCommand(calculateCmd, serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
