package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/crossbench/pkg/circuit/arrange"
	"github.com/matzehuels/crossbench/pkg/circuit/eval"
	"github.com/matzehuels/crossbench/pkg/errors"
)

// evalCommand creates the eval command for sampling crossing-count distributions.
func (c *CLI) evalCommand() *cobra.Command {
	var (
		layers      string
		connections string
		trials      int
		arranger    string
		workers     int
		configPath  string
		full        bool
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Sample a crossing-count distribution for an arrangement algorithm",
		Long: `Sample a crossing-count distribution for an arrangement algorithm.

For each seed 0..trials-1, eval generates random connectivity between the
configured layers, applies the selected arranger, and counts edge crossings.
The resulting distribution is summarized on stdout; pass --full to print
every per-seed count.

Configuration can come from flags or a TOML file (--config); flags set
explicitly override the file. Available arrangers: ` + strings.Join(arrange.Names(), ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.buildEvalOptions(cmd, layers, connections, trials, arranger, workers, configPath)
			if err != nil {
				return err
			}
			return c.runEval(cmd.Context(), opts, full)
		},
	}

	cmd.Flags().StringVar(&layers, "layers", "5,5,5", "gate count per layer (comma-separated)")
	cmd.Flags().StringVar(&connections, "connections", "10,10", "connection count per gap (comma-separated)")
	cmd.Flags().IntVar(&trials, "trials", eval.DefaultTrials, "number of seeds to sample")
	cmd.Flags().StringVar(&arranger, "arranger", "identity", "arrangement algorithm under test")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines sampling trials")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML bench configuration file")
	cmd.Flags().BoolVar(&full, "full", false, "print the full per-seed distribution")

	return cmd
}

// buildEvalOptions merges the config file (if any) with flags into harness
// options. Explicitly set flags win over config file values.
func (c *CLI) buildEvalOptions(cmd *cobra.Command, layers, connections string, trials int, arranger string, workers int, configPath string) (eval.Options, error) {
	if configPath != "" {
		cfg, err := loadBenchConfig(configPath)
		if err != nil {
			return eval.Options{}, err
		}
		if len(cfg.Layers) > 0 && !cmd.Flags().Changed("layers") {
			layers = joinIntList(cfg.Layers)
		}
		if len(cfg.Connections) > 0 && !cmd.Flags().Changed("connections") {
			connections = joinIntList(cfg.Connections)
		}
		if cfg.Trials > 0 && !cmd.Flags().Changed("trials") {
			trials = cfg.Trials
		}
		if cfg.Arranger != "" && !cmd.Flags().Changed("arranger") {
			arranger = cfg.Arranger
		}
		if cfg.Workers > 0 && !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}
	}

	layerSizes, err := parseIntList("layers", layers)
	if err != nil {
		return eval.Options{}, err
	}
	gapCounts, err := parseIntList("connections", connections)
	if err != nil {
		return eval.Options{}, err
	}
	a, ok := arrange.Lookup(arranger)
	if !ok {
		return eval.Options{}, errors.New(errors.ErrCodeInvalidInput,
			"unknown arranger %q (available: %s)", arranger, strings.Join(arrange.Names(), ", "))
	}

	return eval.Options{
		LayerSizes: layerSizes,
		GapCounts:  gapCounts,
		Trials:     trials,
		Workers:    workers,
		Arranger:   a,
		Logger:     c.Logger,
	}, nil
}

// runEval executes the harness and prints the distribution summary.
func (c *CLI) runEval(ctx context.Context, opts eval.Options, full bool) error {
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Sampling %d trials...", opts.Trials))
	spinner.Start()

	result, err := eval.Evaluate(ctx, opts)
	if err != nil {
		spinner.StopWithError("Evaluation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog.done(fmt.Sprintf("Sampled %d trials", len(result.Distribution)))

	printSuccess("Evaluation complete")
	printKeyValue("run", result.RunID)
	printKeyValue("trials", fmt.Sprintf("%d", len(result.Distribution)))
	printKeyValue("min", fmt.Sprintf("%d", result.Distribution.Min()))
	printKeyValue("mean", fmt.Sprintf("%.2f", result.Distribution.Mean()))
	printKeyValue("max", fmt.Sprintf("%d", result.Distribution.Max()))

	if full {
		printNewline()
		for seed, count := range result.Distribution {
			printDetail("seed %d: %d crossings", seed, count)
		}
	}
	return nil
}

// joinIntList formats an int slice as a comma-separated flag value.
func joinIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}
