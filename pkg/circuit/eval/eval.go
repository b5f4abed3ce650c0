// Package eval provides the sampling harness that compares arrangement
// algorithms statistically.
//
// # Protocol
//
// For each seed 0..Trials-1 the harness generates identity-keyed
// connectivity, asks the arranger under test for an arrangement, maps the
// connectivity to positions, and counts crossings. The resulting
// [Distribution] holds one crossing count per seed and is the basis for
// comparing heuristics against each other and against the unordered baseline.
//
// Trials are fully independent - every derived value comes from the trial's
// own seed - so they may run in parallel. [Options.Workers] controls the
// fan-out; any worker count produces the identical distribution.
//
// # Usage
//
//	opts := eval.Options{
//	    LayerSizes: []int{5, 5, 5},
//	    GapCounts:  []int{10, 10},
//	    Trials:     1000,
//	}
//	result, err := eval.Evaluate(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Distribution.Mean())
//
// [Sample] is the single-seed diagnostic mode: it reports the baseline
// crossing count (positions equal identities) next to the post-arrangement
// count, making the effect of an arranger directly observable.
package eval

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/crossbench/pkg/circuit"
	"github.com/matzehuels/crossbench/pkg/circuit/arrange"
	"github.com/matzehuels/crossbench/pkg/errors"
)

// DefaultTrials is the trial count used when Options.Trials is zero.
const DefaultTrials = 1000

// Options configures an evaluation run.
type Options struct {
	// LayerSizes is the gate count per layer, fixed for the whole run.
	LayerSizes []int

	// GapCounts is the number of connections per adjacent-layer gap;
	// must hold len(LayerSizes)-1 entries.
	GapCounts []int

	// Trials is the number of seeds to sample (seeds 0..Trials-1).
	// Defaults to DefaultTrials.
	Trials int

	// Workers is the number of goroutines sampling trials. Defaults to 1,
	// the sequential reference; higher values change only wall-clock time,
	// never the distribution.
	Workers int

	// Arranger is the algorithm under test. Defaults to arrange.Identity.
	Arranger arrange.Arranger

	// Logger receives debug output. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the configuration and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := circuit.ValidateConfig(o.LayerSizes, o.GapCounts); err != nil {
		return err
	}
	if o.Trials < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"trials must be non-negative, got %d", o.Trials)
	}
	if o.Trials == 0 {
		o.Trials = DefaultTrials
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Arranger == nil {
		o.Arranger = arrange.Identity{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Distribution is an ordered sequence of crossing counts, one per seed.
type Distribution []int

// Min returns the smallest crossing count, or 0 for an empty distribution.
func (d Distribution) Min() int {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest crossing count, or 0 for an empty distribution.
func (d Distribution) Max() int {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum returns the total of all crossing counts.
func (d Distribution) Sum() int {
	s := 0
	for _, v := range d {
		s += v
	}
	return s
}

// Mean returns the average crossing count, or 0 for an empty distribution.
func (d Distribution) Mean() float64 {
	if len(d) == 0 {
		return 0
	}
	return float64(d.Sum()) / float64(len(d))
}

// Result holds the outputs of one evaluation run.
type Result struct {
	// RunID uniquely identifies this run in logs and downstream tooling.
	RunID string

	// Distribution holds one crossing count per seed, indexed by seed.
	Distribution Distribution

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Evaluate samples Trials independent circuits and returns the crossing-count
// distribution for the arranger under test. Entry i of the distribution is
// the crossing count for seed i regardless of worker count or completion
// order. The first trial error aborts the run; no partial distribution is
// returned. Context cancellation stops the run early with ctx.Err().
func Evaluate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	opts.Logger.Debug("starting evaluation",
		"run", runID, "layers", opts.LayerSizes, "gaps", opts.GapCounts,
		"trials", opts.Trials, "workers", opts.Workers)

	dist := make(Distribution, opts.Trials)
	seeds := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ws := circuit.NewCrossingWorkspace()
			for seed := range seeds {
				count, err := trial(&opts, uint64(seed), ws)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = errors.Wrap(errors.GetCode(err), err, "trial %d", seed)
					}
					mu.Unlock()
					continue
				}
				dist[seed] = count
			}
		}()
	}

feed:
	for seed := 0; seed < opts.Trials; seed++ {
		select {
		case <-ctx.Done():
			break feed
		case seeds <- seed:
		}
	}
	close(seeds)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	elapsed := time.Since(start)
	opts.Logger.Debug("evaluation complete", "run", runID, "elapsed", elapsed)

	return &Result{
		RunID:        runID,
		Distribution: dist,
		Elapsed:      elapsed,
	}, nil
}

// trial runs one generate → arrange → map → count cycle for a single seed.
func trial(opts *Options, seed uint64, ws *circuit.CrossingWorkspace) (int, error) {
	cons, err := circuit.Generate(opts.LayerSizes, opts.GapCounts, seed)
	if err != nil {
		return 0, err
	}
	arr := opts.Arranger.Arrange(opts.LayerSizes, cons)
	pos, err := circuit.MapToPositions(cons, arr)
	if err != nil {
		return 0, err
	}
	return ws.Count(pos), nil
}

// SampleResult reports one seed's circuit in both representations, with the
// baseline crossing count (positions equal identities) next to the
// post-arrangement count.
type SampleResult struct {
	Seed              uint64
	IdentityConns     circuit.ConnectionSet
	PositionConns     circuit.ConnectionSet
	Arrangement       circuit.Arrangement
	BaselineCrossings int
	ArrangedCrossings int
}

// Sample is the single-seed diagnostic mode: it generates connectivity for
// one seed, applies the arranger, and returns both connection sets and both
// crossing counts so the effect of an arrangement algorithm is directly
// observable. A nil arranger means the identity baseline.
func Sample(layerSizes, gapCounts []int, seed uint64, a arrange.Arranger) (*SampleResult, error) {
	if a == nil {
		a = arrange.Identity{}
	}

	cons, err := circuit.Generate(layerSizes, gapCounts, seed)
	if err != nil {
		return nil, err
	}
	arr := a.Arrange(layerSizes, cons)
	pos, err := circuit.MapToPositions(cons, arr)
	if err != nil {
		return nil, err
	}

	return &SampleResult{
		Seed:              seed,
		IdentityConns:     cons,
		PositionConns:     pos,
		Arrangement:       arr,
		BaselineCrossings: circuit.CountCrossings(cons),
		ArrangedCrossings: circuit.CountCrossings(pos),
	}, nil
}
