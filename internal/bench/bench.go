// Package bench measures the throughput of the intersperse adapters.
//
// Each trial builds a fresh adapter over a sequence of integers, drains it
// completely, and records the elapsed wall time. The adapters are treated as
// black boxes: a trial only checks the sum of the values it received.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/achille-roussel/intersperse-go/internal/console"
)

var (
	// ErrChecksum is returned when a workload produces an unexpected sum,
	// meaning the adapter emitted the wrong values.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrUnknown is returned for workload names or modes the runner does not
	// know about.
	ErrUnknown = errors.New("unknown benchmark")
)

// Result holds the timings of all the trials of one workload in one mode.
type Result struct {
	Workload string          `json:"workload"`
	Mode     Mode            `json:"mode"`
	Elements int             `json:"elements"`
	Trials   []time.Duration `json:"trials"`
}

func (r Result) Min() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	return slices.Min(r.Trials)
}

func (r Result) Max() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	return slices.Max(r.Trials)
}

func (r Result) Mean() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Trials {
		total += d
	}
	return total / time.Duration(len(r.Trials))
}

func (r Result) Median() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	sorted := slices.Clone(r.Trials)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Throughput returns the number of output values produced per second, based
// on the median trial.
func (r Result) Throughput() float64 {
	median := r.Median()
	if median <= 0 || r.Elements == 0 {
		return 0
	}
	return float64(2*r.Elements-1) * float64(time.Second) / float64(median)
}

// Runner runs workloads over sequences of a fixed size.
type Runner struct {
	elements  int
	trials    int
	logger    *console.Logger
	workloads map[string]func(Mode) int
}

// NewRunner creates a runner for sequences of the given number of elements,
// running each benchmark the given number of times.
func NewRunner(elements, trials int, logger *console.Logger) *Runner {
	if elements < 1 {
		panic("elements can't be < 1")
	}
	if trials < 1 {
		panic("trials can't be < 1")
	}
	return &Runner{
		elements:  elements,
		trials:    trials,
		logger:    logger,
		workloads: workloads(elements),
	}
}

// Run runs every workload in every mode, in order. It stops early when the
// context is canceled, returning the results gathered so far.
func (r *Runner) Run(ctx context.Context, workloads []string, modes []Mode) ([]Result, error) {
	results := make([]Result, 0, len(workloads)*len(modes))

	for _, name := range workloads {
		for _, mode := range modes {
			res, err := r.run(ctx, name, mode)
			if err != nil {
				return results, fmt.Errorf("%s/%s: %w", name, mode, err)
			}
			results = append(results, res)
		}
	}

	return results, nil
}

func (r *Runner) run(ctx context.Context, name string, mode Mode) (Result, error) {
	res := Result{Workload: name, Mode: mode, Elements: r.elements}

	run, ok := r.workloads[name]
	if !ok {
		return res, fmt.Errorf("%w: workload %q", ErrUnknown, name)
	}
	switch mode {
	case Next, Fold, Seq:
	default:
		return res, fmt.Errorf("%w: mode %q", ErrUnknown, mode)
	}

	want := Checksum(r.elements)
	bar := r.logger.NewProgressBar(r.trials, fmt.Sprintf("%s/%s", name, mode))
	r.logger.Verbosef("running %s/%s: %d trials over %d elements", name, mode, r.trials, r.elements)

	res.Trials = make([]time.Duration, 0, r.trials)
	for range r.trials {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()
		sum := run(mode)
		elapsed := time.Since(start)

		if sum != want {
			return res, fmt.Errorf("%w: expected %d, got %d", ErrChecksum, want, sum)
		}

		res.Trials = append(res.Trials, elapsed)
		if err := bar.Add(1); err != nil {
			r.logger.Warnf("progress: %v", err)
		}
	}

	if err := bar.Finish(); err != nil {
		r.logger.Warnf("progress: %v", err)
	}
	r.logger.Verbosef("%s/%s: median %v", name, mode, res.Median())
	return res, nil
}
