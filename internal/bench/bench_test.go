package bench

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achille-roussel/intersperse-go/internal/config"
	"github.com/achille-roussel/intersperse-go/internal/console"
)

func quiet() *console.Logger {
	return console.New(io.Discard, "", console.Quiet)
}

func TestWorkloads(t *testing.T) {
	for _, n := range []int{1, 2, 3, 100} {
		w := workloads(n)
		require.Len(t, w, len(config.Workloads))

		for _, name := range config.Workloads {
			run, ok := w[name]
			require.True(t, ok, "missing workload %q", name)

			for _, mode := range config.Modes {
				assert.Equal(t, Checksum(n), run(Mode(mode)), "%s/%s with %d elements", name, mode, n)
			}
		}
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, 0, Checksum(0))
	assert.Equal(t, 0, Checksum(1))
	assert.Equal(t, 2, Checksum(2))   // 0 + 1 + 1
	assert.Equal(t, 5, Checksum(3))   // 0 + 1 + 1 + 1 + 2
	assert.Equal(t, 9, Checksum(4))   // 6 + 3
	assert.Equal(t, 54, Checksum(10)) // 45 + 9
}

func TestRunner(t *testing.T) {
	r := NewRunner(50, 3, quiet())

	results, err := r.Run(context.Background(), []string{"iter", "with-opt"}, []Mode{Next, Fold, Seq})
	require.NoError(t, err)
	require.Len(t, results, 6)

	assert.Equal(t, "iter", results[0].Workload)
	assert.Equal(t, Next, results[0].Mode)
	assert.Equal(t, "with-opt", results[5].Workload)
	assert.Equal(t, Seq, results[5].Mode)

	for _, res := range results {
		assert.Len(t, res.Trials, 3)
		assert.Equal(t, 50, res.Elements)
	}
}

func TestRunnerUnknown(t *testing.T) {
	r := NewRunner(10, 1, quiet())

	_, err := r.Run(context.Background(), []string{"nope"}, []Mode{Next})
	assert.ErrorIs(t, err, ErrUnknown)

	_, err = r.Run(context.Background(), []string{"iter"}, []Mode{"peek"})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner(10, 1, quiet()).Run(ctx, []string{"iter"}, []Mode{Next})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunnerChecksum(t *testing.T) {
	r := NewRunner(10, 1, quiet())
	r.workloads["broken"] = func(Mode) int { return -1 }

	_, err := r.Run(context.Background(), []string{"broken"}, []Mode{Fold})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestResultStats(t *testing.T) {
	res := Result{
		Elements: 5,
		Trials:   []time.Duration{4 * time.Second, 1 * time.Second, 3 * time.Second, 2 * time.Second},
	}
	assert.Equal(t, 1*time.Second, res.Min())
	assert.Equal(t, 4*time.Second, res.Max())
	assert.Equal(t, 2500*time.Millisecond, res.Mean())
	assert.Equal(t, 2500*time.Millisecond, res.Median())
	assert.InDelta(t, 3.6, res.Throughput(), 1e-9)

	res.Trials = res.Trials[:3]
	assert.Equal(t, 3*time.Second, res.Median())

	var empty Result
	assert.Zero(t, empty.Min())
	assert.Zero(t, empty.Max())
	assert.Zero(t, empty.Mean())
	assert.Zero(t, empty.Median())
	assert.Zero(t, empty.Throughput())
}
