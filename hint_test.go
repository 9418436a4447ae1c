package intersperse

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeHint(t *testing.T) {
	it := New(Slice([]string{"a", "", "b", "c"}), ", ")
	assert.Equal(t, Exact(7), it.SizeHint())

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, Exact(6), it.SizeHint())

	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, ", ", v)
	assert.Equal(t, Exact(5), it.SizeHint())
}

func TestSizeHintEmpty(t *testing.T) {
	it := New(Slice([]int{}), 0)
	assert.Equal(t, Exact(0), it.SizeHint())

	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, Exact(0), it.SizeHint())

	empty := NewFunc(Slice([]struct{}{}), func() struct{} { return struct{}{} })
	assert.Equal(t, Exact(0), empty.SizeHint())
}

func TestSizeHintRemaining(t *testing.T) {
	for n := range 10 {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			it := New(Slice(values(count(n))), 0)

			remaining := 0
			if n > 0 {
				remaining = 2*n - 1
			}

			for {
				assert.Equal(t, Exact(remaining), it.SizeHint())
				if _, ok := it.Next(); !ok {
					break
				}
				remaining--
			}
			assert.Equal(t, 0, remaining)
		})
	}
}

func TestSizeHintUnbounded(t *testing.T) {
	it, stop := NewSeq(count(3), 0)
	defer stop()
	assert.Equal(t, Hint{}, it.SizeHint())

	src := WithHint(Slice([]int{1, 2, 3}), Hint{Lower: 2})
	assert.Equal(t, Hint{Lower: 3}, New(src, 0).SizeHint())
}

func TestIntersperseHint(t *testing.T) {
	tests := []struct {
		scenario string
		hint     Hint
		started  bool
		pending  bool
		want     Hint
	}{
		{
			scenario: "not started",
			hint:     Hint{Lower: 2, Upper: 5, Bounded: true},
			want:     Hint{Lower: 3, Upper: 9, Bounded: true},
		},

		{
			scenario: "started without a pending value",
			hint:     Hint{Lower: 2, Upper: 5, Bounded: true},
			started:  true,
			want:     Hint{Lower: 4, Upper: 10, Bounded: true},
		},

		{
			scenario: "started with a pending value",
			hint:     Hint{Lower: 2, Upper: 5, Bounded: true},
			started:  true,
			pending:  true,
			want:     Hint{Lower: 5, Upper: 11, Bounded: true},
		},

		{
			scenario: "pending value and an exhausted source",
			hint:     Exact(0),
			started:  true,
			pending:  true,
			want:     Exact(1),
		},

		{
			scenario: "unbounded source",
			hint:     Hint{Lower: 1},
			started:  true,
			pending:  true,
			want:     Hint{Lower: 3},
		},

		{
			scenario: "saturated bounds",
			hint:     Hint{Lower: math.MaxInt / 2, Upper: math.MaxInt, Bounded: true},
			started:  true,
			pending:  true,
			want:     Hint{Lower: math.MaxInt, Upper: math.MaxInt, Bounded: true},
		},

		{
			scenario: "saturated bounds before the first pull",
			hint:     Hint{Lower: math.MaxInt, Upper: math.MaxInt, Bounded: true},
			want:     Hint{Lower: math.MaxInt, Upper: math.MaxInt, Bounded: true},
		},

		{
			scenario: "negative bounds",
			hint:     Hint{Lower: -4, Upper: -1, Bounded: true},
			started:  true,
			want:     Exact(0),
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			assert.Equal(t, test.want, intersperseHint(test.hint, test.started, test.pending))
		})
	}
}
