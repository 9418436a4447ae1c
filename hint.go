package intersperse

import "math"

// SizeHint returns bounds on the number of values the iterator has left to
// produce, derived from the size hint of its source.
func (it *Iterator[V, S]) SizeHint() Hint {
	return intersperseHint(it.src.SizeHint(), it.started, it.hasPending)
}

// intersperseHint maps the hint of the source to the hint of the adapter.
// Every remaining source value yields a separator and itself, the pending
// value is one more, and before the first pull the first value comes without
// a separator.
func intersperseHint(h Hint, started, pending bool) Hint {
	n := 0
	if pending {
		n = 1
	}
	bound := func(size int) int {
		size = max(size, 0)
		if !started {
			return addSat(subSat(size, 1), size)
		}
		return addSat(addSat(size, n), size)
	}
	h.Lower = bound(h.Lower)
	if h.Bounded {
		h.Upper = bound(h.Upper)
	} else {
		h.Upper = 0
	}
	return h
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func subSat(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
