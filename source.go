package intersperse

// Source is a forward-only, single-pass producer of values. Next returns the
// next value and true, or the zero value and false once the source is
// exhausted.
type Source[V any] interface {
	Next() (V, bool)
}

// Sizer is implemented by sources which can cheaply estimate how many values
// they have left to produce.
type Sizer interface {
	SizeHint() Hint
}

// Hint is a lower and upper bound on the number of remaining values. When
// Bounded is false there is no known upper bound and Upper is meaningless.
type Hint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exact returns a hint for exactly n remaining values.
func Exact(n int) Hint {
	return Hint{Lower: n, Upper: n, Bounded: true}
}

func sizeHint[V any](src Source[V]) Hint {
	if s, ok := src.(Sizer); ok {
		return s.SizeHint()
	}
	return Hint{}
}

type sliceSource[V any] struct {
	values []V
}

func (s *sliceSource[V]) Next() (value V, ok bool) {
	if len(s.values) == 0 {
		return value, false
	}
	value, s.values = s.values[0], s.values[1:]
	return value, true
}

func (s *sliceSource[V]) SizeHint() Hint {
	return Exact(len(s.values))
}

// Slice returns a source producing the values of the slice in order. The
// source reports an exact size hint.
func Slice[V any](values []V) Source[V] {
	return &sliceSource[V]{values: values}
}

type hintedSource[V any] struct {
	src  Source[V]
	hint Hint
}

func (s *hintedSource[V]) Next() (V, bool) {
	v, ok := s.src.Next()
	if ok {
		s.hint.Lower = subSat(s.hint.Lower, 1)
		if s.hint.Bounded {
			s.hint.Upper = subSat(s.hint.Upper, 1)
		}
	} else {
		s.hint = Exact(0)
	}
	return v, ok
}

func (s *hintedSource[V]) SizeHint() Hint {
	return s.hint
}

// WithHint attaches a size estimate to a source, for callers which know how
// many values the source is going to produce. The hint is decremented as
// values are consumed.
func WithHint[V any](src Source[V], hint Hint) Source[V] {
	return &hintedSource[V]{src: src, hint: hint}
}
