// Package intersperse implements lazy adapters placing a separator between
// the values of a sequence.
package intersperse

import "iter"

// Iterator places a separator between all the values produced by a source,
// without a leading or trailing separator.
//
// The iterator pulls at most one value ahead of its consumer: when the
// source produces a value after a previous one was emitted, the value is
// held back and a separator is returned in its place.
type Iterator[V any, S Separator[V]] struct {
	started    bool
	hasPending bool
	pending    V
	separator  S
	src        fuse[V]
}

// New returns an iterator placing sep between the values of src.
func New[V any](src Source[V], sep V) *Iterator[V, Value[V]] {
	return newIterator[V](src, Value[V]{V: sep})
}

// NewFunc returns an iterator placing the result of calling sep between the
// values of src. The function is called once for every separator emitted.
func NewFunc[V any](src Source[V], sep func() V) *Iterator[V, Func[V]] {
	return newIterator[V](src, Func[V](sep))
}

// NewSeq is like New but reads values from a range function. The returned
// function must be called to release the sequence.
func NewSeq[V any](seq iter.Seq[V], sep V) (*Iterator[V, Value[V]], func()) {
	src, stop := Pull(seq)
	return New(src, sep), stop
}

// NewSeqFunc is like NewFunc but reads values from a range function. The
// returned function must be called to release the sequence.
func NewSeqFunc[V any](seq iter.Seq[V], sep func() V) (*Iterator[V, Func[V]], func()) {
	src, stop := Pull(seq)
	return NewFunc(src, sep), stop
}

func newIterator[V any, S Separator[V]](src Source[V], sep S) *Iterator[V, S] {
	return &Iterator[V, S]{separator: sep, src: fuse[V]{src: src}}
}

// Next returns the next value of the iterator, which is either a value of the
// underlying source or a separator. The boolean is false once the iterator is
// exhausted, and remains false on every subsequent call.
func (it *Iterator[V, S]) Next() (value V, ok bool) {
	if !it.started {
		it.started = true
		return it.src.Next()
	}
	if it.hasPending {
		value, it.pending = it.pending, value
		it.hasPending = false
		return value, true
	}
	if it.pending, ok = it.src.Next(); !ok {
		return value, false
	}
	it.hasPending = true
	return it.separator.Separator(), true
}

// All returns a range function over the remaining values of the iterator.
// Breaking out of the loop leaves the iterator positioned after the last
// value seen by the loop body.
func (it *Iterator[V, S]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
