package intersperse

import "iter"

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[V any] func() (V, bool)

func (f SourceFunc[V]) Next() (V, bool) { return f() }

// Pull converts a range function into a source. The returned stop function
// must be called once the source is no longer needed to release the
// resources held by iter.Pull.
func Pull[V any](seq iter.Seq[V]) (Source[V], func()) {
	next, stop := iter.Pull(seq)
	return SourceFunc[V](next), stop
}
