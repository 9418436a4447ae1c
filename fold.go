package intersperse

// Fold reduces the remaining values of the iterator from left to right,
// producing the same result as calling f on every value returned by Next.
//
// Past the first value, the source values are reduced together with the
// separator preceding them, which avoids deciding on each step whether a
// separator or a value comes next. Fold leaves the iterator exhausted.
func Fold[V, A any, S Separator[V]](it *Iterator[V, S], init A, f func(A, V) A) A {
	acc := init

	if !it.started {
		it.started = true
		v, ok := it.src.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}

	if it.hasPending {
		var zero V
		v := it.pending
		it.pending, it.hasPending = zero, false
		acc = f(acc, v)
	}

	return foldPairs(&it.src, it.separator, acc, f)
}

//go:noinline
func foldPairs[V, A any, S Separator[V]](src *fuse[V], sep S, acc A, f func(A, V) A) A {
	for {
		v, ok := src.Next()
		if !ok {
			return acc
		}
		acc = f(acc, sep.Separator())
		acc = f(acc, v)
	}
}
