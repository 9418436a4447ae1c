package intersperse

import "iter"

// Seq returns a range function yielding the values of seq with sep placed
// between them.
func Seq[V any](seq iter.Seq[V], sep V) iter.Seq[V] {
	return intersperseSeq[V](seq, Value[V]{V: sep})
}

// SeqFunc returns a range function yielding the values of seq with the
// result of calling sep placed between them. The function is only called for
// separators which are yielded.
func SeqFunc[V any](seq iter.Seq[V], sep func() V) iter.Seq[V] {
	return intersperseSeq[V](seq, Func[V](sep))
}

//go:noinline
func intersperseSeq[V any, S Separator[V]](seq iter.Seq[V], sep S) iter.Seq[V] {
	return func(yield func(V) bool) {
		first := true
		for value := range seq {
			if first {
				first = false
			} else if !yield(sep.Separator()) {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}
