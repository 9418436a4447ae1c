package intersperse

// fuse latches the exhaustion of a source: after the source first reports
// the end, the fuse never calls it again.
type fuse[V any] struct {
	src  Source[V]
	done bool
}

func (f *fuse[V]) Next() (value V, ok bool) {
	if f.done {
		return value, false
	}
	if value, ok = f.src.Next(); !ok {
		f.done = true
		f.src = nil
	}
	return value, ok
}

func (f *fuse[V]) SizeHint() Hint {
	if f.done {
		return Exact(0)
	}
	return sizeHint(f.src)
}
