package intersperse

// Separator produces the values placed between consecutive elements.
type Separator[V any] interface {
	Separator() V
}

// Value is a Separator returning a copy of the same value every time.
type Value[V any] struct {
	V V
}

func (s Value[V]) Separator() V { return s.V }

// Func is a Separator calling the function each time a separator is emitted.
type Func[V any] func() V

func (f Func[V]) Separator() V { return f() }
