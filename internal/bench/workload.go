package bench

import (
	"iter"
	"slices"

	intersperse "github.com/achille-roussel/intersperse-go"
)

// Mode is the way a workload drains the adapter.
type Mode string

const (
	// Next pulls values one at a time.
	Next Mode = "next"
	// Fold reduces all the values in a single call.
	Fold Mode = "fold"
	// Seq ranges over the push-based adapter.
	Seq Mode = "seq"
)

type option struct {
	value int
	ok    bool
}

func (o option) or(v int) int {
	if o.ok {
		return o.value
	}
	return v
}

// plan describes how to build and drain one workload. Every workload sums
// the values of the sequence, counting 1 for each separator.
type plan[V any, S intersperse.Separator[V]] struct {
	iterator func() *intersperse.Iterator[V, S]
	seq      func() iter.Seq[V]
	add      func(int, V) int
}

func (p plan[V, S]) run(mode Mode) int {
	sum := 0
	switch mode {
	case Next:
		it := p.iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			sum = p.add(sum, v)
		}
	case Fold:
		sum = intersperse.Fold(p.iterator(), sum, p.add)
	case Seq:
		for v := range p.seq() {
			sum = p.add(sum, v)
		}
	default:
		panic("unknown mode: " + string(mode))
	}
	return sum
}

func addInt(sum, v int) int { return sum + v }

func addOption(sum int, v option) int {
	if v.ok {
		return sum + v.value
	}
	return sum + 1
}

func addUnwrap(sum int, v option) int { return sum + v.or(1) }

// workloads returns the workloads run over a sequence of n integers, indexed
// by name.
func workloads(n int) map[string]func(Mode) int {
	numbers := make([]int, n)
	options := make([]option, n)
	for i := range n {
		numbers[i] = i
		options[i] = option{value: i, ok: true}
	}

	one := func() int { return 1 }
	none := func() option { return option{} }

	fixed := func(add func(int, option) int) func(Mode) int {
		return plan[option, intersperse.Value[option]]{
			iterator: func() *intersperse.Iterator[option, intersperse.Value[option]] {
				return intersperse.New(intersperse.Slice(options), option{})
			},
			seq: func() iter.Seq[option] {
				return intersperse.Seq(slices.Values(options), option{})
			},
			add: add,
		}.run
	}

	computed := func(add func(int, option) int) func(Mode) int {
		return plan[option, intersperse.Func[option]]{
			iterator: func() *intersperse.Iterator[option, intersperse.Func[option]] {
				return intersperse.NewFunc(intersperse.Slice(options), none)
			},
			seq: func() iter.Seq[option] {
				return intersperse.SeqFunc(slices.Values(options), none)
			},
			add: add,
		}.run
	}

	return map[string]func(Mode) int{
		"iter": plan[int, intersperse.Value[int]]{
			iterator: func() *intersperse.Iterator[int, intersperse.Value[int]] {
				return intersperse.New(intersperse.Slice(numbers), 1)
			},
			seq: func() iter.Seq[int] {
				return intersperse.Seq(slices.Values(numbers), 1)
			},
			add: addInt,
		}.run,

		"opt":        fixed(addOption),
		"opt-unwrap": fixed(addUnwrap),

		"with": plan[int, intersperse.Func[int]]{
			iterator: func() *intersperse.Iterator[int, intersperse.Func[int]] {
				return intersperse.NewFunc(intersperse.Slice(numbers), one)
			},
			seq: func() iter.Seq[int] {
				return intersperse.SeqFunc(slices.Values(numbers), one)
			},
			add: addInt,
		}.run,

		"with-opt":        computed(addOption),
		"with-opt-unwrap": computed(addUnwrap),
	}
}

// Checksum is the sum every workload computes over n elements: the sum of
// 0..n-1 plus one for each of the n-1 separators.
func Checksum(n int) int {
	if n == 0 {
		return 0
	}
	return n*(n-1)/2 + n - 1
}
