package intersperse_test

import (
	"fmt"
	"iter"
	"strings"

	intersperse "github.com/achille-roussel/intersperse-go"
)

func ExampleSeq() {
	sequence := func(min, max, step int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := min; i < max; i += step {
				if !yield(i) {
					return
				}
			}
		}
	}

	for value := range intersperse.Seq(sequence(0, 5, 1), -1) {
		fmt.Printf("%v,", value)
	}

	// Output:
	// 0,-1,1,-1,2,-1,3,-1,4,
}

func ExampleNew() {
	it := intersperse.New(intersperse.Slice([]string{"a", "b", "c"}), ", ")

	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%q %v\n", s, it.SizeHint().Lower)
	}

	// Output:
	// "a" 4
	// ", " 3
	// "b" 2
	// ", " 1
	// "c" 0
}

func ExampleNewFunc() {
	n := 0
	it := intersperse.NewFunc(intersperse.Slice([]string{"x", "y", "z"}), func() string {
		n++
		return fmt.Sprintf("<%d>", n)
	})

	fmt.Println(intersperse.Fold(it, "", func(acc, s string) string {
		return acc + s
	}))

	// Output:
	// x<1>y<2>z
}

func ExampleFold() {
	it := intersperse.New(intersperse.Slice([]string{"Go", "is", "fun"}), " ")

	var b strings.Builder
	intersperse.Fold(it, &b, func(b *strings.Builder, s string) *strings.Builder {
		b.WriteString(s)
		return b
	})
	fmt.Println(b.String())

	// Output:
	// Go is fun
}
