package querykit

import "go.llib.dev/querykit/internal/constraints"

// Range returns a generator query that yields start, start+1, …, end-1.
// When end is not greater than start, the query is empty.
//
// Range has no backing storage,
// mutations made through Apply only affect the generated temporaries.
func Range[T constraints.Integer](start, end T) Query[T] {
	return Query[T]{refs: func(yield func(*T) bool) {
		for n := start; n < end; n++ {
			v := n
			if !yield(&v) {
				return
			}
		}
	}}
}
