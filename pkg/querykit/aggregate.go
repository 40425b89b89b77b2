package querykit

import (
	"cmp"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/querykit/internal/constraints"
)

// ErrEmptySequence is the panic value of operations
// that are undefined on a query without elements.
const ErrEmptySequence errorkit.Error = "querykit: empty sequence"

// Sum adds every element to the initial value, in traversal order,
// using the numeric type of the initial value.
func Sum[R, T constraints.Number](q Query[T], initial R) R {
	return iterkit.Reduce1(q.each(), initial, func(total R, p *T) R {
		return total + R(*p)
	})
}

// Average returns Sum(q, initial) divided by the number of elements.
//
// The query must not be empty.
// Average on an empty query panics with ErrEmptySequence.
func Average[R, T constraints.Number](q Query[T], initial R) R {
	var (
		total = initial
		count int
	)
	for p := range q.each() {
		total += R(*p)
		count++
	}
	if count == 0 {
		panic(ErrEmptySequence.F("average of zero elements"))
	}
	return total / R(count)
}

// Min returns the smallest element.
// On equal elements the first one wins.
func Min[T cmp.Ordered](q Query[T]) (T, bool) {
	return pick(q, func(v, current T) bool { return cmp.Less(v, current) })
}

// Max returns the greatest element.
// On equal elements the first one wins.
func Max[T cmp.Ordered](q Query[T]) (T, bool) {
	return pick(q, func(v, current T) bool { return cmp.Less(current, v) })
}

func pick[T any](q Query[T], better func(v, current T) bool) (T, bool) {
	var (
		current T
		ok      bool
	)
	for p := range q.each() {
		if !ok || better(*p, current) {
			current = *p
			ok = true
		}
	}
	return current, ok
}
