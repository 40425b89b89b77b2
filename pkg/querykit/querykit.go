// Package querykit provides lazy, composable queries over homogeneous collections.
//
// # Summary
//
// A Query wraps a source, which can be a slice, an iter.Seq or a generator like Range,
// and exposes a fluent chain of operators (Skip, Take, TakeWhile, Where, ...).
// Every operator returns a new Query that describes the transformation,
// but no element is touched until a terminal operation (ToSlice, Any, Sum, Average, Apply...)
// walks the chain.
//
// A Query is restartable.
// Calling a terminal operation twice walks the source twice,
// and as long as the source is unchanged, it produces the same output.
//
// # References
//
// Queries built with From reference the elements of the given slice.
// Apply, ApplyWithIndex and ApplyUnzip mutate those elements in place.
// Queries built with Of, FromSeq, Range, Select and the other projecting operators
// own their values, so a mutation through them only changes a temporary copy.
//
// A Query made with From must not outlive the slice it references,
// and the slice must not be mutated concurrently while a traversal is in progress.
// Queries are meant for single goroutine, synchronous use.
package querykit

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Query is a lazily evaluated view over a source of T values.
//
// The zero value is an empty Query.
type Query[T any] struct {
	refs iter.Seq[*T]
}

// From creates a Query that references the elements of the slice.
// Mutating operators like Apply write directly into the slice.
//
// The length of the slice is captured at the time of the call.
func From[T any](slice []T) Query[T] {
	return Query[T]{refs: func(yield func(*T) bool) {
		for i := range slice {
			if !yield(&slice[i]) {
				return
			}
		}
	}}
}

// Of creates a Query that owns a copy of the given values.
func Of[T any](vs ...T) Query[T] {
	return From(slices.Clone(vs))
}

// FromSeq wraps a standard iterator.
// The Query is only restartable if the iterator itself is restartable.
func FromSeq[T any](seq iter.Seq[T]) Query[T] {
	if seq == nil {
		return Empty[T]()
	}
	return Query[T]{refs: iterkit.Map(seq, func(v T) *T { return &v })}
}

// Empty returns a Query without elements.
// Every operator and terminal accepts it, so callers never need a nil check.
func Empty[T any]() Query[T] {
	return Query[T]{refs: iterkit.Empty[*T]()}
}

func (q Query[T]) each() iter.Seq[*T] {
	if q.refs == nil {
		return iterkit.Empty[*T]()
	}
	return q.refs
}

func deref[T any](p *T) T { return *p }

// Seq returns the values of the query as a standard iterator.
func (q Query[T]) Seq() iter.Seq[T] {
	return iterkit.Map(q.each(), deref[T])
}

// Indexed returns the values of the query paired with their zero based position.
func (q Query[T]) Indexed() iter.Seq2[int, T] {
	src := q.each()
	return func(yield func(int, T) bool) {
		var index int
		for p := range src {
			if !yield(index, *p) {
				return
			}
			index++
		}
	}
}

// Skip drops the first n elements.
// When the source has fewer elements than n, the result is empty.
func (q Query[T]) Skip(n int) Query[T] {
	return Query[T]{refs: iterkit.Offset(q.each(), n)}
}

// SkipWhile drops elements while the predicate holds,
// then yields everything that follows, including later matches.
func (q Query[T]) SkipWhile(pred func(T) bool) Query[T] {
	src := q.each()
	return Query[T]{refs: func(yield func(*T) bool) {
		var skipping = true
		for p := range src {
			if skipping && pred(*p) {
				continue
			}
			skipping = false
			if !yield(p) {
				return
			}
		}
	}}
}

// Take yields at most the first n elements.
// Once n elements are yielded, the upstream is not consumed any further.
func (q Query[T]) Take(n int) Query[T] {
	return Query[T]{refs: iterkit.Head(q.each(), n)}
}

// TakeWhile yields elements until the predicate first returns false.
// The first failure ends the query, later matching elements are not yielded.
func (q Query[T]) TakeWhile(pred func(T) bool) Query[T] {
	return q.TakeWhileWithIndex(func(v T, _ int) bool { return pred(v) })
}

// TakeWhileWithIndex behaves like TakeWhile,
// but the predicate also receives the position of the element.
// The index grows by one for every visited element, the failing one included.
func (q Query[T]) TakeWhileWithIndex(pred func(T, int) bool) Query[T] {
	src := q.each()
	return Query[T]{refs: func(yield func(*T) bool) {
		var index int
		for p := range src {
			if !pred(*p, index) {
				return
			}
			index++
			if !yield(p) {
				return
			}
		}
	}}
}

// Where keeps the elements that satisfy the predicate, in their original order.
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	return Query[T]{refs: iterkit.Filter[*T](q.each(), func(p *T) bool { return pred(*p) })}
}

// WhereWithIndex is Where with the position of the visited element.
// The index counts every element of the upstream, not only the kept ones.
func (q Query[T]) WhereWithIndex(pred func(T, int) bool) Query[T] {
	src := q.each()
	return Query[T]{refs: func(yield func(*T) bool) {
		var index int
		for p := range src {
			ok := pred(*p, index)
			index++
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}}
}

// Concat yields the elements of q, then the elements of each other query in order.
func (q Query[T]) Concat(others ...Query[T]) Query[T] {
	srcs := make([]iter.Seq[*T], 0, len(others)+1)
	srcs = append(srcs, q.each())
	for _, o := range others {
		srcs = append(srcs, o.each())
	}
	return Query[T]{refs: iterkit.Merge(srcs...)}
}

// Tap calls fn with every element as it passes through the query.
// Like the other operators, it only runs when the query is traversed.
func (q Query[T]) Tap(fn func(T)) Query[T] {
	return Query[T]{refs: iterkit.Map(q.each(), func(p *T) *T {
		fn(*p)
		return p
	})}
}

// Apply traverses the query and calls fn with a reference to each element.
// For queries made with From, fn mutates the backing slice in place.
func (q Query[T]) Apply(fn func(*T)) {
	for p := range q.each() {
		fn(p)
	}
}

// ApplyWithIndex is Apply with the zero based position of the element.
func (q Query[T]) ApplyWithIndex(fn func(*T, int)) {
	var index int
	for p := range q.each() {
		fn(p, index)
		index++
	}
}

// Any reports whether at least one element satisfies the predicate.
// It stops at the first match.
func (q Query[T]) Any(pred func(T) bool) bool {
	_, ok := q.Where(pred).First()
	return ok
}

// Every reports whether all elements satisfy the predicate.
// It stops at the first miss, and it is true for an empty query.
func (q Query[T]) Every(pred func(T) bool) bool {
	return !q.Any(func(v T) bool { return !pred(v) })
}

// ToSlice materializes the query into a new slice.
// It never returns nil, an empty query results in an empty slice.
func (q Query[T]) ToSlice() []T {
	return iterkit.Collect(q.Seq())
}

// Count traverses the whole query.
func (q Query[T]) Count() int {
	return iterkit.Count(q.each())
}

// First returns the first element of the query.
func (q Query[T]) First() (T, bool) {
	return value(iterkit.First(q.each()))
}

// Last traverses the whole query and returns its final element.
func (q Query[T]) Last() (T, bool) {
	return value(iterkit.Last(q.each()))
}

func value[T any](p *T, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// ElementAt returns the element at the given zero based position.
func (q Query[T]) ElementAt(index int) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}
	return q.Skip(index).First()
}

// Select projects every element through fn, preserving order and cardinality.
func Select[R, T any](q Query[T], fn func(T) R) Query[R] {
	return Query[R]{refs: iterkit.Map(q.each(), func(p *T) *R {
		r := fn(*p)
		return &r
	})}
}

// SelectWithIndex is Select with the zero based position of the element.
func SelectWithIndex[R, T any](q Query[T], fn func(T, int) R) Query[R] {
	src := q.each()
	return Query[R]{refs: func(yield func(*R) bool) {
		var index int
		for p := range src {
			r := fn(*p, index)
			index++
			if !yield(&r) {
				return
			}
		}
	}}
}

// Aggregate folds the query from left to right, starting from the initial value.
func Aggregate[R, T any](q Query[T], initial R, fn func(R, T) R) R {
	return iterkit.Reduce1(q.each(), initial, func(acc R, p *T) R {
		return fn(acc, *p)
	})
}

// Batch groups the elements into slices of the given size.
// The last batch can be shorter.
// A non-positive size falls back to the iterkit default batch size of 64.
func Batch[T any](q Query[T], size int) Query[[]T] {
	return FromSeq(iterkit.Batch(q.Seq(), iterkit.BatchSize(size)))
}
