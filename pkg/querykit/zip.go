package querykit

import "iter"

// Pair is one row of a zipped query.
//
// A Pair holds the values of both zipped elements as they were when the pair was produced.
// While Zip is yielding a pair, the pair is also linked to the source elements,
// which lets ApplyUnzip reach the original containers.
// The link ends when the traversal moves on,
// so a materialized Pair never changes nor reaches back into its sources.
type Pair[A, B any] struct {
	first  A
	second B
	link   *pairLink[A, B]
}

type pairLink[A, B any] struct {
	a    *A
	b    *B
	live bool
}

// MakePair creates a Pair that owns a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// First returns the element that came from the first zipped query.
func (p Pair[A, B]) First() A { return p.first }

// Second returns the element that came from the second zipped query.
func (p Pair[A, B]) Second() B { return p.second }

// Values returns both elements of the pair.
func (p Pair[A, B]) Values() (A, B) {
	return p.first, p.second
}

// Zip pairs the elements of a and b by position.
// The result is as long as the shorter query.
//
// Both sides advance in lockstep.
// When a runs out first, b is not advanced any further.
func Zip[A, B any](a Query[A], b Query[B]) Query[Pair[A, B]] {
	srcA, srcB := a.each(), b.each()
	return Query[Pair[A, B]]{refs: func(yield func(*Pair[A, B]) bool) {
		nextA, stopA := iter.Pull(srcA)
		defer stopA()
		nextB, stopB := iter.Pull(srcB)
		defer stopB()
		for {
			pa, ok := nextA()
			if !ok {
				return
			}
			pb, ok := nextB()
			if !ok {
				return
			}
			link := &pairLink[A, B]{a: pa, b: pb, live: true}
			pair := Pair[A, B]{first: *pa, second: *pb, link: link}
			cont := yield(&pair)
			link.live = false
			if !cont {
				return
			}
		}
	}}
}

// ZipSlices is a shorthand for zipping two slice backed queries.
func ZipSlices[A, B any](a []A, b []B) Query[Pair[A, B]] {
	return Zip(From(a), From(b))
}

// SelectUnzip projects every pair through a two argument function.
func SelectUnzip[R, A, B any](q Query[Pair[A, B]], fn func(A, B) R) Query[R] {
	return Select(q, func(p Pair[A, B]) R {
		return fn(p.first, p.second)
	})
}

// ApplyUnzip calls fn with references to both elements of every pair, in order.
// For sides made with From, fn mutates the backing slices in place.
//
// Pairs that are no longer part of a Zip traversal, like the ones collected with ToSlice,
// are detached from their sources, and fn only changes the pair itself.
// Calling ApplyUnzip on a side without backing storage, like Range,
// is a caller error: the mutation only reaches a temporary and is lost.
func ApplyUnzip[A, B any](q Query[Pair[A, B]], fn func(*A, *B)) {
	q.Apply(func(p *Pair[A, B]) {
		if p.link != nil && p.link.live {
			fn(p.link.a, p.link.b)
			p.first, p.second = *p.link.a, *p.link.b
			return
		}
		fn(&p.first, &p.second)
	})
}
