package querykitcontract

import (
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/querykit/pkg/querykit"
)

// Query is the behavioural contract of a non-empty, restartable query.
// Every source and operator of querykit is expected to fulfil it.
func Query[T any](mk contract.Make[querykit.Query[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) querykit.Query[T] {
		return mk(t)
	})

	s.Then("values can be collected from the query", func(t *testcase.T) {
		assert.NotEmpty(t, subject.Get(t).ToSlice())
	})

	s.Then("traversing the query again yields the same values", func(t *testcase.T) {
		q := subject.Get(t)
		assert.Equal(t, q.ToSlice(), q.ToSlice())
	})

	s.Then("the standard iterator yields the materialized values", func(t *testcase.T) {
		q := subject.Get(t)
		var vs = make([]T, 0)
		for v := range q.Seq() {
			vs = append(vs, v)
		}
		assert.Equal(t, q.ToSlice(), vs)
	})

	s.Then("breaking out of a range loop ends the traversal", func(t *testcase.T) {
		var n int
		for range subject.Get(t).Seq() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Then("Count matches the number of materialized values", func(t *testcase.T) {
		q := subject.Get(t)
		assert.Equal(t, len(q.ToSlice()), q.Count())
	})

	s.Then("Take limits the number of values", func(t *testcase.T) {
		q := subject.Get(t)
		total := q.Count()
		n := t.Random.IntB(0, total)
		assert.Equal(t, q.ToSlice()[:n], q.Take(n).ToSlice())
	})

	s.Then("Skip drops the leading values", func(t *testcase.T) {
		q := subject.Get(t)
		total := q.Count()
		n := t.Random.IntB(0, total+1)
		exp := q.ToSlice()[min(n, total):]
		assert.Equal(t, exp, q.Skip(n).ToSlice())
	})

	s.Then("Indexed reports consecutive positions starting from zero", func(t *testcase.T) {
		var exp int
		for i := range subject.Get(t).Indexed() {
			assert.Equal(t, exp, i)
			exp++
		}
		assert.Equal(t, subject.Get(t).Count(), exp)
	})

	return s.AsSuite("Query")
}
