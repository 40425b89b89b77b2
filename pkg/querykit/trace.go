package querykit

import (
	"context"

	"go.llib.dev/frameless/pkg/logging"
)

// Trace logs every element that passes through the query at debug level,
// with the element's position under "index" and the element under "value".
// Trace is lazy, nothing is logged until the query is traversed.
//
// When the logger is nil, Trace returns the query unchanged.
func (q Query[T]) Trace(ctx context.Context, l *logging.Logger, msg string) Query[T] {
	if l == nil {
		return q
	}
	src := q.each()
	return Query[T]{refs: func(yield func(*T) bool) {
		var index int
		for p := range src {
			l.Debug(ctx, msg,
				logging.Field("index", index),
				logging.Field("value", *p))
			index++
			if !yield(p) {
				return
			}
		}
	}}
}
