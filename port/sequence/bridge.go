package sequence

import "iter"

// PullIter is the classic pull-style iterator shape,
// where Next advances the cursor and Value rereads the current element.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// FromPullFunc adapts the minimal pull cursor, a next function whose false
// result is the end sentinel, into an Iterable.
// The result is single use: every context produced from it consumes the same cursor.
func FromPullFunc[V any](next func() (V, bool)) Iterable[V] {
	return pullFuncIterable[V](next)
}

// FromPull adapts a pull-style iterator into an Iterable.
// The result is single use, like the iterator behind it.
func FromPull[V any](itr PullIter[V]) Iterable[V] {
	return FromPullFunc(func() (V, bool) {
		if !itr.Next() {
			var zero V
			return zero, false
		}
		return itr.Value(), true
	})
}

// FromSeq adapts a native push sequence into an Iterable.
// Resumability of the produced contexts comes from iter.Pull,
// so each context must be operated from a single goroutine.
// When src is a single use sequence, so is the returned Iterable.
func FromSeq[V any](src iter.Seq[V]) Iterable[V] {
	return seqIterable[V](src)
}

// ToSeq exposes an Iterable to Go's for-range construct.
// Each range over the returned sequence obtains a fresh context,
// so ranging over a single-pass source a second time
// continues wherever the first range stopped.
func ToSeq[V any](i Iterable[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		i.Iterate().RunWhile(yield)
	}
}

// ToPull wraps an Iterable into an owning pull cursor
// holding the iteration context plus the one element pulled last,
// for consumers that need read-without-advance on top of a push-style context.
// The returned value is stateful and must not be copied.
func ToPull[V any](i Iterable[V]) *PullContext[V] {
	return &PullContext[V]{ctx: i.Iterate()}
}

// PullContext is the owning pull-style view over an iteration Context.
// It implements PullIter.
type PullContext[V any] struct {
	_     noCopy
	ctx   Context[V]
	value V
}

// Next consumes the next element of the underlying context
// and caches it for Value.
func (p *PullContext[V]) Next() bool {
	v, ok := Next(p.ctx)
	if ok {
		p.value = v
	}
	return ok
}

// Value returns the element cached by the last successful Next.
func (p *PullContext[V]) Value() V { return p.value }

type pullFuncIterable[V any] func() (V, bool)

func (fn pullFuncIterable[V]) Iterate() Context[V] {
	return &funcContext[V]{next: fn}
}

type seqIterable[V any] func(yield func(V) bool)

func (s seqIterable[V]) Iterate() Context[V] {
	next, stop := iter.Pull(iter.Seq[V](s))
	return &funcContext[V]{next: next, stop: stop}
}

// funcContext runs the generic read-then-advance loop over a fused pull cursor.
type funcContext[V any] struct {
	_    noCopy
	next func() (V, bool)
	stop func()
	done bool
}

func (c *funcContext[V]) RunWhile(pred func(V) bool) Status {
	if c.done {
		return Complete
	}
	for {
		v, ok := c.next()
		if !ok {
			c.done = true
			if c.stop != nil {
				c.stop()
			}
			return Complete
		}
		if !pred(v) {
			return Incomplete
		}
	}
}
