package seqkit

import (
	"go.llib.dev/traverse/port/sequence"
)

// Adaptors are sinks: each owns the base it was constructed over plus its own
// parameters, and exposes a context-producing operation wrapping the base's.
// An adaptor never exposes more capability than its base provides;
// reverse traversal is propagated structurally at construction time.

// Map lazily transforms every element of the base through transform.
// This is useful in cases where you have to alter the input value,
// or change the type all together.
// When the base can traverse from its end, so can the mapped result.
func Map[To, From any](base sequence.Iterable[From], transform func(From) To) sequence.Iterable[To] {
	m := mapIterable[From, To]{base: base, transform: transform}
	if _, ok := base.(sequence.Reversible[From]); ok {
		return &mapReversible[From, To]{mapIterable: m}
	}
	return &m
}

type mapIterable[From, To any] struct {
	base      sequence.Iterable[From]
	transform func(From) To
}

func (m *mapIterable[From, To]) Iterate() sequence.Context[To] {
	return &mapContext[From, To]{base: m.base.Iterate(), transform: m.transform}
}

type mapReversible[From, To any] struct{ mapIterable[From, To] }

func (m *mapReversible[From, To]) IterateBackward() sequence.Context[To] {
	base := m.base.(sequence.Reversible[From]).IterateBackward()
	return &mapContext[From, To]{base: base, transform: m.transform}
}

type mapContext[From, To any] struct {
	base      sequence.Context[From]
	transform func(From) To
}

func (c *mapContext[From, To]) RunWhile(pred func(To) bool) sequence.Status {
	return c.base.RunWhile(func(v From) bool {
		return pred(c.transform(v))
	})
}

// Filter lazily keeps the elements of the base that match pred.
//
// The result is deliberately restricted to single-pass traversal:
// it exposes no positions, so multi-pass misuse is a type error rather than
// a silently wrong result. For a multi-pass filtering view over a collection,
// use FilterView.
// When the base can traverse from its end, so can the filtered result.
func Filter[V any](base sequence.Iterable[V], pred func(V) bool) sequence.Iterable[V] {
	f := filterIterable[V]{base: base, pred: pred}
	if _, ok := base.(sequence.Reversible[V]); ok {
		return &filterReversible[V]{filterIterable: f}
	}
	return &f
}

type filterIterable[V any] struct {
	base sequence.Iterable[V]
	pred func(V) bool
}

func (f *filterIterable[V]) Iterate() sequence.Context[V] {
	return &filterContext[V]{base: f.base.Iterate(), pred: f.pred}
}

type filterReversible[V any] struct{ filterIterable[V] }

func (f *filterReversible[V]) IterateBackward() sequence.Context[V] {
	base := f.base.(sequence.Reversible[V]).IterateBackward()
	return &filterContext[V]{base: base, pred: f.pred}
}

type filterContext[V any] struct {
	base sequence.Context[V]
	pred func(V) bool
}

func (c *filterContext[V]) RunWhile(pred func(V) bool) sequence.Status {
	return c.base.RunWhile(func(v V) bool {
		if !c.pred(v) {
			return true
		}
		return pred(v)
	})
}

// FilterView is the multi-pass filtering variant of Filter:
// a read-only Collection over the matching elements of the base,
// positioned by the base's own positions.
//
// Begin is not constant time: it scans for the first matching element on
// every call, since caching it would need mutable shared state and
// synchronisation that conflict with read-only multi-pass access.
func FilterView[P sequence.Position[P], V any](base sequence.Collection[P, V], pred func(V) bool) sequence.Collection[P, V] {
	return &filterView[P, V]{base: base, pred: pred}
}

type filterView[P sequence.Position[P], V any] struct {
	base sequence.Collection[P, V]
	pred func(V) bool
}

func (fv *filterView[P, V]) Begin() P { return fv.seek(fv.base.Begin()) }

func (fv *filterView[P, V]) End() P { return fv.base.End() }

func (fv *filterView[P, V]) Advance(p P) P { return fv.seek(fv.base.Advance(p)) }

func (fv *filterView[P, V]) ReadUnchecked(p P) V { return fv.base.ReadUnchecked(p) }

func (fv *filterView[P, V]) Iterate() sequence.Context[V] {
	return sequence.Iterate[P, V](fv)
}

// seek returns the first position at or after p whose element matches.
func (fv *filterView[P, V]) seek(p P) P {
	for p.Compare(fv.base.End()) < 0 && !fv.pred(fv.base.ReadUnchecked(p)) {
		p = fv.base.Advance(p)
	}
	return p
}

// Reverse yields the elements of the base in back to front order.
// Reversing twice swaps the two traversal operations back,
// returning the original base at zero cost.
func Reverse[V any](base sequence.Reversible[V]) sequence.Reversible[V] {
	if r, ok := base.(*reversed[V]); ok {
		return r.base
	}
	return &reversed[V]{base: base}
}

type reversed[V any] struct{ base sequence.Reversible[V] }

func (r *reversed[V]) Iterate() sequence.Context[V] { return r.base.IterateBackward() }

func (r *reversed[V]) IterateBackward() sequence.Context[V] { return r.base.Iterate() }

// Pair is an element of a zipped sequence.
type Pair[A, B any] struct {
	A A
	B B
}

// Zip pairs up two sources element by element, stopping at the shorter one.
// It pulls both sources in lock-step, one element per round.
func Zip[A, B any](a sequence.Iterable[A], b sequence.Iterable[B]) sequence.Iterable[Pair[A, B]] {
	return &zipIterable[A, B]{a: a, b: b}
}

type zipIterable[A, B any] struct {
	a sequence.Iterable[A]
	b sequence.Iterable[B]
}

func (z *zipIterable[A, B]) Iterate() sequence.Context[Pair[A, B]] {
	return &zipContext[A, B]{a: z.a.Iterate(), b: z.b.Iterate()}
}

type zipContext[A, B any] struct {
	a sequence.Context[A]
	b sequence.Context[B]
}

func (c *zipContext[A, B]) RunWhile(pred func(Pair[A, B]) bool) sequence.Status {
	for {
		av, aok := sequence.Next(c.a)
		if !aok {
			return sequence.Complete
		}
		bv, bok := sequence.Next(c.b)
		if !bok {
			return sequence.Complete
		}
		if !pred(Pair[A, B]{A: av, B: bv}) {
			return sequence.Incomplete
		}
	}
}

// Limit truncates the base after its first n elements.
func Limit[V any](base sequence.Iterable[V], n int) sequence.Iterable[V] {
	return &limitIterable[V]{base: base, n: n}
}

type limitIterable[V any] struct {
	base sequence.Iterable[V]
	n    int
}

func (l *limitIterable[V]) Iterate() sequence.Context[V] {
	return &limitContext[V]{base: l.base.Iterate(), left: l.n}
}

type limitContext[V any] struct {
	base sequence.Context[V]
	left int
}

func (c *limitContext[V]) RunWhile(pred func(V) bool) sequence.Status {
	if c.left <= 0 {
		return sequence.Complete
	}
	var stopped bool
	c.base.RunWhile(func(v V) bool {
		c.left--
		if !pred(v) {
			stopped = true
			return false
		}
		return 0 < c.left
	})
	if stopped {
		return sequence.Incomplete
	}
	c.left = 0
	return sequence.Complete
}
