// Package sequencecontract provides behavioral contracts
// for implementations of the sequence traversal protocol.
//
// A contract receives a maker function for a non-empty subject
// and asserts the protocol expectations any consumer relies on.
package sequencecontract

import (
	"errors"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse/port/sequence"
)

var (
	_ contract.Contract = (Iterable[any])(nil)
	_ contract.Contract = (Collection[sequence.Index, any])(nil)
	_ contract.Contract = (RandomAccess[sequence.Index, any])(nil)
)

// Iterable is the contract of the single-pass traversal capability.
// The maker must return a fresh, non-empty, finite subject
// yielding the same elements on every call.
type Iterable[V any] func(tb testing.TB) sequence.Iterable[V]

func (c Iterable[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterable", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) sequence.Iterable[V] {
			return c(t)
		})

		s.Then("a context feeds every element to the predicate", func(t *testcase.T) {
			var vs []V
			st := subject.Get(t).Iterate().RunWhile(func(v V) bool {
				vs = append(vs, v)
				return true
			})
			assert.Equal(t, sequence.Complete, st)
			assert.NotEmpty(t, vs)
		})

		s.Then("an exhausted context stays exhausted", func(t *testcase.T) {
			ctx := subject.Get(t).Iterate()
			for {
				if _, ok := sequence.Next(ctx); !ok {
					break
				}
			}
			t.Random.Repeat(3, 7, func() {
				_, ok := sequence.Next(ctx)
				assert.False(t, ok)
			})
		})

		s.Then("run while resumes at the first unconsumed element", func(t *testcase.T) {
			expected := collect[V](c(t).Iterate())

			ctx := c(t).Iterate()
			var got []V
			for {
				v, ok := sequence.Next(ctx)
				if !ok {
					break
				}
				got = append(got, v)
			}
			assert.Equal(t, expected, got)
		})

		s.Then("stopping reports incomplete and keeps the remainder intact", func(t *testcase.T) {
			expected := collect[V](c(t).Iterate())

			ctx := c(t).Iterate()
			var got []V
			st := ctx.RunWhile(func(v V) bool {
				got = append(got, v)
				return false
			})
			assert.Equal(t, sequence.Incomplete, st)
			assert.Equal(t, 1, len(got))
			got = append(got, collect[V](ctx)...)
			assert.Equal(t, expected, got)
		})
	})
}

func (c Iterable[V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Iterable[V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }

// Collection is the contract of the finite multi-pass protocol.
// The maker must return a fresh, non-empty subject
// holding the same elements on every call.
type Collection[P sequence.Position[P], V any] func(tb testing.TB) sequence.Collection[P, V]

func (c Collection[P, V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a collection", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) sequence.Collection[P, V] {
			return c(t)
		})

		s.Then("begin is not after end", func(t *testcase.T) {
			col := subject.Get(t)
			assert.True(t, col.Begin().Compare(col.End()) <= 0)
		})

		s.Then("end is valid but not readable", func(t *testcase.T) {
			col := subject.Get(t)
			assert.True(t, sequence.IsValid(col, col.End()))
			assert.False(t, sequence.IsReadable(col, col.End()))
		})

		s.Then("walking by advance visits the iterated elements position by position", func(t *testcase.T) {
			col := subject.Get(t)
			expected := collect[V](col.Iterate())

			var got []V
			for p := col.Begin(); sequence.IsReadable(col, p); p = col.Advance(p) {
				got = append(got, sequence.ReadChecked(col, p))
			}
			assert.Equal(t, expected, got)
		})

		s.Then("reads are pure, so many contexts coexist over the same state", func(t *testcase.T) {
			col := subject.Get(t)
			var (
				a = col.Iterate()
				b = col.Iterate()
			)
			for { // interleaved lock-step pulls
				av, aok := sequence.Next(a)
				bv, bok := sequence.Next(b)
				assert.Equal(t, aok, bok)
				if !aok {
					break
				}
				assert.Equal(t, av, bv)
			}
		})

		s.Then("a checked read of the end position faults", func(t *testcase.T) {
			col := subject.Get(t)
			pv := assert.Panic(t, func() {
				_ = sequence.ReadChecked(col, col.End())
			})
			err, ok := pv.(error)
			assert.True(t, ok)
			assert.True(t, errors.Is(err, sequence.ErrOutOfBounds))
		})

		s.Then("try read reports emptiness instead of faulting", func(t *testcase.T) {
			col := subject.Get(t)
			_, ok := sequence.TryRead(col, col.End())
			assert.False(t, ok)

			v, ok := sequence.TryRead(col, col.Begin())
			assert.True(t, ok)
			assert.Equal(t, col.ReadUnchecked(col.Begin()), v)
		})
	})
}

func (c Collection[P, V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Collection[P, V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }

// RandomAccess is the contract of constant time position arithmetic.
type RandomAccess[P sequence.Position[P], V any] func(tb testing.TB) sequence.RandomAccess[P, V]

func (c RandomAccess[P, V]) Spec(s *testcase.Spec) {
	Collection[P, V](func(tb testing.TB) sequence.Collection[P, V] {
		return c(tb)
	}).Spec(s)

	s.Describe("it behaves like a random access collection", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) sequence.RandomAccess[P, V] {
			return c(t)
		})

		s.Then("the begin-end distance equals the element count", func(t *testcase.T) {
			col := subject.Get(t)
			n := count[V](col.Iterate())
			assert.Equal(t, n, col.Distance(col.Begin(), col.End()))
			assert.Equal(t, -n, col.Distance(col.End(), col.Begin()))
		})

		s.Then("offsetting begin by the element count lands on end", func(t *testcase.T) {
			col := subject.Get(t)
			n := count[V](col.Iterate())
			assert.Equal(t, 0, col.Offset(col.Begin(), n).Compare(col.End()))
		})

		s.Then("an offset read equals the element reached by counted advance steps", func(t *testcase.T) {
			col := subject.Get(t)
			n := count[V](col.Iterate())
			i := t.Random.IntN(n)

			p := col.Begin()
			for step := 0; step < i; step++ {
				p = col.Advance(p)
			}
			assert.Equal(t, col.Distance(col.Begin(), p), i)
			assert.Equal(t, sequence.ReadChecked[P, V](col, p), sequence.ReadChecked[P, V](col, col.Offset(col.Begin(), i)))
		})

		s.Then("retreat is symmetric to advance", func(t *testcase.T) {
			col := subject.Get(t)
			p := col.Offset(col.Begin(), t.Random.IntN(count[V](col.Iterate())))
			assert.Equal(t, p, col.Retreat(col.Advance(p)))
		})
	})
}

func (c RandomAccess[P, V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c RandomAccess[P, V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }

func collect[V any](ctx sequence.Context[V]) []V {
	var vs []V
	ctx.RunWhile(func(v V) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func count[V any](ctx sequence.Context[V]) int {
	var n int
	ctx.RunWhile(func(V) bool {
		n++
		return true
	})
	return n
}
