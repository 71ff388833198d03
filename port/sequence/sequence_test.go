package sequence_test

import (
	"errors"
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse/pkg/seqkit"
	"go.llib.dev/traverse/port/sequence"
)

func ExampleIterate() {
	col := seqkit.Slice([]string{"foo", "bar", "baz"})

	ctx := col.Iterate()
	ctx.RunWhile(func(v string) bool {
		fmt.Println(v)
		return true
	})
	// Output:
	// foo
	// bar
	// baz
}

func ExampleNext() {
	ctx := seqkit.Slice([]int{42, 7}).Iterate()

	n, ok := sequence.Next(ctx)
	_ = ok // true
	_ = n  // 42
}

func ExampleToPull() {
	pull := sequence.ToPull[int](seqkit.Slice([]int{1, 2, 3}))
	for pull.Next() {
		fmt.Println(pull.Value())
	}
	// Output:
	// 1
	// 2
	// 3
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "complete", sequence.Complete.String())
	assert.Equal(t, "incomplete", sequence.Incomplete.String())
	assert.Equal(t, "invalid", sequence.Status(42).String())
}

func TestRunWhile(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("on exhaustion it reports complete", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1, 2, 3}).Iterate()
		var got []int
		st := ctx.RunWhile(func(n int) bool {
			got = append(got, n)
			return true
		})
		assert.Equal(t, sequence.Complete, st)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	s.Test("a false predicate result stops it with the element consumed", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1, 2, 3}).Iterate()
		var got []int
		st := ctx.RunWhile(func(n int) bool {
			got = append(got, n)
			return n < 2
		})
		assert.Equal(t, sequence.Incomplete, st)
		assert.Equal(t, []int{1, 2}, got)
	})

	s.Test("resuming continues at the first unconsumed element", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1, 2, 3, 4}).Iterate()
		ctx.RunWhile(func(n int) bool { return false })

		var rest []int
		st := ctx.RunWhile(func(n int) bool {
			rest = append(rest, n)
			return true
		})
		assert.Equal(t, sequence.Complete, st)
		assert.Equal(t, []int{2, 3, 4}, rest)
	})

	s.Test("over an infinite source it returns only on a stop signal", func(t *testcase.T) {
		var n int
		infinite := sequence.FromPullFunc(func() (int, bool) {
			n++
			return n, true
		})
		limit := t.Random.IntB(10, 100)
		var got []int
		st := infinite.Iterate().RunWhile(func(v int) bool {
			got = append(got, v)
			return len(got) < limit
		})
		assert.Equal(t, sequence.Incomplete, st)
		assert.Equal(t, limit, len(got))
	})
}

func TestStep(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it consumes exactly one element per call", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1, 2}).Iterate()

		v, ok := sequence.Step(ctx, func(n int) int { return n * 10 })
		assert.True(t, ok)
		assert.Equal(t, 10, v)

		v, ok = sequence.Step(ctx, func(n int) int { return n * 10 })
		assert.True(t, ok)
		assert.Equal(t, 20, v)

		_, ok = sequence.Step(ctx, func(n int) int { return n })
		assert.False(t, ok)
	})

	s.Test("step void reports whether an element existed", func(t *testcase.T) {
		ctx := seqkit.Slice([]string{"x"}).Iterate()

		var seen []string
		assert.True(t, sequence.StepVoid(ctx, func(v string) { seen = append(seen, v) }))
		assert.Equal(t, []string{"x"}, seen)
		assert.False(t, sequence.StepVoid(ctx, func(v string) { seen = append(seen, v) }))
		assert.Equal(t, []string{"x"}, seen)
	})
}

func TestNext(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("pulls elements in order", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{4, 2}).Iterate()

		v, ok := sequence.Next(ctx)
		assert.True(t, ok)
		assert.Equal(t, 4, v)
		v, ok = sequence.Next(ctx)
		assert.True(t, ok)
		assert.Equal(t, 2, v)
	})

	s.Test("exhaustion is terminal", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1}).Iterate()
		_, _ = sequence.Next(ctx)

		t.Random.Repeat(3, 7, func() {
			_, ok := sequence.Next(ctx)
			assert.False(t, ok)
		})
	})
}

func TestIterateBackward(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it walks from the end towards the begin", func(t *testcase.T) {
		col := seqkit.Slice([]int{1, 2, 3})
		var got []int
		st := col.IterateBackward().RunWhile(func(n int) bool {
			got = append(got, n)
			return true
		})
		assert.Equal(t, sequence.Complete, st)
		assert.Equal(t, []int{3, 2, 1}, got)
	})

	s.Test("it resumes like the forward engine", func(t *testcase.T) {
		ctx := seqkit.Slice([]int{1, 2, 3}).IterateBackward()
		v, ok := sequence.Next(ctx)
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		var rest []int
		ctx.RunWhile(func(n int) bool {
			rest = append(rest, n)
			return true
		})
		assert.Equal(t, []int{2, 1}, rest)
	})
}

func TestPositionPredicates(t *testing.T) {
	s := testcase.NewSpec(t)

	col := testcase.Let(s, func(t *testcase.T) sequence.Collection[sequence.Index, int] {
		return seqkit.Slice([]int{10, 20, 30})
	})

	s.Test("end is valid but not readable", func(t *testcase.T) {
		c := col.Get(t)
		assert.True(t, sequence.IsValid(c, c.End()))
		assert.False(t, sequence.IsReadable(c, c.End()))
	})

	s.Test("begin of a non-empty collection is readable", func(t *testcase.T) {
		c := col.Get(t)
		assert.True(t, sequence.IsReadable(c, c.Begin()))
	})

	s.Test("a position before begin is invalid", func(t *testcase.T) {
		c := col.Get(t)
		assert.False(t, sequence.IsValid(c, sequence.Index(-1)))
	})
}

func TestReadChecked(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a readable position reads its element", func(t *testcase.T) {
		var col sequence.Collection[sequence.Index, int] = seqkit.Slice([]int{10, 20, 30})
		assert.Equal(t, 20, sequence.ReadChecked(col, sequence.Index(1)))
	})

	s.Test("a bounds violation faults fast with a typed error", func(t *testcase.T) {
		var col sequence.Collection[sequence.Index, int] = seqkit.Slice([]int{10})
		pv := assert.Panic(t, func() {
			_ = sequence.ReadChecked(col, col.End())
		})
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, sequence.ErrOutOfBounds))
	})

	s.Test("the fault aborts the read only, the collection stays usable", func(t *testcase.T) {
		var col sequence.Collection[sequence.Index, int] = seqkit.Slice([]int{10, 20})
		_ = assert.Panic(t, func() { _ = sequence.ReadChecked(col, sequence.Index(99)) })
		assert.Equal(t, 10, sequence.ReadChecked(col, col.Begin()))
	})

	s.Test("try read reports emptiness instead of faulting", func(t *testcase.T) {
		var col sequence.Collection[sequence.Index, int] = seqkit.Slice([]int{10})
		v, ok := sequence.TryRead(col, col.Begin())
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		_, ok = sequence.TryRead(col, col.End())
		assert.False(t, ok)
	})
}

func TestFromSeq(t *testing.T) {
	s := testcase.NewSpec(t)

	var src = func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := 0; i < n; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	s.Test("all elements traverse through", func(t *testcase.T) {
		n := t.Random.IntB(3, 10)
		assert.Equal(t, n, seqkit.Count(sequence.FromSeq(src(n))))
	})

	s.Test("its context is resumable", func(t *testcase.T) {
		ctx := sequence.FromSeq(src(5)).Iterate()

		v, ok := sequence.Next(ctx)
		assert.True(t, ok)
		assert.Equal(t, 0, v)

		var rest []int
		st := ctx.RunWhile(func(n int) bool {
			rest = append(rest, n)
			return true
		})
		assert.Equal(t, sequence.Complete, st)
		assert.Equal(t, []int{1, 2, 3, 4}, rest)
	})

	s.Test("exhaustion is terminal", func(t *testcase.T) {
		ctx := sequence.FromSeq(src(1)).Iterate()
		assert.Equal(t, sequence.Complete, ctx.RunWhile(func(int) bool { return true }))
		_, ok := sequence.Next(ctx)
		assert.False(t, ok)
	})
}

type stubPullIter struct {
	values []string
	index  int
}

func (i *stubPullIter) Next() bool {
	if len(i.values) <= i.index {
		return false
	}
	i.index++
	return true
}

func (i *stubPullIter) Value() string {
	return i.values[i.index-1]
}

func TestFromPull(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the pull cursor's elements traverse through in order", func(t *testcase.T) {
		itr := sequence.FromPull[string](&stubPullIter{values: []string{"a", "b", "c"}})
		assert.Equal(t, []string{"a", "b", "c"}, seqkit.Collect(itr))
	})

	s.Test("single pass: contexts share the cursor", func(t *testcase.T) {
		itr := sequence.FromPull[string](&stubPullIter{values: []string{"a", "b"}})
		v, ok := sequence.Next(itr.Iterate())
		assert.True(t, ok)
		assert.Equal(t, "a", v)
		v, ok = sequence.Next(itr.Iterate())
		assert.True(t, ok)
		assert.Equal(t, "b", v)
	})
}

func TestToSeq(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it drives a for-range construct", func(t *testcase.T) {
		var got []int
		for v := range sequence.ToSeq[int](seqkit.Slice([]int{1, 2, 3})) {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	s.Test("breaking out keeps the remainder of a single-pass source", func(t *testcase.T) {
		stream := sequence.FromPullFunc(counter(5))
		seq := sequence.ToSeq(stream)

		var first []int
		for v := range seq {
			first = append(first, v)
			if 2 <= len(first) {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, first)

		var rest []int
		for v := range seq {
			rest = append(rest, v)
		}
		assert.Equal(t, []int{3, 4, 5}, rest)
	})
}

func TestToPull(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("next advances and value rereads without advancing", func(t *testcase.T) {
		pull := sequence.ToPull[int](seqkit.Slice([]int{1, 2}))

		assert.True(t, pull.Next())
		assert.Equal(t, 1, pull.Value())
		assert.Equal(t, 1, pull.Value())

		assert.True(t, pull.Next())
		assert.Equal(t, 2, pull.Value())

		assert.False(t, pull.Next())
	})

	s.Test("it satisfies the pull iterator shape itself", func(t *testcase.T) {
		var _ sequence.PullIter[int] = sequence.ToPull[int](seqkit.Slice([]int{1}))
	})
}

func counter(n int) func() (int, bool) {
	var i int
	return func() (int, bool) {
		if n <= i {
			return 0, false
		}
		i++
		return i, true
	}
}
