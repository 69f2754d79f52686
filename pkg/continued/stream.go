package continued

import (
	"math/big"
)

// Stream is a lazily produced, possibly unbounded sequence of values.
//
// Every call to Value, even the first, must be preceded by a call to Next
// that returned true. Once Next returns false it keeps returning false, and
// Err reports why the stream ended: nil for clean exhaustion, otherwise the
// error that stopped it.
//
// Streams are single-consumer and not safe for concurrent use. A Stream does
// no work between calls to Next, so a consumer cancels simply by no longer
// calling it.
type Stream[T any] interface {
	// Next advances to the next value and reports whether there is one.
	Next() bool

	// Value returns the current value. For coefficient streams the caller
	// must not modify the returned big.Int.
	Value() T

	// Err returns the error that ended the stream, if any.
	Err() error
}

// CoefficientStream is a stream of continued fraction coefficients
// a0, a1, a2, … where a0 may be any integer and every later coefficient is
// positive.
type CoefficientStream = Stream[*big.Int]

// DigitStream is a stream of positional digits with exactly one RadixPoint
// and an optional leading Minus.
type DigitStream = Stream[Digit]

// generator adapts a step function into a Stream. step returns the next
// value, false when the stream is exhausted, or an error.
type generator[T any] struct {
	step func() (T, bool, error)
	cur  T
	err  error
	done bool
}

func (g *generator[T]) Next() bool {
	if g.done {
		return false
	}
	v, ok, err := g.step()
	if err != nil || !ok {
		var zero T
		g.cur, g.err, g.done = zero, err, true
		g.step = nil
		return false
	}
	g.cur = v
	return true
}

func (g *generator[T]) Value() T {
	return g.cur
}

func (g *generator[T]) Err() error {
	return g.err
}

// FromFunc returns a stream that calls fn for each value. fn reports false
// when the sequence is exhausted. FromFunc is the hook for program-defined
// coefficient generators.
func FromFunc[T any](fn func() (T, bool)) Stream[T] {
	return Generate(func() (T, bool, error) {
		v, ok := fn()
		return v, ok, nil
	})
}

// Generate is FromFunc for producers that can fail, such as readers of
// external input. A non-nil error ends the stream and is reported by Err.
func Generate[T any](step func() (T, bool, error)) Stream[T] {
	return &generator[T]{step: step}
}

// FromSlice returns a finite stream over items. The slice is not copied.
func FromSlice[T any](items []T) Stream[T] {
	i := 0
	return &generator[T]{step: func() (T, bool, error) {
		if i >= len(items) {
			var zero T
			return zero, false, nil
		}
		i++
		return items[i-1], true, nil
	}}
}

// Fail returns a stream that yields nothing and reports err.
func Fail[T any](err error) Stream[T] {
	return &generator[T]{step: func() (T, bool, error) {
		var zero T
		return zero, false, err
	}}
}

// Ints returns a finite coefficient stream over small integers.
//
// Example:
//
//	Ints(19, 5, 4, 1, 3) // 1900/99
func Ints(values ...int64) CoefficientStream {
	cs := make([]*big.Int, len(values))
	for i, v := range values {
		cs[i] = big.NewInt(v)
	}
	return FromSlice(cs)
}

// Take returns a stream of at most the first n values of s.
func Take[T any](s Stream[T], n int) Stream[T] {
	taken := 0
	return &generator[T]{step: func() (T, bool, error) {
		var zero T
		if taken >= n {
			return zero, false, nil
		}
		if !s.Next() {
			return zero, false, s.Err()
		}
		taken++
		return s.Value(), true, nil
	}}
}

// Skip returns s without its first n values. The skipped values are pulled
// lazily on the first call to Next.
func Skip[T any](s Stream[T], n int) Stream[T] {
	skipped := false
	return &generator[T]{step: func() (T, bool, error) {
		var zero T
		if !skipped {
			skipped = true
			for i := 0; i < n; i++ {
				if !s.Next() {
					return zero, false, s.Err()
				}
			}
		}
		if !s.Next() {
			return zero, false, s.Err()
		}
		return s.Value(), true, nil
	}}
}

// Concat returns the values of each stream in turn. An error in one stream
// ends the concatenation.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	return &generator[T]{step: func() (T, bool, error) {
		for len(streams) > 0 {
			if streams[0].Next() {
				return streams[0].Value(), true, nil
			}
			if err := streams[0].Err(); err != nil {
				var zero T
				return zero, false, err
			}
			streams = streams[1:]
		}
		var zero T
		return zero, false, nil
	}}
}

// Collect drains s into a slice. It never returns for an unbounded stream;
// use CollectN or Take for those.
func Collect[T any](s Stream[T]) ([]T, error) {
	var out []T
	for s.Next() {
		out = append(out, s.Value())
	}
	return out, s.Err()
}

// CollectN drains at most n values of s into a slice.
func CollectN[T any](s Stream[T], n int) ([]T, error) {
	return Collect(Take(s, n))
}

// Each calls fn for every value of s until fn returns false or s ends.
func Each[T any](s Stream[T], fn func(T) bool) error {
	for s.Next() {
		if !fn(s.Value()) {
			return nil
		}
	}
	return s.Err()
}
