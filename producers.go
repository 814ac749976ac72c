package generator

import "errors"

// ErrStride reports a CountBy stride of zero, which would never advance the
// counter.
var ErrStride = errors.New("generator: stride must not be zero")

// Count returns a generator producing each integer of the half-open
// interval [start, end) in increasing order. An empty interval completes on
// the first resume without producing a value.
func Count(start, end int) Generator[int] {
	return CountBy(start, end, 1)
}

// CountBy is Count with a stride, which may be negative to count down. The
// sequence completes once the counter passes end. A zero stride fails the
// generator with ErrStride on the first resume.
func CountBy(start, end, stride int) Generator[int] {
	cur := start
	return New(func() (int, bool, error) {
		if stride == 0 {
			return 0, false, ErrStride
		}
		if (stride > 0 && cur >= end) || (stride < 0 && cur <= end) {
			return 0, false, nil
		}
		v := cur
		cur += stride
		return v, true, nil
	})
}

// FromSlice returns a generator over the elements of s in order. The slice
// is not copied; the caller must not mutate it while the generator is live.
func FromSlice[T any](s []T) Generator[T] {
	index := -1
	return New(func() (T, bool, error) {
		index++
		if index >= len(s) {
			var zero T
			return zero, false, nil
		}
		return s[index], true, nil
	})
}

// Fib returns a generator producing the Fibonacci sequence 1, 1, 2, 3, 5,
// ... up to but not including limit.
func Fib(limit int) Generator[int] {
	a, b := 1, 1
	return New(func() (int, bool, error) {
		if a >= limit {
			return 0, false, nil
		}
		v := a
		a, b = b, a+b
		return v, true, nil
	})
}
