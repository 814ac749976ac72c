package generator

import "iter"

// Seq adapts g to Go's native iterator form so a generator can drive a
// range loop or any combinator that consumes an iter.Seq. Breaking out of
// the range stops the generator. The sequence carries no error of its own;
// after the loop the caller inspects Err.
func (g Generator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Next() {
			if !yield(g.Value()) {
				g.Stop()
				return
			}
		}
	}
}

// FromSeq turns a yield-style producer function into a generator by pulling
// values from it one resume at a time.
//
// The producer runs lazily: none of its code executes before the first call
// to Next. Reaching a terminal state or stopping the generator releases the
// underlying pull iterator, so a sequence abandoned midway never leaks its
// paused producer.
func FromSeq[T any](seq iter.Seq[T]) Generator[T] {
	var (
		next func() (T, bool)
		stop func()
	)
	return NewWithRelease(
		func() (T, bool, error) {
			if next == nil {
				next, stop = iter.Pull(seq)
			}
			v, ok := next()
			return v, ok, nil
		},
		func() {
			if stop != nil {
				stop()
			}
		},
	)
}
