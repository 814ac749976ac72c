package generator

// StepFunc is the producer logic of a generator. Each call runs the
// producer to its next yield point: it returns the produced value and true,
// or false once the sequence is over. A non-nil error fails the generator
// permanently; the error is reported by Err and the producer is never
// invoked again.
type StepFunc[T any] func() (T, bool, error)

// Generator instances expose APIs allowing the program to drive a producer
// of a sequence of values of type T.
//
// A Generator wraps exclusive ownership of one execution frame. The zero
// value is an empty generator that owns no frame: Done reports true, Next
// is a no-op, and Err reports nil.
type Generator[T any] struct{ f *frame[T] }

// New creates a new generator which produces the sequence of values emitted
// by step.
//
// Passing a nil step returns an empty generator, equivalent to Empty. This
// is the fallback for producers that could not be set up: rather than
// aborting the caller, the factory hands back a generator that is exhausted
// from the start, so callers that need to distinguish the two cases check
// Done before the first Next.
func New[T any](step StepFunc[T]) Generator[T] {
	return NewWithRelease(step, nil)
}

// NewWithRelease is New with a release hook that runs exactly once, when
// the generator reaches a terminal state or is stopped. Producers use it to
// release resources held across yield points.
//
// If step is nil the hook runs immediately and an empty generator is
// returned, since no frame will ever reach a terminal state.
func NewWithRelease[T any](step StepFunc[T], release func()) Generator[T] {
	if step == nil {
		if release != nil {
			release()
		}
		return Empty[T]()
	}
	return Generator[T]{f: newFrame(step, release)}
}

// Empty returns a generator that owns no frame and produces no values.
func Empty[T any]() Generator[T] { return Generator[T]{} }

// Next executes the producer until its next yield point, or until the end
// of its sequence. The method returns true if a value was produced, after
// which the program should call Value to obtain it. Calling Next on an
// exhausted generator is a no-op that returns false and leaves the state
// unchanged.
func (g Generator[T]) Next() bool {
	if g.f == nil {
		return false
	}
	return g.f.next()
}

// Value returns the value produced by the last call to Next. The method
// must be called only after a call to Next has returned true; calling it on
// a generator that is exhausted or not yet started is a bug in the caller
// and panics. Calling the method multiple times between calls to Next
// returns the same value each time.
func (g Generator[T]) Value() T {
	if g.f == nil || g.f.status != Suspended {
		panic(contractViolation("generator.Value: no value available"))
	}
	return g.f.value
}

// Err returns the error that moved the generator to the Failed state, or
// nil if the generator has not failed. A producer panic is reported as a
// *PanicError.
func (g Generator[T]) Err() error {
	if g.f == nil {
		return nil
	}
	return g.f.err
}

// Done returns true if the generator will never produce another value,
// either because its sequence completed, its producer failed, it was
// stopped, or it owns no frame.
func (g Generator[T]) Done() bool {
	return g.f == nil || g.f.status.Terminal()
}

// Status returns the lifecycle status of the owned frame. An empty
// generator reports Completed.
func (g Generator[T]) Status() Status {
	if g.f == nil {
		return Completed
	}
	return g.f.status
}

// Stop interrupts the generator: the producer is not resumed again and the
// frame's resources are released as if the sequence had completed.
//
// Stop is idempotent, calling it multiple times or after completion of the
// sequence has no effect, and it is safe on an empty generator. The program
// does not have to call it after the sequence completes on its own; it is
// the cancellation path for abandoning a sequence midway.
func (g Generator[T]) Stop() {
	if g.f != nil {
		g.f.stop()
	}
}

// ID returns an opaque identifier unique to this instance, or the empty
// string for an empty generator. It exists for observability; callers must
// not rely on its format.
func (g Generator[T]) ID() string {
	if g.f == nil {
		return ""
	}
	return g.f.id
}
