package generator

import "github.com/primlock/generator/internal/idgen"

// frame holds the paused state of a single generator instance: the producer
// continuation, the most recently produced value, and the lifecycle status.
// At most one Generator handle owns a frame at any time; frames are never
// shared and never resumed concurrently.
type frame[T any] struct {
	id     string
	status Status

	// value is defined only while status == Suspended, err only once
	// status == Failed.
	value T
	err   error

	// step is the producer continuation. Calling it resumes the producer
	// at its last yield point; its closure carries the producer's locals.
	step StepFunc[T]

	// release is run exactly once, when the frame reaches a terminal
	// status. Producers use it to tie external resources to the frame's
	// lifetime.
	release func()

	// running guards against reentrant resumption of the same frame.
	running bool
}

func newFrame[T any](step StepFunc[T], release func()) *frame[T] {
	return &frame[T]{id: idgen.New(), step: step, release: release}
}

// next advances the frame by exactly one step, reporting whether it entered
// Suspended with a fresh value.
func (f *frame[T]) next() bool {
	if f.status.Terminal() {
		return false
	}
	if f.running {
		panic(contractViolation("generator.Next: resume called while a resume is in progress"))
	}
	f.running = true
	defer func() { f.running = false }()

	value, ok, err := f.runStep()
	switch {
	case err != nil:
		f.err = err
		f.settle(Failed)
		return false
	case !ok:
		f.settle(Completed)
		return false
	default:
		f.value = value
		f.status = Suspended
		return true
	}
}

// runStep executes one producer step, converting a panic into an error so
// the frame can settle in Failed instead of tearing down the process.
// Contract violations are re-raised: misuse of the API must reach the
// caller, not masquerade as a producer failure.
func (f *frame[T]) runStep() (value T, ok bool, err error) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case contractViolation:
			panic(v)
		default:
			err = newPanicError(v)
		}
	}()
	return f.step()
}

// settle moves the frame to a terminal status, drops the continuation, and
// runs the release hook. It runs at most once per frame: next refuses to
// advance terminal frames and stop returns early on them.
func (f *frame[T]) settle(status Status) {
	var zero T
	f.value = zero
	f.status = status
	f.step = nil
	if f.release != nil {
		f.release()
		f.release = nil
	}
}

// stop cancels the frame without running any further producer steps.
func (f *frame[T]) stop() {
	if f.status.Terminal() {
		return
	}
	if f.running {
		panic(contractViolation("generator.Stop: stop called while a resume is in progress"))
	}
	f.settle(Completed)
}

// contractViolation marks panics raised for misuse of the API, to keep them
// distinguishable from panics raised by producer logic.
type contractViolation string

func (v contractViolation) Error() string { return string(v) }
