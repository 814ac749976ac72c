package generator

import (
	"errors"
	"reflect"
	"testing"
)

func TestCounter(t *testing.T) {
	g := Count(1, 5)

	if g.Status() != NotStarted {
		t.Errorf("wrong initial status: got %s, expect %s", g.Status(), NotStarted)
	}
	if g.Done() {
		t.Error("counter reported done before the first resume")
	}

	var values []int
	for g.Next() {
		if g.Status() != Suspended {
			t.Errorf("wrong status after a yield: got %s, expect %s", g.Status(), Suspended)
		}
		values = append(values, g.Value())
	}

	expect := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(values, expect) {
		t.Errorf("wrong values: got %v, expect %v", values, expect)
	}
	if g.Status() != Completed {
		t.Errorf("wrong final status: got %s, expect %s", g.Status(), Completed)
	}
	if !g.Done() {
		t.Error("counter not done after completion")
	}
	if err := g.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Resuming a completed generator is a no-op.
	if g.Next() {
		t.Error("resume after completion produced a value")
	}
	if g.Status() != Completed {
		t.Errorf("resume after completion changed status to %s", g.Status())
	}
}

func TestCounterEmptyRange(t *testing.T) {
	g := Count(5, 5)

	if g.Next() {
		t.Error("empty range produced a value")
	}
	if g.Status() != Completed {
		t.Errorf("wrong status: got %s, expect %s", g.Status(), Completed)
	}
}

func TestInterleavedInstances(t *testing.T) {
	a := Count(1, 5)
	b := Count(10, 12)

	var values []int
	for i := 0; i < 2; i++ {
		if !a.Next() {
			t.Fatal("first counter exhausted early")
		}
		values = append(values, a.Value())
		if !b.Next() {
			t.Fatal("second counter exhausted early")
		}
		values = append(values, b.Value())
	}

	expect := []int{1, 10, 2, 11}
	if !reflect.DeepEqual(values, expect) {
		t.Errorf("wrong interleaving: got %v, expect %v", values, expect)
	}
	if a.ID() == b.ID() {
		t.Error("two instances share an identifier")
	}
}

func TestEmptyGenerator(t *testing.T) {
	for name, g := range map[string]Generator[int]{
		"Empty":    Empty[int](),
		"New(nil)": New[int](nil),
		"zero":     {},
	} {
		if !g.Done() {
			t.Errorf("%s: not done", name)
		}
		if g.Next() {
			t.Errorf("%s: resume produced a value", name)
		}
		if err := g.Err(); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
		if g.Status() != Completed {
			t.Errorf("%s: wrong status: got %s, expect %s", name, g.Status(), Completed)
		}
		if g.ID() != "" {
			t.Errorf("%s: unexpected identifier %q", name, g.ID())
		}
		g.Stop() // must be a safe no-op
	}
}

func TestFailingProducer(t *testing.T) {
	fail := errors.New("step failed")
	steps := 0
	g := New(func() (int, bool, error) {
		steps++
		if steps == 2 {
			return 0, false, fail
		}
		return steps, true, nil
	})

	if !g.Next() {
		t.Fatal("first resume did not produce a value")
	}
	if g.Next() {
		t.Error("failing resume produced a value")
	}
	if g.Status() != Failed {
		t.Errorf("wrong status: got %s, expect %s", g.Status(), Failed)
	}
	if !errors.Is(g.Err(), fail) {
		t.Errorf("wrong error: got %v, expect %v", g.Err(), fail)
	}

	// After the failure the producer logic must never run again.
	for i := 0; i < 3; i++ {
		if g.Next() {
			t.Error("resume after failure produced a value")
		}
	}
	if steps != 2 {
		t.Errorf("producer ran %d steps after failing, expect 2", steps)
	}
}

func TestPanickingProducer(t *testing.T) {
	g := New(func() (int, bool, error) {
		panic("boom")
	})

	if g.Next() {
		t.Error("panicking resume produced a value")
	}
	if g.Status() != Failed {
		t.Errorf("wrong status: got %s, expect %s", g.Status(), Failed)
	}

	var perr *PanicError
	if !errors.As(g.Err(), &perr) {
		t.Fatalf("error is not a *PanicError: %v", g.Err())
	}
	if perr.Value() != "boom" {
		t.Errorf("wrong panic value: got %v, expect boom", perr.Value())
	}
	if len(perr.Stack()) == 0 {
		t.Error("panic error carries no stack trace")
	}
}

func TestPanickingProducerUnwrap(t *testing.T) {
	cause := errors.New("cause")
	g := New(func() (int, bool, error) {
		panic(cause)
	})

	g.Next()
	if !errors.Is(g.Err(), cause) {
		t.Errorf("panic cause not reachable through Unwrap: %v", g.Err())
	}
}

func TestValuePanicsWhenExhausted(t *testing.T) {
	assertPanics := func(name string, g Generator[int]) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: Value did not panic", name)
			}
		}()
		g.Value()
	}

	assertPanics("empty", Empty[int]())
	assertPanics("not started", Count(1, 5))

	g := Count(1, 2)
	for g.Next() {
	}
	assertPanics("completed", g)
}

func TestReentrantResumePanics(t *testing.T) {
	var g Generator[int]
	g = New(func() (int, bool, error) {
		g.Next()
		return 0, false, nil
	})

	defer func() {
		if recover() == nil {
			t.Error("reentrant resume did not panic")
		}
		if g.Status() == Failed {
			t.Error("contract violation was recorded as a producer failure")
		}
	}()
	g.Next()
}

func TestStop(t *testing.T) {
	steps := 0
	released := 0
	g := NewWithRelease(func() (int, bool, error) {
		steps++
		return steps, true, nil
	}, func() {
		released++
	})

	if !g.Next() {
		t.Fatal("first resume did not produce a value")
	}
	g.Stop()

	if !g.Done() {
		t.Error("stopped generator not done")
	}
	if g.Status() != Completed {
		t.Errorf("wrong status after stop: got %s, expect %s", g.Status(), Completed)
	}
	if g.Next() {
		t.Error("resume after stop produced a value")
	}
	if steps != 1 {
		t.Errorf("producer ran %d steps after stop, expect 1", steps)
	}

	g.Stop() // idempotent
	if released != 1 {
		t.Errorf("release hook ran %d times, expect once", released)
	}
}

func TestReleaseOnCompletion(t *testing.T) {
	released := 0
	g := NewWithRelease(func() (int, bool, error) {
		return 0, false, nil
	}, func() {
		released++
	})

	g.Next()
	g.Stop()
	if released != 1 {
		t.Errorf("release hook ran %d times, expect once", released)
	}
}

func TestNewWithReleaseNilStep(t *testing.T) {
	released := 0
	g := NewWithRelease[int](nil, func() { released++ })

	if !g.Done() {
		t.Error("generator with nil step is not done")
	}
	if released != 1 {
		t.Errorf("release hook ran %d times, expect once", released)
	}
}

func TestStatusString(t *testing.T) {
	for status, expect := range map[Status]string{
		NotStarted: "NotStarted",
		Suspended:  "Suspended",
		Completed:  "Completed",
		Failed:     "Failed",
		Status(42): "Unknown",
	} {
		if got := status.String(); got != expect {
			t.Errorf("wrong string for status %d: got %s, expect %s", status, got, expect)
		}
	}
}
