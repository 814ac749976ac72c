package generator

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a panic raised by producer logic so the failure can be
// reported through Err instead of tearing down the process. If the producer
// panicked with an error value, Unwrap exposes it to errors.Is and
// errors.As.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("generator: producer panicked: %v", p.value)
}

// Value returns the value the producer panicked with.
func (p *PanicError) Value() any { return p.value }

// Stack returns the stack trace captured at the panic site.
func (p *PanicError) Stack() []byte { return p.stack }

func (p *PanicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}
