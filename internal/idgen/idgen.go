// Package idgen wraps the UUID generator behind a stubbable function. It
// lives under internal because generator identifiers are opaque strings;
// callers must not rely on their format.
package idgen

import "github.com/google/uuid"

// NewFunc produces new identifiers. Override in tests for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier.
func New() string { return NewFunc() }
