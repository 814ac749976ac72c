// Package generator implements suspendable value generators: producers of
// a sequence that pause at each yield point, hand a value to the consumer,
// and resume exactly where they left off on the next request.
//
// Each generator owns an execution frame, a heap-allocated record of the
// producer's paused state. The frame is allocated once when the generator
// is created and released exactly once when the generator reaches a
// terminal state or is stopped. Because the paused state lives in owned
// data rather than on a call stack, any number of instances of the same
// producer definition can be alive and advancing independently.
//
// A producer is expressed as a StepFunc, a function whose captured
// variables are the producer's locals and whose every invocation runs the
// producer to its next yield point. Yield-style producer functions can be
// adapted with FromSeq instead.
//
// Generators are cooperative and single-threaded: a producer advances only
// when Next is called on its handle, and a handle must be confined to one
// goroutine at a time. The package provides no synchronization of its own.
package generator
