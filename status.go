package generator

// Status describes where a generator instance is in its lifecycle.
//
// An instance starts in NotStarted, enters Suspended each time its producer
// yields a value, and settles in one of the two terminal statuses:
// Completed when the producer runs out of values or the instance is
// stopped, Failed when a producer step returns an error or panics.
type Status uint8

const (
	NotStarted Status = iota
	Suspended
	Completed
	Failed
)

// Terminal reports whether the status is one from which no further value
// will ever be produced.
func (s Status) Terminal() bool {
	return s == Completed || s == Failed
}

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Suspended:
		return "Suspended"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
