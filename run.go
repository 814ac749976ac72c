package generator

// Run drains g, calling f for each value that the producer yields, and
// returns the error that failed the generator, if any.
//
// The generator is run to completion, but f might panic in which case we
// don't want to leave the producer holding resources, so the generator is
// stopped before the panic propagates.
func Run[T any](g Generator[T], f func(T)) error {
	defer func() {
		if !g.Done() {
			g.Stop()
		}
	}()

	for g.Next() {
		f(g.Value())
	}
	return g.Err()
}

// Collect drains g into a slice, preserving production order. If the
// producer fails midway, Collect returns the values produced before the
// failure along with the error.
func Collect[T any](g Generator[T]) ([]T, error) {
	var values []T
	err := Run(g, func(v T) {
		values = append(values, v)
	})
	return values, err
}
