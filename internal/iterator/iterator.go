// Package iterator provides synchronous, forwards-only traversal over enumerable collections,
// allowing for early termination.
package iterator

// Accept is a predicate that receives a value from a collection
// and returns true if more values are desired.
type Accept[T any] func(T) bool

// Collection is a source for iterable values.
type Collection[T any] interface {
	Each(Accept[T])
}

// Slice is a wrapper type for slices.
type Slice[T any] []T

func (slice Slice[T]) Each(accept Accept[T]) {
	for _, value := range slice {
		if !accept(value) {
			return
		}
	}
}

// Drain returns a slice of the values in the collection.
func Drain[T any](coll Collection[T]) []T {
	values := []T{}
	coll.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Reduce fully reduces the collection by adding the values sequentially to the given init value.
func Reduce[T any, U any](coll Collection[T], add func(U, T) U, init U) U {
	result := init
	coll.Each(func(value T) bool {
		result = add(result, value)
		return true
	})
	return result
}

// Map applies fn to each value of the collection in order, stopping at the first error.
func Map[T any, U any](coll Collection[T], fn func(T) (U, error)) (results []U, err error) {
	results = []U{}
	coll.Each(func(value T) bool {
		var result U
		result, err = fn(value)
		if err != nil {
			return false
		}
		results = append(results, result)
		return true
	})
	if err != nil {
		results = nil
	}
	return
}

// Count returns the number of values in the collection.
func Count[T any](coll Collection[T]) int {
	return Reduce(coll, func(n int, _ T) int { return n + 1 }, 0)
}

// Spaced returns n positions evenly spaced across [0,1], inclusive of both ends.
// A single position is 0.
func Spaced(n int) Collection[float64] {
	switch {
	case n <= 0:
		return Slice[float64]{}
	case n == 1:
		return Slice[float64]{0}
	}
	positions := make(Slice[float64], n)
	for i := range positions {
		positions[i] = float64(i) / float64(n-1)
	}
	return positions
}
