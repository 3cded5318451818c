// Package pure memoizes pure functions in a bounded, concurrency-safe table.
//
// Tableize asks one question of the function it wraps: is it referentially
// transparent? If so, its result for a given argument tuple can be looked up
// instead of recomputed, across calls and across goroutines.
//
// Arguments are keyed by value when comparable, or by their String() form when
// they implement fmt.Stringer. Anything else panics with ErrUnhashable.
//
// The table keeps two generations. When the head generation reaches its size
// bound the older one is dropped and a fresh head starts, so memory stays within
// roughly twice the bound.
package pure
