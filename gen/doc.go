// Package gen builds random-value generators out of primitive distributions
// and combinators.
//
// A *Generator[T] is an immutable description of how to draw a T from a
// random.Source. Nothing is drawn when generators are assembled; drawing
// happens in Sample, which walks the generator graph with one source and one
// fresh evaluation cache.
//
// The cache is keyed by generator identity. A generator instance reachable
// through several paths of one graph (a diamond) is evaluated once per Sample
// call, and every path sees the same value:
//
//	area := gen.Normal(40, 10)
//	height := gen.Uniform(10, 100)
//	row := gen.Tupled3(area, height, gen.Mul(area, height))
//
// Here the third element is always the product of the first two. Clone makes
// an identity-distinct twin when independent draws are wanted instead, and
// Repeat is built on it.
//
// Go has no generic methods, so combinators that change the value type (Map,
// Bind, the Lift family) are package functions. Operators are package
// functions too, constrained to the types that support them.
package gen
