// Package random provides the seedable random source consumed by generators.
//
// A Source is a stateful, deterministic stream of variates: for a fixed seed and a
// fixed sequence of calls it always yields the same values. The concrete Rand type
// is backed by a PCG or MT19937 bit source, and every continuous distribution is
// drawn through gonum's distuv types bound to that same bit source, so all draws of
// one sampling pass advance a single state in call order.
//
// A Rand is not safe for concurrent use. Give each goroutine its own Rand; Derive
// turns one configured seed into independent per-stream seeds.
package random
