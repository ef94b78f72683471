// Package rng supplies the pseudo-random engine shared by simulation code.
//
// What:
//
//   - Source wraps a deterministic math/rand/v2 PCG engine together with the
//     seed it was started from.
//   - New(fixedSeed) starts from DefaultSeed when fixedSeed is true
//     (reproducible runs), and from a fresh nondeterministic seed otherwise.
//   - Shared(fixedSeed) returns the single process-wide Source, created on
//     first use.
//   - Derive(stream) splits off an independent deterministic substream.
//
// Prefer creating one Source at process start and passing it to whatever needs
// randomness; tests then inject NewWithSeed(...) directly. Shared exists for
// code that cannot be threaded through.
//
// No distribution helpers are provided: callers draw from Rand() or Uint64()
// and shape the values themselves.
//
// Concurrency:
//
//   - Source is NOT goroutine-safe. Do not share one across goroutines without
//     external locking; give each worker its own Derive'd stream instead.
//   - Shared creates its instance exactly once (sync.Once), but draws from the
//     returned Source are not synchronized.
package rng
