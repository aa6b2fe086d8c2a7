// Package backstack provides the navigation history container behind the
// navigator: an ordered LIFO stack of uniquely-keyed records, each wrapping
// an opaque destination.
//
// Core abstractions:
//   - Record: capability contract for a stack entry (stable key + destination)
//   - Entry: the canonical Record implementation, with a minting path that
//     synthesizes fresh keys
//   - BackStack: push/pop/unwind over Records, with derived queries
//     (Top, Len, IsEmpty, IsAtRoot) and top-first iteration
//   - Change: atomic post-mutation snapshot delivered to an OnChange observer
//
// The stack is single-writer: all mutations are expected to come from one
// coordinating navigator. Readers that recompute from Top/Len/Records after
// a mutation always see a consistent snapshot; Version gives reactive
// consumers a cheap monotonic change marker.
package backstack
