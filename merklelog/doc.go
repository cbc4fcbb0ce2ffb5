// Package merklelog implements an append-only Merkle Mountain Range
// accumulator over a pluggable hasher.Hasher and kvstore.Store. A Log binds
// one MMR namespace; appends commit atomically and proofs can be verified
// either against the live store or statelessly against a self-contained
// Proof value.
package merklelog
