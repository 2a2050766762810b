// Package nnue is a from-scratch reimplementation of a classic single-
// network NNUE evaluator: HalfKP feature indexing, an incrementally
// updated accumulator, a 256x2-32-32-1 dense layer stack, and a
// versioned, architecture-hashed parameter file format.
//
// It does not implement a chess engine: search, move generation, and the
// UCI protocol live outside this module. Callers provide a collaborator
// satisfying the position.Position interface; package chess is a
// reference implementation sufficient to drive Evaluate end to end.
package nnue
