// Package nnue implements the classic HalfKP-256x2-32-32-1 NNUE evaluator:
// the feature transformer and accumulator, the dense layer stack, the
// parameter file format, and the Evaluate facade. It depends only on
// package position for its collaborator contract, nnue/features for
// feature indexing, nnue/layers for the dense layer stack, and
// nnue/common for shared constants and little-endian I/O.
package nnue

import "github.com/nnuekit/nnue/nnue/common"

// H is the per-perspective feature transformer output width: the classic
// architecture's accumulator half-dimension.
const H = 256

// Version identifies the parameter file format this package reads and
// writes. It has no relation to any upstream network file format; this
// repository's parameter files are not interchangeable with Stockfish's.
const Version = 0x00000001

// WeightScaleBits is re-exported from common for callers that only import
// package nnue.
const WeightScaleBits = common.WeightScaleBits

// OutputScale divides the final dense layer's raw int32 output down to a
// centipawn score.
const OutputScale = 16
