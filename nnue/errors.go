package nnue

import "errors"

// Sentinel errors for the parameter loader and the evaluator, checked
// with errors.Is. Each wraps additional context with fmt.Errorf at the
// point it is returned.
var (
	// ErrArchMismatch is returned when a parameter file's composed
	// architecture hash does not match the network it is being loaded
	// into.
	ErrArchMismatch = errors.New("nnue: architecture hash mismatch")

	// ErrTruncated is returned when a parameter file ends before every
	// section has been read.
	ErrTruncated = errors.New("nnue: truncated parameter file")

	// ErrBufferUndersized names a caller-supplied buffer that is too
	// small for the operation writing into it. No function in this
	// package returns it: Transform and Propagate allocate their own
	// buffers.
	ErrBufferUndersized = errors.New("nnue: buffer undersized")

	// ErrInvalidPosition names Position collaborator state the evaluator
	// cannot act on (for example, a missing king). No function in this
	// package returns it: Evaluate has no error result and does not
	// validate the position.
	ErrInvalidPosition = errors.New("nnue: invalid position")
)
