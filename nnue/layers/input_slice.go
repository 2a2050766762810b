// Package layers implements the dense quantized layers a network's layer
// stack is built from: InputSlice, AffineTransform, ClippedReLU, and Sum.
// They compose as a static tree of plain structs wired together by the
// caller, the same way the teacher's layers package is assembled by hand
// inside a network's constructor rather than discovered by reflection.
package layers

// InputSlice marks the root of a layer tree: the feature transformer's
// clipped-activation output, taken as-is. It carries no weights of its
// own; its only job is to report the dimension downstream layers must
// size themselves against.
type InputSlice struct {
	dimensions int
}

// NewInputSlice wraps a feature transformer output of the given width.
func NewInputSlice(dimensions int) InputSlice {
	return InputSlice{dimensions: dimensions}
}

// OutputDimensions returns the slice width.
func (s InputSlice) OutputDimensions() int { return s.dimensions }

// HashValue contributes a fixed seed so that every layer tree rooted at
// the same feature-transformer width hashes identically.
func (s InputSlice) HashValue() uint32 { return 0xEC42E90D }

// Propagate returns input unchanged; InputSlice performs no computation.
func (s InputSlice) Propagate(input []uint8) []uint8 { return input }
