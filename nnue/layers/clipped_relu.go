package layers

import "github.com/nnuekit/nnue/nnue/common"

// ClippedReLU rescales its input layer's accumulated int32 outputs down
// by WeightScaleBits and clamps to [0, ClippedReLUMax], producing the
// uint8 activations the next AffineTransform consumes.
type ClippedReLU[P Prev] struct {
	Prev P
}

// NewClippedReLU wraps prev in a clipped-ReLU activation.
func NewClippedReLU[P Prev](prev P) ClippedReLU[P] {
	return ClippedReLU[P]{Prev: prev}
}

// OutputDimensions matches the wrapped layer's output width; ClippedReLU
// is elementwise and never changes dimensionality.
func (c ClippedReLU[P]) OutputDimensions() int { return c.Prev.OutputDimensions() }

// HashValue chains the fixed 0x538D24C7 seed onto the input layer's hash.
func (c ClippedReLU[P]) HashValue() uint32 { return 0x538D24C7 + c.Prev.HashValue() }

// Propagate writes clamp(input[i]>>WeightScaleBits, 0, ClippedReLUMax)
// into output.
func (c ClippedReLU[P]) Propagate(input []int32, output []uint8) {
	for i, v := range input {
		shifted := v >> common.WeightScaleBits
		switch {
		case shifted < 0:
			output[i] = 0
		case shifted > common.ClippedReLUMax:
			output[i] = common.ClippedReLUMax
		default:
			output[i] = uint8(shifted)
		}
	}
}
