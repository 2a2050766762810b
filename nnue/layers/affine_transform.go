package layers

import (
	"fmt"
	"io"

	"github.com/nnuekit/nnue/nnue/common"
)

// Prev is the minimal contract an AffineTransform's input layer must
// satisfy: enough to size the weight matrix and chain the architecture
// hash, without fixing what type of values it propagates.
type Prev interface {
	OutputDimensions() int
	HashValue() uint32
}

// AffineTransform is a fully connected layer: Weights is an
// OutputDimensions x PaddedInputDimensions matrix of int8 quantized
// weights, Biases is one int32 per output. Generics fix the input layer's
// type at compile time the way the teacher's AffineTransform is built
// against a concrete PreviousLayer type; Propagate itself takes a plain
// []uint8 and does not check its length against the input layer's width.
type AffineTransform[P Prev] struct {
	Prev P

	OutputDims            int
	PaddedInputDimensions int

	Biases  []int32
	Weights []int8
}

// NewAffineTransform builds an (uninitialized) affine layer on top of
// prev, producing outputDims outputs.
func NewAffineTransform[P Prev](prev P, outputDims int) *AffineTransform[P] {
	padded := common.CeilToMultiple(prev.OutputDimensions(), common.MaxSimdWidth)
	return &AffineTransform[P]{
		Prev:                  prev,
		OutputDims:            outputDims,
		PaddedInputDimensions: padded,
		Biases:                make([]int32, outputDims),
		Weights:               make([]int8, outputDims*padded),
	}
}

// OutputDimensions returns the number of outputs this layer produces.
func (a *AffineTransform[P]) OutputDimensions() int { return a.OutputDims }

// HashValue chains this layer's contribution onto its input's hash, the
// same 0xCC03DAE4 seed the teacher's AffineTransformHashValue uses.
func (a *AffineTransform[P]) HashValue() uint32 {
	h := uint32(0xCC03DAE4)
	h += uint32(a.OutputDims)
	h ^= a.Prev.HashValue() >> 1
	h ^= a.Prev.HashValue() << 31
	return h
}

// ReadParameters loads biases then weights, in that order, both raw
// little-endian, matching the parameter file's per-layer section layout.
func (a *AffineTransform[P]) ReadParameters(r io.Reader) error {
	if err := common.ReadLittleEndianSlice(r, a.Biases); err != nil {
		return fmt.Errorf("affine transform: read biases: %w", err)
	}
	if err := common.ReadLittleEndianSlice(r, a.Weights); err != nil {
		return fmt.Errorf("affine transform: read weights: %w", err)
	}
	return nil
}

// WriteParameters writes biases then weights, mirroring ReadParameters.
func (a *AffineTransform[P]) WriteParameters(w io.Writer) error {
	if err := common.WriteLittleEndianSlice(w, a.Biases); err != nil {
		return fmt.Errorf("affine transform: write biases: %w", err)
	}
	if err := common.WriteLittleEndianSlice(w, a.Weights); err != nil {
		return fmt.Errorf("affine transform: write weights: %w", err)
	}
	return nil
}

// Propagate computes the matrix-vector product plus bias for each output.
// input must already be padded to PaddedInputDimensions (callers pad with
// zero bytes past the previous layer's real output width).
func (a *AffineTransform[P]) Propagate(input []uint8, output []int32) {
	for o := 0; o < a.OutputDims; o++ {
		sum := a.Biases[o]
		row := a.Weights[o*a.PaddedInputDimensions : (o+1)*a.PaddedInputDimensions]
		for i, w := range row {
			if i >= len(input) {
				break
			}
			sum += int32(w) * int32(input[i])
		}
		output[o] = sum
	}
}
