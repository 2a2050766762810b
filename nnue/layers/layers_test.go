package layers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineTransformPaddedInputDimensions(t *testing.T) {
	prev := NewInputSlice(10)
	a := NewAffineTransform(prev, 4)

	assert.Equal(t, 32, a.PaddedInputDimensions, "10 rounds up to the 32-wide SIMD padding")
	assert.Equal(t, 4, a.OutputDimensions())
	assert.Len(t, a.Biases, 4)
	assert.Len(t, a.Weights, 4*32)
}

func TestAffineTransformPropagateDotProductPlusBias(t *testing.T) {
	prev := NewInputSlice(2)
	a := NewAffineTransform(prev, 1)
	a.PaddedInputDimensions = 2
	a.Weights = []int8{2, 3}
	a.Biases = []int32{10}

	input := []uint8{4, 5}
	output := make([]int32, 1)
	a.Propagate(input, output)

	assert.EqualValues(t, 2*4+3*5+10, output[0])
}

func TestAffineTransformParameterRoundTrip(t *testing.T) {
	prev := NewInputSlice(2)
	a := NewAffineTransform(prev, 2)
	a.PaddedInputDimensions = 2
	a.Weights = []int8{1, -2, 3, -4}
	a.Biases = []int32{100, -200}

	var buf bytes.Buffer
	require.NoError(t, a.WriteParameters(&buf))

	roundTrip := NewAffineTransform(prev, 2)
	roundTrip.PaddedInputDimensions = 2
	roundTrip.Weights = make([]int8, 2*2)
	require.NoError(t, roundTrip.ReadParameters(&buf))

	assert.Equal(t, a.Biases, roundTrip.Biases)
	assert.Equal(t, a.Weights, roundTrip.Weights)
}

func TestClippedReLUClampsToRange(t *testing.T) {
	prev := NewInputSlice(1)
	relu := NewClippedReLU(NewAffineTransform(prev, 3))

	input := []int32{-64, 64, 1 << 20}
	output := make([]uint8, 3)
	relu.Propagate(input, output)

	assert.Equal(t, uint8(0), output[0], "negative input clamps to zero")
	assert.Equal(t, uint8(1), output[1], "64 >> WeightScaleBits(6) == 1")
	assert.Equal(t, uint8(127), output[2], "large input saturates at 127")
}

func TestHashValueChainsThroughLayerTree(t *testing.T) {
	inputSlice := NewInputSlice(8)
	fc0 := NewAffineTransform(inputSlice, 4)
	ac0 := NewClippedReLU[*AffineTransform[InputSlice]](fc0)

	assert.NotEqual(t, inputSlice.HashValue(), fc0.HashValue())
	assert.NotEqual(t, fc0.HashValue(), ac0.HashValue())
}

func TestSumAddsLayersElementwise(t *testing.T) {
	prev := NewInputSlice(1)
	a := NewAffineTransform(prev, 2)
	b := NewAffineTransform(prev, 2)
	s := NewSum(a, b)

	output := make([]int32, 2)
	s.Add([][]int32{{1, 2}, {10, 20}}, output)

	assert.Equal(t, []int32{11, 22}, output)
}
