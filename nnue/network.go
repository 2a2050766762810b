package nnue

import (
	"fmt"
	"io"

	"github.com/nnuekit/nnue/nnue/layers"
)

// l1Dims and l2Dims are the classic architecture's hidden widths: 32
// then 32, followed by a single output.
const (
	l1Dims = 32
	l2Dims = 32
)

// Network is the dense layer stack consuming the feature transformer's
// 2*H-wide ClippedReLU output: an affine layer to 32, ClippedReLU, affine
// to 32, ClippedReLU, affine to 1. This is the classic single-network
// HalfKP-256x2-32-32-1 shape, not the teacher's modern dual-network,
// multi-bucket architecture.
type Network struct {
	inputSlice layers.InputSlice
	fc0        *layers.AffineTransform[layers.InputSlice]
	ac0        layers.ClippedReLU[*layers.AffineTransform[layers.InputSlice]]
	fc1        *layers.AffineTransform[layers.ClippedReLU[*layers.AffineTransform[layers.InputSlice]]]
	ac1        layers.ClippedReLU[*layers.AffineTransform[layers.ClippedReLU[*layers.AffineTransform[layers.InputSlice]]]]
	fc2        *layers.AffineTransform[layers.ClippedReLU[*layers.AffineTransform[layers.ClippedReLU[*layers.AffineTransform[layers.InputSlice]]]]]
}

// NewNetwork builds the (uninitialized) layer stack on top of a feature
// transformer output of width inputDims (2*H).
func NewNetwork(inputDims int) *Network {
	n := &Network{inputSlice: layers.NewInputSlice(inputDims)}
	n.fc0 = layers.NewAffineTransform(n.inputSlice, l1Dims)
	n.ac0 = layers.NewClippedReLU(n.fc0)
	n.fc1 = layers.NewAffineTransform(n.ac0, l2Dims)
	n.ac1 = layers.NewClippedReLU(n.fc1)
	n.fc2 = layers.NewAffineTransform(n.ac1, 1)
	return n
}

// HashValue chains every layer's contribution, rooted at the input slice,
// the dense-layer-stack term of the overall architecture hash.
func (n *Network) HashValue() uint32 {
	return n.fc2.HashValue()
}

// ReadParameters loads each layer's parameters in leaf-to-root order:
// fc0, fc1, fc2. ClippedReLU layers carry no parameters of their own.
func (n *Network) ReadParameters(r io.Reader) error {
	if err := n.fc0.ReadParameters(r); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := n.fc1.ReadParameters(r); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := n.fc2.ReadParameters(r); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	return nil
}

// WriteParameters writes each layer's parameters in the same order
// ReadParameters expects them back in.
func (n *Network) WriteParameters(w io.Writer) error {
	if err := n.fc0.WriteParameters(w); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := n.fc1.WriteParameters(w); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := n.fc2.WriteParameters(w); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	return nil
}

// Propagate runs input (the feature transformer's 2*H-wide ClippedReLU
// output) through the full layer stack and returns the single raw output
// value, before OutputScale division.
func (n *Network) Propagate(input []uint8) int32 {
	out0 := make([]int32, l1Dims)
	n.fc0.Propagate(input, out0)

	relu0 := make([]uint8, l1Dims)
	n.ac0.Propagate(out0, relu0)

	out1 := make([]int32, l2Dims)
	n.fc1.Propagate(relu0, out1)

	relu1 := make([]uint8, l2Dims)
	n.ac1.Propagate(out1, relu1)

	out2 := make([]int32, 1)
	n.fc2.Propagate(relu1, out2)

	return out2[0]
}
