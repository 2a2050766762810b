package common

// WeightScaleBits is the fixed-point shift applied when an affine layer's
// accumulated int32 dot product is scaled back down before the next
// ClippedReLU. It is shared by nnue/layers (which applies it) and package
// nnue (which re-exports it), so it lives in the dependency-free common
// package rather than either.
const WeightScaleBits = 6

// ClippedReLUMax is the saturation ceiling a ClippedReLU layer clamps to;
// the floor is always zero.
const ClippedReLUMax = 127
