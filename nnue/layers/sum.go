package layers

// Sum adds the outputs of several equally-shaped int32 layers elementwise.
// It is not used by the classic single-network architecture this package
// targets, but is kept as a composable primitive for layer trees that do
// branch and rejoin (a layer stack with a skip connection, for instance),
// mirroring the teacher's own Sum layer.
type Sum[P Prev] struct {
	Layers []P
}

// NewSum wraps a set of same-shaped layers for elementwise addition.
func NewSum[P Prev](layers ...P) Sum[P] {
	return Sum[P]{Layers: layers}
}

// OutputDimensions returns the first layer's output width; callers are
// responsible for only summing equally-shaped layers.
func (s Sum[P]) OutputDimensions() int {
	if len(s.Layers) == 0 {
		return 0
	}
	return s.Layers[0].OutputDimensions()
}

// HashValue XOR-folds every summed layer's hash.
func (s Sum[P]) HashValue() uint32 {
	h := uint32(0x3DEC5700)
	for _, l := range s.Layers {
		h ^= l.HashValue()
	}
	return h
}

// Add sums the given per-layer outputs elementwise into output.
func (s Sum[P]) Add(outputs [][]int32, output []int32) {
	for i := range output {
		var sum int32
		for _, o := range outputs {
			sum += o[i]
		}
		output[i] = sum
	}
}
