package nnue

import (
	"fmt"
	"io"

	"github.com/nnuekit/nnue/nnue/common"
	"github.com/nnuekit/nnue/nnue/features"
	"github.com/nnuekit/nnue/nnue/position"
)

// FeatureTransformer maps a position's active feature set, for one
// perspective, into a dense H-wide int16 activation: Biases is the
// per-output bias row, Weights is a Dimensions x H matrix indexed by
// feature index.
type FeatureTransformer struct {
	Features *features.FeatureSet

	Biases  []int16
	Weights []int16
}

// NewFeatureTransformer allocates a feature transformer over fs with
// zeroed parameters, ready for ReadParameters to fill in.
func NewFeatureTransformer(fs *features.FeatureSet) *FeatureTransformer {
	return &FeatureTransformer{
		Features: fs,
		Biases:   make([]int16, H),
		Weights:  make([]int16, fs.Dimensions()*H),
	}
}

// HashValue chains the feature set's composed hash onto a fixed seed, the
// feature-transformer term of the overall architecture hash.
func (ft *FeatureTransformer) HashValue() uint32 {
	return 0x5D69D7B3 ^ ft.Features.HashValue()
}

// ReadParameters loads the bias row then the full weight matrix, both raw
// little-endian int16, matching the parameter file's feature-transformer
// section.
func (ft *FeatureTransformer) ReadParameters(r io.Reader) error {
	if err := common.ReadLittleEndianSlice(r, ft.Biases); err != nil {
		return fmt.Errorf("feature transformer: read biases: %w", err)
	}
	if err := common.ReadLittleEndianSlice(r, ft.Weights); err != nil {
		return fmt.Errorf("feature transformer: read weights: %w", err)
	}
	return nil
}

// WriteParameters writes the bias row then the weight matrix, mirroring
// ReadParameters.
func (ft *FeatureTransformer) WriteParameters(w io.Writer) error {
	if err := common.WriteLittleEndianSlice(w, ft.Biases); err != nil {
		return fmt.Errorf("feature transformer: write biases: %w", err)
	}
	if err := common.WriteLittleEndianSlice(w, ft.Weights); err != nil {
		return fmt.Errorf("feature transformer: write weights: %w", err)
	}
	return nil
}

// featureRow returns the weight row for feature index idx.
func (ft *FeatureTransformer) featureRow(idx int) []int16 {
	return ft.Weights[idx*H : (idx+1)*H]
}

// RefreshAccumulator fully recomputes one perspective's half from the
// current board, used when that perspective's king moved this ply (or
// there is no prior ply to update incrementally from).
func (ft *FeatureTransformer) RefreshAccumulator(pos position.Position, state *position.State, perspective position.Color) {
	half := state.Acc.Half[perspective]
	copy(half, ft.Biases)

	var active features.IndexList
	ft.Features.AppendActiveIndices(pos, perspective, &active)
	for _, idx := range active.Values {
		row := ft.featureRow(idx)
		for i, w := range row {
			half[i] += w
		}
	}
	state.Acc.Computed[perspective] = true
}

// UpdateAccumulatorIncremental derives one perspective's half from its
// parent state's already-computed half plus this ply's feature deltas.
// Callers must only call this when state.Previous is non-nil, its half
// is computed, and the feature set does not require a refresh for this
// perspective on this ply.
func (ft *FeatureTransformer) UpdateAccumulatorIncremental(pos position.Position, state *position.State, perspective position.Color) {
	half := state.Acc.Half[perspective]
	copy(half, state.Previous.Acc.Half[perspective])

	var removed, added features.IndexList
	ft.Features.AppendChangedIndices(pos, state.Dirty, perspective, &removed, &added)
	for _, idx := range removed.Values {
		row := ft.featureRow(idx)
		for i, w := range row {
			half[i] -= w
		}
	}
	for _, idx := range added.Values {
		row := ft.featureRow(idx)
		for i, w := range row {
			half[i] += w
		}
	}
	state.Acc.Computed[perspective] = true
}

// EnsureComputed computes state's half for perspective if it is not
// already, refreshing from scratch when required and incrementally
// updating from the parent ply otherwise.
func (ft *FeatureTransformer) EnsureComputed(pos position.Position, state *position.State, perspective position.Color) {
	if state.Acc.Computed[perspective] {
		return
	}
	if state.Previous == nil || !state.Previous.Acc.Computed[perspective] || ft.Features.RequiresRefresh(state.Dirty, perspective) {
		ft.RefreshAccumulator(pos, state, perspective)
		return
	}
	ft.UpdateAccumulatorIncremental(pos, state, perspective)
}

// Transform produces the 2*H-wide ClippedReLU'd input to the dense layer
// stack: the side-to-move's half first, then the opponent's, each value
// clamped to [0, ClippedReLUMax].
func (ft *FeatureTransformer) Transform(pos position.Position, state *position.State) []uint8 {
	stm := pos.SideToMove()
	ft.EnsureComputed(pos, state, stm)
	ft.EnsureComputed(pos, state, stm.Other())

	out := make([]uint8, 2*H)
	writeClamped(out[:H], state.Acc.Half[stm])
	writeClamped(out[H:], state.Acc.Half[stm.Other()])
	return out
}

func writeClamped(dst []uint8, src []int16) {
	for i, v := range src {
		switch {
		case v < 0:
			dst[i] = 0
		case v > common.ClippedReLUMax:
			dst[i] = common.ClippedReLUMax
		default:
			dst[i] = uint8(v)
		}
	}
}
