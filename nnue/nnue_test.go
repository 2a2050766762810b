package nnue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnuekit/nnue/nnue/features"
	"github.com/nnuekit/nnue/nnue/position"
)

// lcg is a tiny deterministic generator for filling test-only parameter
// arrays with reproducible, non-trivial values, the same role the
// teacher's Network.InitRandom(seed) test helper plays.
type lcg struct{ state uint64 }

func (g *lcg) next() int32 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return int32(int16(g.state >> 48))
}

func newTestEvaluator() (*Evaluator, *features.FeatureSet) {
	fs := features.NewFeatureSet(features.NewHalfKP[features.Friend]())
	ft := NewFeatureTransformer(fs)
	net := NewNetwork(2 * H)

	gen := &lcg{state: 1}
	for i := range ft.Biases {
		ft.Biases[i] = int16(gen.next() % 64)
	}
	for i := range ft.Weights {
		ft.Weights[i] = int16(gen.next() % 16)
	}
	for i := range net.fc0.Biases {
		net.fc0.Biases[i] = gen.next() % 1024
	}
	for i := range net.fc0.Weights {
		net.fc0.Weights[i] = int8(gen.next() % 32)
	}
	for i := range net.fc1.Biases {
		net.fc1.Biases[i] = gen.next() % 1024
	}
	for i := range net.fc1.Weights {
		net.fc1.Weights[i] = int8(gen.next() % 32)
	}
	for i := range net.fc2.Biases {
		net.fc2.Biases[i] = gen.next() % 1024
	}
	for i := range net.fc2.Weights {
		net.fc2.Weights[i] = int8(gen.next() % 32)
	}

	return &Evaluator{FeatureTransformer: ft, Network: net}, fs
}

type testPiece struct {
	sq position.Square
	pt position.PieceType
	c  position.Color
}

type testPosition struct {
	stm    position.Color
	kings  [2]position.Square
	pieces []testPiece
	state  *position.State
}

func (p *testPosition) SideToMove() position.Color { return p.stm }

func (p *testPosition) KingSquare(c position.Color) position.Square { return p.kings[c] }

func (p *testPosition) ForEachPiece(yield func(sq position.Square, pt position.PieceType, c position.Color)) {
	for _, pc := range p.pieces {
		yield(pc.sq, pc.pt, pc.c)
	}
}

func (p *testPosition) CurrentState() *position.State { return p.state }

func newTestPosition() *testPosition {
	return &testPosition{
		stm:   position.White,
		kings: [2]position.Square{4, 60},
		pieces: []testPiece{
			{sq: 8, pt: position.Pawn, c: position.White},
			{sq: 12, pt: position.Pawn, c: position.White},
			{sq: 51, pt: position.Pawn, c: position.Black},
			{sq: 57, pt: position.Knight, c: position.Black},
		},
		state: &position.State{},
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	e, _ := newTestEvaluator()
	pos := newTestPosition()
	pos.state.Acc = *position.NewAccumulator(H)

	first := e.Evaluate(pos)

	pos2 := newTestPosition()
	pos2.state.Acc = *position.NewAccumulator(H)
	second := e.Evaluate(pos2)

	assert.Equal(t, first, second)
}

func TestParameterFileRoundTrip(t *testing.T) {
	e, fs := newTestEvaluator()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, e))

	loadedFT := NewFeatureTransformer(fs)
	loadedNet := NewNetwork(2 * H)
	loaded, err := Load(&buf, loadedFT, loadedNet)
	require.NoError(t, err)

	assert.Equal(t, e.FeatureTransformer.Biases, loaded.FeatureTransformer.Biases)
	assert.Equal(t, e.FeatureTransformer.Weights, loaded.FeatureTransformer.Weights)

	pos := newTestPosition()
	pos.state.Acc = *position.NewAccumulator(H)
	want := e.Evaluate(pos)

	pos2 := newTestPosition()
	pos2.state.Acc = *position.NewAccumulator(H)
	got := loaded.Evaluate(pos2)

	assert.Equal(t, want, got)
}

func TestLoadRejectsArchitectureMismatch(t *testing.T) {
	e, fs := newTestEvaluator()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, e))

	otherFS := features.NewFeatureSet(features.NewHalfKP[features.Enemy]())
	mismatchedFT := NewFeatureTransformer(otherFS)
	net := NewNetwork(2 * H)

	_, err := Load(&buf, mismatchedFT, net)
	require.ErrorIs(t, err, ErrArchMismatch)

	_ = fs
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	e, fs := newTestEvaluator()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, e))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	loadedFT := NewFeatureTransformer(fs)
	loadedNet := NewNetwork(2 * H)

	_, err := Load(truncated, loadedFT, loadedNet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestIncrementalUpdateMatchesFullRefresh(t *testing.T) {
	e, _ := newTestEvaluator()
	ft := e.FeatureTransformer

	parentPos := newTestPosition()
	parentPos.state.Acc = *position.NewAccumulator(H)
	ft.EnsureComputed(parentPos, parentPos.state, position.White)
	ft.EnsureComputed(parentPos, parentPos.state, position.Black)

	childPos := newTestPosition()
	childPos.pieces[0].sq = 16 // advance the pawn on a2 (sq 8) to a3 (sq 16)
	childState := &position.State{
		Previous: parentPos.state,
		Acc:      *position.NewAccumulator(H),
		Dirty: position.DirtyPiece{
			Count: 1,
			Deltas: [position.MaxDirtyPieces]position.PieceDelta{
				{Piece: position.MakePiece(position.White, position.Pawn), From: 8, To: 16},
			},
		},
	}
	childPos.state = childState

	ft.EnsureComputed(childPos, childState, position.White)
	ft.EnsureComputed(childPos, childState, position.Black)

	freshState := &position.State{Acc: *position.NewAccumulator(H)}
	freshPos := &testPosition{stm: childPos.stm, kings: childPos.kings, pieces: childPos.pieces, state: freshState}
	ft.RefreshAccumulator(freshPos, freshState, position.White)
	ft.RefreshAccumulator(freshPos, freshState, position.Black)

	assert.Equal(t, freshState.Acc.Half[position.White], childState.Acc.Half[position.White])
	assert.Equal(t, freshState.Acc.Half[position.Black], childState.Acc.Half[position.Black])
}
