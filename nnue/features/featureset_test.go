package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnuekit/nnue/nnue/position"
)

type fakePosition struct {
	stm     position.Color
	kings   [2]position.Square
	pieces  []fakePiece
	current *position.State
}

type fakePiece struct {
	sq position.Square
	pt position.PieceType
	c  position.Color
}

func (p *fakePosition) SideToMove() position.Color { return p.stm }

func (p *fakePosition) KingSquare(c position.Color) position.Square { return p.kings[c] }

func (p *fakePosition) ForEachPiece(yield func(sq position.Square, pt position.PieceType, c position.Color)) {
	for _, pc := range p.pieces {
		yield(pc.sq, pc.pt, pc.c)
	}
	yield(p.kings[position.White], position.King, position.White)
	yield(p.kings[position.Black], position.King, position.Black)
}

func (p *fakePosition) CurrentState() *position.State { return p.current }

func newFakePosition() *fakePosition {
	return &fakePosition{
		stm:   position.White,
		kings: [2]position.Square{4, 60},
		pieces: []fakePiece{
			{sq: 8, pt: position.Pawn, c: position.White},
			{sq: 51, pt: position.Pawn, c: position.Black},
		},
		current: &position.State{},
	}
}

func TestFeatureSetDimensionsAndHashAreSumAndXOR(t *testing.T) {
	k := NewK()
	p := NewP()
	fs := NewFeatureSet(k, p)

	assert.Equal(t, k.Dimensions()+p.Dimensions(), fs.Dimensions())
	assert.Equal(t, k.HashValue()^p.HashValue(), fs.HashValue())
}

func TestFeatureSetOffsetsSecondComponent(t *testing.T) {
	pos := newFakePosition()
	k := NewK()
	p := NewP()
	fs := NewFeatureSet(k, p)

	var out IndexList
	fs.AppendActiveIndices(pos, position.White, &out)

	require.NotEmpty(t, out.Values)
	assert.Equal(t, 0, out.Values[0], "K contributes index 0 unshifted")
	for _, v := range out.Values[1:] {
		assert.GreaterOrEqual(t, v, k.Dimensions(), "P indices must be offset past K's dimension")
	}
}

func TestHalfKPFriendDimensions(t *testing.T) {
	h := NewHalfKP[Friend]()
	assert.Equal(t, 64*PSEnd, h.Dimensions())
	assert.Equal(t, "HalfKP(Friend)", h.Name())
}

func TestHalfKPActiveIndicesExcludeKings(t *testing.T) {
	pos := newFakePosition()
	h := NewHalfKP[Friend]()

	var out IndexList
	h.AppendActiveIndices(pos, position.White, &out)

	assert.Len(t, out.Values, len(pos.pieces), "kings never produce a HalfKP feature of their own")
	for _, idx := range out.Values {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, h.Dimensions())
	}
}

func TestHalfKPFriendVsEnemyKingMoveTriggersDiffer(t *testing.T) {
	friend := NewHalfKP[Friend]()
	enemy := NewHalfKP[Enemy]()

	dirty := position.DirtyPiece{KingMoved: [2]bool{true, false}}

	assert.True(t, friend.RequiresRefresh(dirty, position.White))
	assert.False(t, friend.RequiresRefresh(dirty, position.Black))

	assert.False(t, enemy.RequiresRefresh(dirty, position.White))
	assert.True(t, enemy.RequiresRefresh(dirty, position.Black))
}

func TestHalfKPChangedIndicesMatchActiveAfterApplyingDelta(t *testing.T) {
	pos := newFakePosition()
	h := NewHalfKP[Friend]()

	dirty := position.DirtyPiece{
		Count: 1,
		Deltas: [position.MaxDirtyPieces]position.PieceDelta{
			{Piece: position.MakePiece(position.White, position.Pawn), From: 8, To: 16},
		},
	}

	var removed, added IndexList
	h.AppendChangedIndices(pos, dirty, position.White, &removed, &added)

	require.Len(t, removed.Values, 1)
	require.Len(t, added.Values, 1)
	assert.NotEqual(t, removed.Values[0], added.Values[0])
}
