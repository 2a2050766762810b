package features

import "github.com/nnuekit/nnue/nnue/position"

// FeatureSet concatenates several indexers into one feature space: each
// component's indices are offset by the cumulative dimension of the
// components before it, hashes are XOR-folded, and a perspective's
// refresh trigger is the OR of every component's trigger (a king move
// that forces one component to refresh forces the whole perspective to
// refresh, since the transformer refreshes a perspective's half in one
// pass).
type FeatureSet struct {
	indexers []Indexer
	offsets  []int
	total    int
	hash     uint32
}

// NewFeatureSet composes the given indexers in order.
func NewFeatureSet(indexers ...Indexer) *FeatureSet {
	fs := &FeatureSet{indexers: indexers, offsets: make([]int, len(indexers))}
	offset := 0
	hash := uint32(0)
	for i, ix := range indexers {
		fs.offsets[i] = offset
		offset += ix.Dimensions()
		hash ^= ix.HashValue()
	}
	fs.total = offset
	fs.hash = hash
	return fs
}

// Dimensions returns the total feature-space dimension.
func (fs *FeatureSet) Dimensions() int { return fs.total }

// HashValue returns the XOR-fold of every component's hash contribution,
// used as one term of the composed architecture hash.
func (fs *FeatureSet) HashValue() uint32 { return fs.hash }

// RequiresRefresh reports whether any component indexer requires a full
// recompute for this perspective, given the ply's dirty-piece record.
func (fs *FeatureSet) RequiresRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	for _, ix := range fs.indexers {
		if ix.RequiresRefresh(dirty, perspective) {
			return true
		}
	}
	return false
}

// AppendActiveIndices fills out with every active feature index across
// all components, each offset into the composed space.
func (fs *FeatureSet) AppendActiveIndices(pos position.Position, perspective position.Color, out *IndexList) {
	var scratch IndexList
	for i, ix := range fs.indexers {
		scratch.Reset()
		ix.AppendActiveIndices(pos, perspective, &scratch)
		offset := fs.offsets[i]
		for _, v := range scratch.Values {
			out.Add(v + offset)
		}
	}
}

// AppendChangedIndices fills removed/added with the differential feature
// indices across all components, each offset into the composed space.
func (fs *FeatureSet) AppendChangedIndices(pos position.Position, dirty position.DirtyPiece, perspective position.Color, removed, added *IndexList) {
	var scratchRemoved, scratchAdded IndexList
	for i, ix := range fs.indexers {
		scratchRemoved.Reset()
		scratchAdded.Reset()
		ix.AppendChangedIndices(pos, dirty, perspective, &scratchRemoved, &scratchAdded)
		offset := fs.offsets[i]
		for _, v := range scratchRemoved.Values {
			removed.Add(v + offset)
		}
		for _, v := range scratchAdded.Values {
			added.Add(v + offset)
		}
	}
}
