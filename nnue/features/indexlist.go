// Package features implements feature indexers: the HalfKP family plus the
// trivial K and P indexers, and the FeatureSet composer that concatenates
// several indexers into one feature space.
package features

// IndexList collects the feature indices a single AppendActiveIndices or
// AppendChangedIndices call produces. Indexers append to a caller-owned
// list rather than allocating their own slice, so a FeatureSet can reuse
// one buffer across its component indexers.
type IndexList struct {
	Values []int
}

// Add appends one feature index.
func (l *IndexList) Add(idx int) {
	l.Values = append(l.Values, idx)
}

// Reset empties the list for reuse without releasing its backing array.
func (l *IndexList) Reset() {
	l.Values = l.Values[:0]
}
