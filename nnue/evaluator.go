package nnue

import "github.com/nnuekit/nnue/nnue/position"

// Evaluate scores pos from the side to move's perspective, in
// centipawn-scale units. It ensures both perspectives' accumulators are
// current (refreshing or incrementally updating as needed), transforms
// them into the dense layer stack's input, and scales the stack's raw
// output down by OutputScale.
func (e *Evaluator) Evaluate(pos position.Position) int32 {
	state := pos.CurrentState()
	input := e.FeatureTransformer.Transform(pos, state)
	raw := e.Network.Propagate(input)
	return raw / OutputScale
}
