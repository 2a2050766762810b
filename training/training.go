//go:build nnue_training

// Package training provides the training-time call surface a gradient
// trainer would drive: batching, example collection, and durable
// snapshots of training progress. The actual optimization algorithm is
// out of scope and is never implemented here — UpdateParameters panics
// with a clear message rather than silently doing nothing.
package training

import (
	"fmt"
	"sync"
)

// Example is one labeled training position: the active feature indices
// for each perspective and a target evaluation.
type Example struct {
	FeaturesWhite []int
	FeaturesBlack []int
	Label         float32
}

// Trainer holds the mutable state a training run accumulates between
// snapshots: the option set, a mutex-guarded example pool, and progress
// counters.
type Trainer struct {
	mu sync.Mutex

	batchSize         int
	learningRateScale float64
	options           map[string]string

	examples []Example
	epoch    int
}

// InitializeTraining constructs a Trainer from an initial option set.
func InitializeTraining(opts map[string]string) *Trainer {
	copied := make(map[string]string, len(opts))
	for k, v := range opts {
		copied[k] = v
	}
	return &Trainer{batchSize: 1, learningRateScale: 1.0, options: copied}
}

// SetBatchSize sets the mini-batch size recorded in the trainer's
// snapshots. UpdateParameters does not read it, since it always panics.
func (t *Trainer) SetBatchSize(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.batchSize = n
}

// SetLearningRateScale changes the multiplier applied to whatever base
// learning rate the (unimplemented) optimizer would use.
func (t *Trainer) SetLearningRateScale(s float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.learningRateScale = s
}

// SetOptions merges additional key/value options into the trainer.
func (t *Trainer) SetOptions(opts map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range opts {
		t.options[k] = v
	}
}

// AddExample appends one labeled example to the shared pool. Safe for
// concurrent callers.
func (t *Trainer) AddExample(ex Example) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.examples = append(t.examples, ex)
}

// PoolSize reports how many examples are currently queued.
func (t *Trainer) PoolSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.examples)
}

// UpdateParameters would run one epoch of gradient updates over the
// example pool. The optimizer itself is a collaborator this repository
// never implements; calling this is a contract violation and is fatal,
// not silently ignored.
func (t *Trainer) UpdateParameters(epoch int) {
	panic(fmt.Sprintf("training: UpdateParameters(%d): gradient optimizer not implemented in this repository", epoch))
}

// Snapshot captures everything Save/Restore need to resume a training
// run: progress counters and the option set, not the example pool
// itself (which is expected to be regenerated from its source data).
type Snapshot struct {
	Epoch             int               `json:"epoch"`
	ExampleCount      int               `json:"exampleCount"`
	BatchSize         int               `json:"batchSize"`
	LearningRateScale float64           `json:"learningRateScale"`
	Options           map[string]string `json:"options"`
	SavedAtUnix       int64             `json:"savedAtUnix"`
}

// Snapshot captures the trainer's current progress counters and options.
func (t *Trainer) Snapshot(now int64) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	options := make(map[string]string, len(t.options))
	for k, v := range t.options {
		options[k] = v
	}
	return Snapshot{
		Epoch:             t.epoch,
		ExampleCount:      len(t.examples),
		BatchSize:         t.batchSize,
		LearningRateScale: t.learningRateScale,
		Options:           options,
		SavedAtUnix:       now,
	}
}

// Restore applies a previously saved Snapshot's counters and options
// back onto the trainer. It does not repopulate the example pool.
func (t *Trainer) Restore(snap Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.epoch = snap.Epoch
	t.batchSize = snap.BatchSize
	t.learningRateScale = snap.LearningRateScale
	t.options = snap.Options
}
