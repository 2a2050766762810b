//go:build nnue_training

package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExampleGrowsPool(t *testing.T) {
	tr := InitializeTraining(nil)
	tr.AddExample(Example{FeaturesWhite: []int{1, 2}, Label: 0.5})
	tr.AddExample(Example{FeaturesWhite: []int{3}, Label: -0.5})

	assert.Equal(t, 2, tr.PoolSize())
}

func TestUpdateParametersPanicsWithoutOptimizer(t *testing.T) {
	tr := InitializeTraining(nil)
	assert.Panics(t, func() { tr.UpdateParameters(1) })
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	tr := InitializeTraining(map[string]string{"source": "unit-test"})
	tr.SetBatchSize(64)
	tr.SetLearningRateScale(0.25)

	snap := tr.Snapshot(1000)

	restored := InitializeTraining(nil)
	restored.Restore(snap)

	assert.Equal(t, snap.BatchSize, restored.batchSize)
	assert.Equal(t, snap.LearningRateScale, restored.learningRateScale)
	assert.Equal(t, "unit-test", restored.options["source"])
}

func TestStoreSaveRestoreRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	snap := Snapshot{Epoch: 3, ExampleCount: 10, BatchSize: 32, LearningRateScale: 0.1, SavedAtUnix: 500}
	require.NoError(t, store.Save(snap))

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.Equal(t, snap, restored)
}

func TestStoreRestoreWithoutSaveReturnsZeroValue(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	restored, err := store.Restore()
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, restored)
}

func TestCheckHealthReportsNoSnapshot(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	report, err := store.CheckHealth(1000)
	require.NoError(t, err)
	assert.False(t, report.HasSnapshot)
}

func TestCheckHealthReportsExistingSnapshot(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(Snapshot{Epoch: 5, SavedAtUnix: 1000}))

	report, err := store.CheckHealth(1500)
	require.NoError(t, err)
	assert.True(t, report.HasSnapshot)
	assert.Equal(t, 5, report.Epoch)
}
