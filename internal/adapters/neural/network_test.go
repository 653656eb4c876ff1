package neural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain_LearnsAssociation(t *testing.T) {
	n := New()
	// One vocabulary of 4 tokens: input flags positions 0,1; target flags 2,3.
	inputs := [][]float64{{1, 1, 0, 0}}
	targets := [][]float64{{0, 0, 1, 1}}
	require.NoError(t, n.Train(inputs, targets))

	out, err := n.Infer([]float64{1, 1, 0, 0})
	require.NoError(t, err)
	assert.Greater(t, out[2], 0.5)
	assert.Greater(t, out[3], 0.5)
	assert.Less(t, out[0], 0.3)
	assert.Less(t, out[1], 0.3)
}

func TestTrain_SeparatesSamples(t *testing.T) {
	n := New()
	inputs := [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	}
	targets := [][]float64{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	require.NoError(t, n.Train(inputs, targets))

	out, err := n.Infer([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Greater(t, out[2], out[3])

	out, err = n.Infer([]float64{0, 1, 0, 0})
	require.NoError(t, err)
	assert.Greater(t, out[3], out[2])
}

func TestTrain_Deterministic(t *testing.T) {
	inputs := [][]float64{{1, 0}, {0, 1}}
	targets := [][]float64{{0, 1}, {1, 0}}

	a, b := New(), New()
	require.NoError(t, a.Train(inputs, targets))
	require.NoError(t, b.Train(inputs, targets))

	outA, err := a.Infer([]float64{1, 0})
	require.NoError(t, err)
	outB, err := b.Infer([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestTrain_EmptySetIsNeutral(t *testing.T) {
	n := New()
	require.NoError(t, n.Train(nil, nil))

	out, err := n.Infer([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestTrain_MismatchedCounts(t *testing.T) {
	n := New()
	assert.Error(t, n.Train([][]float64{{1}}, nil))
}

func TestTrain_MismatchedVectorLengths(t *testing.T) {
	n := New()
	assert.Error(t, n.Train([][]float64{{1, 0}}, [][]float64{{1}}))
}

func TestInfer_BeforeTrain(t *testing.T) {
	n := New()
	_, err := n.Infer([]float64{1})
	assert.Error(t, err)
}

func TestInfer_WrongLength(t *testing.T) {
	n := New()
	require.NoError(t, n.Train([][]float64{{1, 0}}, [][]float64{{0, 1}}))
	_, err := n.Infer([]float64{1})
	assert.Error(t, err)
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	n := New()
	require.NoError(t, n.Train([][]float64{{1, 0, 0}}, [][]float64{{0, 1, 1}}))

	snap, err := n.Snapshot()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.Restore(snap))

	want, err := n.Infer([]float64{1, 0, 0})
	require.NoError(t, err)
	got, err := restored.Infer([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRestore_CorruptSnapshot(t *testing.T) {
	n := New()
	assert.Error(t, n.Restore([]byte("{broken")))
}

func TestSnapshot_BeforeTrain(t *testing.T) {
	n := New()
	_, err := n.Snapshot()
	assert.Error(t, err)
}
