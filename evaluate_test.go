package sapling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapling/dataset"
	"sapling/tree"
)

// newAlternatingDataset builds n examples alternating between the two
// labels, with feature 0 determining the label exactly.
func newAlternatingDataset(t *testing.T, n int) dataset.Dataset[string, string] {
	labels := make([]string, n)
	vectors := make([][]string, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			labels[i] = "0"
			vectors[i] = []string{"X"}
		} else {
			labels[i] = "1"
			vectors[i] = []string{"Y"}
		}
	}
	return newDataset(t, []string{"0", "1"}, []string{"X", "Y"}, labels, vectors)
}

func TestTuneMethodString(t *testing.T) {
	assert.Equal(t, "none", TuneByNone.String())
	assert.Equal(t, "stride", TuneByStride.String())
	assert.Equal(t, "size", TuneBySize.String())
	assert.Contains(t, TuneMethod(42).String(), "unknown")
}

func TestBuildTunedTreeByNoneGrowsWithoutPruning(t *testing.T) {
	ds := newPerfectlySplittableDataset(t)
	tr, err := BuildTunedTree(ds, TuneByNone, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, Score(tr, ds))
	err = tr.Traverse(false, func(n *tree.Node[string, string]) error {
		assert.False(t, n.IsPruned())
		return nil
	})
	require.NoError(t, err)
}

func TestBuildTunedTreeByStride(t *testing.T) {
	ds := newPerfectlySplittableDataset(t)
	// Stride 2 tunes on examples 0 and 2 and trains on 1 and 3,
	// which still cover both feature values.
	tr, err := BuildTunedTree(ds, TuneByStride, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, Score(tr, ds))
	assert.Equal(t, 0, tr.Root.SplitFeature)
}

func TestBuildTunedTreeBySizeDerivesTheStride(t *testing.T) {
	ds := newAlternatingDataset(t, 9)
	// A tuning size of 3 over 9 examples means stride 3, which keeps
	// both labels on each side of the split.
	tr, err := BuildTunedTree(ds, TuneBySize, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, Score(tr, ds))
}

func TestBuildTunedTreeBySizeRejectsSizeBelowOne(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	_, err := BuildTunedTree(ds, TuneBySize, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidStride)
}

func TestBuildTunedTreeUnknownMethodFails(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	_, err := BuildTunedTree(ds, TuneMethod(42), 1)
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	tr, err := Grow(newPerfectlySplittableDataset(t))
	require.NoError(t, err)
	ds := newDataset(t,
		[]string{"0", "1"},
		[]string{"X", "Y"},
		[]string{"0", "1", "0", "0"},
		[][]string{{"X", "X"}, {"Y", "Y"}, {"Y", "X"}, {"X", "Y"}})
	// The tree answers 0 under X and 1 under Y, so the third example
	// is the only miss.
	assert.Equal(t, 0.75, Score(tr, ds))
}

func TestScoreOfEmptyDatasetIsZero(t *testing.T) {
	tr, err := Grow(newPerfectlySplittableDataset(t))
	require.NoError(t, err)
	empty := newDataset(t, []string{"0", "1"}, []string{"X", "Y"}, nil, nil)
	assert.Equal(t, 0.0, Score(tr, empty))
}

func TestCrossValidateLearnableDatasetScoresPerfectly(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	accuracy, err := CrossValidate(context.Background(), ds, 1, TuneByNone, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
}

func TestCrossValidateWithWiderFolds(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	accuracy, err := CrossValidate(context.Background(), ds, 2, TuneByNone, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
}

func TestCrossValidateRejectsFoldSizesLeavingNoFolds(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	for _, foldSize := range []int{0, -1, 8, 9} {
		_, err := CrossValidate(context.Background(), ds, foldSize, TuneByNone, 0)
		assert.ErrorIs(t, err, ErrNoFolds, "foldSize=%d", foldSize)
	}
}

func TestCrossValidateHonorsContextCancellation(t *testing.T) {
	ds := newAlternatingDataset(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CrossValidate(ctx, ds, 1, TuneByNone, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCrossValidateUnlearnableDatasetScoresPoorly(t *testing.T) {
	// The single feature is constant, so every fold's tree is a bare
	// majority-vote leaf.
	ds := newDataset(t,
		[]string{"0", "1"},
		[]string{"u"},
		[]string{"1", "0", "0", "0"},
		[][]string{{"u"}, {"u"}, {"u"}, {"u"}})
	accuracy, err := CrossValidate(context.Background(), ds, 1, TuneByNone, 0)
	require.NoError(t, err)
	// Folds hold out examples 0, 1 and 2. Every training majority
	// says 0, so only the first fold's example is missed.
	assert.InDelta(t, 2.0/3.0, accuracy, 1e-12)
}
