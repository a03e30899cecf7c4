package sapling

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sapling/dataset"
	"sapling/tree"
)

/*
TuneMethod selects how BuildTunedTree splits tuning data out of the
dataset it is given.
*/
type TuneMethod int

const (
	// TuneByNone grows a tree on the full dataset and does not prune.
	TuneByNone TuneMethod = iota
	// TuneByStride plucks every sizeOrStride-th example out as the
	// tuning partition and trains on the remainder.
	TuneByStride
	// TuneBySize interprets sizeOrStride as the desired tuning
	// partition size and derives the stride from it.
	TuneBySize
)

func (tm TuneMethod) String() string {
	switch tm {
	case TuneByNone:
		return "none"
	case TuneByStride:
		return "stride"
	case TuneBySize:
		return "size"
	}
	return fmt.Sprintf("unknown tuning method %d", int(tm))
}

/*
ErrNoFolds is returned by CrossValidate when the fold size leaves no
fold to evaluate.
*/
const ErrNoFolds = Error("cross-validation requires a fold size of at least 1 and smaller than the dataset")

/*
BuildTunedTree takes a dataset, a tuning method and a size-or-stride
parameter and returns a tuned tree.

TuneByNone grows a tree on the full dataset with no pruning, ignoring
the parameter. TuneByStride splits the dataset by the parameter as
stride, grows a tree on the off-stride partition and prunes it against
the on-stride partition. TuneBySize derives the stride as the dataset
size divided by the parameter and then behaves as TuneByStride.
*/
func BuildTunedTree[L, V comparable](ds dataset.Dataset[L, V], method TuneMethod, sizeOrStride int) (*tree.Tree[L, V], error) {
	switch method {
	case TuneByNone:
		return Grow(ds)
	case TuneByStride, TuneBySize:
	default:
		return nil, Error(fmt.Sprintf("unknown tuning method %d", int(method)))
	}
	stride := sizeOrStride
	if method == TuneBySize {
		if sizeOrStride < 1 {
			return nil, dataset.ErrInvalidStride
		}
		stride = ds.Size() / sizeOrStride
	}
	tuning, training, err := dataset.SplitByStride(ds, stride)
	if err != nil {
		return nil, err
	}
	t, err := Grow(training)
	if err != nil {
		return nil, err
	}
	Prune(t, tuning)
	return t, nil
}

/*
Score takes a tree and a dataset and returns the fraction of the
dataset's examples whose classification by the tree matches their true
label. An empty dataset scores 0.
*/
func Score[L, V comparable](t *tree.Tree[L, V], ds dataset.Dataset[L, V]) float64 {
	if ds.Size() == 0 {
		return 0.0
	}
	var matches int
	for _, e := range ds.Examples() {
		if t.Classify(e) == e.Label() {
			matches++
		}
	}
	return float64(matches) / float64(ds.Size())
}

/*
CrossValidate estimates the accuracy of trees tuned with the given
method over the given dataset. For each starting offset i below
ds.Size()-foldSize it holds out the contiguous fold [i, i+foldSize) as
the test partition, builds a tuned tree from the rest, scores it
against the fold and returns the mean score across all folds.

A fold's tree and dataset subsets are owned exclusively by the
goroutine evaluating it, so folds run concurrently on a pool bounded by
GOMAXPROCS. The mean does not depend on completion order.

An error is returned if the fold size leaves no fold to evaluate, or if
the context is cancelled before all folds complete.
*/
func CrossValidate[L, V comparable](ctx context.Context, ds dataset.Dataset[L, V], foldSize int, method TuneMethod, sizeOrStride int) (float64, error) {
	folds := ds.Size() - foldSize
	if foldSize < 1 || folds <= 0 {
		return 0.0, ErrNoFolds
	}
	scores := make([]float64, folds)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < folds; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			training, err := dataset.ExcludingRange(ds, i, i+foldSize)
			if err != nil {
				return err
			}
			test, err := dataset.FromRange(ds, i, i+foldSize)
			if err != nil {
				return err
			}
			t, err := BuildTunedTree(training, method, sizeOrStride)
			if err != nil {
				return fmt.Errorf("building tree for fold [%d, %d): %v", i, i+foldSize, err)
			}
			scores[i] = Score(t, test)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0.0, err
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(folds), nil
}
