/*
Package sapling grows discrete-feature classification trees from
labeled datasets by entropy-gain splitting, simplifies them by
reduced-error pruning against a held-out tuning partition, and
estimates their accuracy by n-fold cross-validation.

All operations are pure computation over the in-memory structures they
are given: growing and pruning mutate only the tree being built or
tuned, so distinct evaluations never share mutable state.
*/
package sapling

import (
	"sapling/dataset"
	"sapling/tree"
)

/*
Error represents a violation of the growing or evaluation contract by
the caller. These conditions are surfaced immediately and never retried
internally.
*/
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrEmptyRootDataset is returned when a tree is grown from an empty
dataset: with no parent to inherit a label from, no label can be
resolved for the root.
*/
const ErrEmptyRootDataset = Error("cannot grow a tree from an empty dataset")

/*
Grow takes a dataset and returns the classification tree induced from
it by recursive greedy maximum-information-gain splitting.

Each node resolves a label by majority vote over its examples, so that
pruning can later turn any internal node into a usable leaf. Vote ties
inherit the parent's label; at the root, where there is no parent, the
earliest tied label in the label domain's declared order wins, keeping
induction deterministic. A node is split on the feature whose partition
yields the strictly greatest information gain, and becomes a leaf when
no split gains anything, when its examples already share one label, or
when it holds at most one example.

An error is returned if the dataset is empty or if its examples violate
the declared domains.
*/
func Grow[L, V comparable](ds dataset.Dataset[L, V]) (*tree.Tree[L, V], error) {
	root, err := grow[L, V](nil, ds)
	if err != nil {
		return nil, err
	}
	return tree.New(root, ds.FeatureValues()), nil
}

func grow[L, V comparable](parent *tree.Node[L, V], ds dataset.Dataset[L, V]) (*tree.Node[L, V], error) {
	n := &tree.Node[L, V]{Parent: parent, SplitFeature: tree.NoSplit}
	label, err := resolveLabel(parent, ds)
	if err != nil {
		return nil, err
	}
	n.Label = label
	if ds.Size() <= 1 {
		return n, nil
	}
	entropy, err := dataset.Entropy(ds)
	if err != nil {
		return nil, err
	}
	if entropy == 0.0 {
		// already pure
		return n, nil
	}
	best, err := bestPartition(ds, entropy)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return n, nil
	}
	n.SplitFeature = best.feature
	n.Children = make(map[V]*tree.Node[L, V], len(best.subsets))
	for _, v := range ds.FeatureValues().Values() {
		child, err := grow(n, best.subsets[v])
		if err != nil {
			return nil, err
		}
		n.Children[v] = child
	}
	return n, nil
}

/*
resolveLabel determines the label of a node as if it were a leaf.
Single-example datasets short-circuit to that example's label, and
empty datasets inherit the parent's. The majority vote walks labels in
the domain's declared order, so a tie with no parent to inherit from
resolves to the earliest tied label.
*/
func resolveLabel[L, V comparable](parent *tree.Node[L, V], ds dataset.Dataset[L, V]) (L, error) {
	if ds.Size() == 1 {
		return ds.Examples()[0].Label(), nil
	}
	if ds.Size() == 0 {
		if parent == nil {
			return ds.DefaultLabel(), ErrEmptyRootDataset
		}
		return parent.Label, nil
	}
	groups := dataset.GroupByLabel(ds)
	majority := 0
	majorityLabel := ds.DefaultLabel()
	tie := false
	for _, label := range ds.Labels().Values() {
		count := len(groups[label])
		if count > majority {
			majorityLabel = label
			majority = count
			tie = false
		} else if count == majority && count > 0 {
			tie = true
		}
	}
	if tie && parent != nil {
		majorityLabel = parent.Label
	}
	return majorityLabel, nil
}
