package sapling

import (
	"sapling/dataset"
	"sapling/tree"
)

/*
Prune simplifies the given tree by reduced-error pruning against the
given tuning dataset, which must be disjoint from the data the tree was
grown on.

Pruning repeats rounds until a fixed point: each round walks every
internal, not-yet-pruned node in post-order, temporarily forces it to
behave as a leaf, and re-scores the whole tree on the tuning dataset.
The node whose pruning yields the best accuracy of the round is pruned
for good, provided that accuracy is no worse than the tree's accuracy
before the round: a simpler tree with equal accuracy is preferred.
Among candidates scoring exactly the same, the one visited last in
post-order wins. When a round finds no candidate, the tree is at a
local fixed point under single-node pruning and Prune returns.

Pruning only ever sets pruned flags. The subtrees below pruned nodes
are kept, so the result never misclassifies an instance a pruned node
would have handled: the node answers with its own resolved label.
*/
func Prune[L, V comparable](t *tree.Tree[L, V], tuning dataset.Dataset[L, V]) {
	for {
		best := bestPrune(t, tuning)
		if best == nil {
			return
		}
		best.SetPruned(true)
	}
}

/*
bestPrune performs one pruning round: a full iterative post-order
traversal over the tree evaluating every prunable node in isolation.
The traversal holds an explicit stack; a node is visited once its
children have been, and nodes behaving as leaves are popped without
evaluation since only inner nodes can be pruned. Every candidate's flag
is restored before the traversal moves on, so a round observes the tree
exactly as it was when the round started.
*/
func bestPrune[L, V comparable](t *tree.Tree[L, V], tuning dataset.Dataset[L, V]) *tree.Node[L, V] {
	var best, prev *tree.Node[L, V]
	bestAccuracy := Score(t, tuning)
	stack := []*tree.Node[L, V]{t.Root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		switch {
		case curr.IsLeaf() || curr.IsPruned():
			stack = stack[:len(stack)-1]
			prev = curr
		case prev != nil && curr == prev.Parent:
			stack = stack[:len(stack)-1]
			prev = curr
			curr.SetPruned(true)
			accuracy := Score(t, tuning)
			curr.SetPruned(false)
			if accuracy >= bestAccuracy {
				bestAccuracy = accuracy
				best = curr
			}
		default:
			children := t.ChildrenOf(curr)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
			prev = curr
		}
	}
	return best
}
