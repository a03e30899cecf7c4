package tree

/*
NoSplit is the sentinel value a node's SplitFeature takes when the node
was not split on any feature, that is, when it is a leaf.
*/
const NoSplit = -1

/*
Node is a node of a classification tree.

A node with no children behaves as a leaf. A node whose pruned flag is
set also behaves as a leaf for all classification and traversal
purposes, regardless of the children it keeps: the flag forces leaf
behavior without discarding the subtree, so pruning is reversible while
a pruning search is under way and the discarded subtree can still be
inspected afterwards.
*/
type Node[L, V comparable] struct {
	// The parent of the node, nil at the root. The reference is
	// non-owning: parents own their children, children only point
	// back for label inheritance during growing and pruning.
	Parent *Node[L, V]
	// The children of the node keyed by the feature value that
	// selects each of them. Nil or empty for leaves.
	Children map[V]*Node[L, V]
	// The index of the feature the node was split on, NoSplit for
	// leaves.
	SplitFeature int
	// The label resolved for the node. Present on every node, leaf
	// or not, so that pruning can turn any internal node into a
	// usable leaf without recomputation.
	Label L

	pruned bool
}

/*
Instance is the capability classification requires of a record: looking
up the value of the feature at a given index. Labeled examples satisfy
it, and so do unlabeled records to classify.
*/
type Instance[V comparable] interface {
	Feature(i int) V
}

/*
IsLeaf returns whether the node is structurally a leaf, that is,
whether it has no children.
*/
func (n *Node[L, V]) IsLeaf() bool {
	return len(n.Children) == 0
}

/*
IsPruned returns whether the node's pruned flag is set, forcing it to
behave as a leaf.
*/
func (n *Node[L, V]) IsPruned() bool {
	return n.pruned
}

/*
SetPruned marks the node as pruned or not.
*/
func (n *Node[L, V]) SetPruned(pruned bool) {
	n.pruned = pruned
}

/*
IsRoot returns whether the node is the root of its tree.
*/
func (n *Node[L, V]) IsRoot() bool {
	return n.Parent == nil
}

/*
Classify returns the label the subtree rooted at the node resolves for
the given instance. Nodes behaving as leaves return their own label.
Other nodes delegate to the child keyed by the instance's value for the
split feature. When no child carries that value, either because the
training data that reached this node did not exhaust the declared
universe or because the value lies outside that universe altogether,
the node's own label is the answer. Classification is total: it never
fails on unseen combinations.
*/
func (n *Node[L, V]) Classify(x Instance[V]) L {
	if n.IsLeaf() || n.pruned {
		return n.Label
	}
	if child := n.Children[x.Feature(n.SplitFeature)]; child != nil {
		return child.Classify(x)
	}
	return n.Label
}
