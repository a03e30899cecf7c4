/*
Package tree provides the classification tree structure grown by the
sapling package: nodes keyed by feature value, the total classification
operation over them, and deterministic traversal and rendering of the
whole tree.
*/
package tree

import (
	"fmt"
	"strings"

	"sapling/domain"
)

/*
Tree represents a grown classification tree. It is composed of the root
Node and the feature-value domain the tree was grown over, which fixes
a deterministic order for the children of every node.
*/
type Tree[L, V comparable] struct {
	Root       *Node[L, V]
	FeatValues *domain.Domain[V]
}

/*
New takes a root node and the feature-value domain of the data the tree
was grown from and returns a tree over them.
*/
func New[L, V comparable](root *Node[L, V], featValues *domain.Domain[V]) *Tree[L, V] {
	return &Tree[L, V]{root, featValues}
}

/*
Classify takes an instance and returns the label the tree resolves for
it. Classification is total over the declared feature-value domain: any
instance yields a label from the declared label domain.
*/
func (t *Tree[L, V]) Classify(x Instance[V]) L {
	return t.Root.Classify(x)
}

/*
ChildrenOf returns the children of the given node in the declared order
of the feature-value domain, skipping domain values the node has no
child for. Using the declared order keeps every traversal of the tree
deterministic.
*/
func (t *Tree[L, V]) ChildrenOf(n *Node[L, V]) []*Node[L, V] {
	if len(n.Children) == 0 {
		return nil
	}
	children := make([]*Node[L, V], 0, len(n.Children))
	for _, v := range t.FeatValues.Values() {
		if child, ok := n.Children[v]; ok {
			children = append(children, child)
		}
	}
	return children
}

/*
Traverse takes a bottomup boolean and an error-returning function on a
node, and goes through the tree running the function with every node.
Traverse will call the function on a parent before its children if
bottomup is false, and after its children if bottomup is true. Children
are visited in the feature-value domain's declared order. If a call to
the function returns an error, the traversing is aborted and the error
is returned.
*/
func (t *Tree[L, V]) Traverse(bottomup bool, f func(*Node[L, V]) error) error {
	return t.traverse(t.Root, bottomup, f)
}

func (t *Tree[L, V]) traverse(n *Node[L, V], bottomup bool, f func(*Node[L, V]) error) error {
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	for _, child := range t.ChildrenOf(n) {
		if err := t.traverse(child, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	return nil
}

/*
Nodes returns the total number of nodes in the tree, counting the kept
subtrees of pruned nodes.
*/
func (t *Tree[L, V]) Nodes() int {
	var count int
	t.Traverse(false, func(*Node[L, V]) error {
		count++
		return nil
	})
	return count
}

/*
EffectiveNodes returns the number of nodes that take part in
classification: nodes below a pruned node do not count, since the
pruned node behaves as a leaf.
*/
func (t *Tree[L, V]) EffectiveNodes() int {
	return t.effectiveNodes(t.Root)
}

func (t *Tree[L, V]) effectiveNodes(n *Node[L, V]) int {
	count := 1
	if n.IsPruned() {
		return count
	}
	for _, child := range t.ChildrenOf(n) {
		count += t.effectiveNodes(child)
	}
	return count
}

func (t *Tree[L, V]) String() string {
	return t.subtreeString(t.Root)
}

func (t *Tree[L, V]) subtreeString(n *Node[L, V]) string {
	if n.IsLeaf() || n.IsPruned() {
		return fmt.Sprintf("%v\n", n.Label)
	}
	result := fmt.Sprintf("feature %d\n", n.SplitFeature)
	values := make([]V, 0, len(n.Children))
	for _, v := range t.FeatValues.Values() {
		if _, ok := n.Children[v]; ok {
			values = append(values, v)
		}
	}
	for i, v := range values {
		child := n.Children[v]
		for j, line := range strings.Split(t.subtreeString(child), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__(%v) %s\n", result, v, line)
			} else if i == len(values)-1 {
				result = fmt.Sprintf("%s       %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|      %s\n", result, line)
			}
		}
	}
	return result
}
