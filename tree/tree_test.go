package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapling/dataset"
	"sapling/domain"
)

// newTestTree builds a small tree by hand over the {a, b, c} value
// domain:
//
//	root splits feature 0
//	  a -> leaf "left"
//	  b -> inner node splitting feature 1
//	         a -> leaf "deep-a"
//	         c -> leaf "deep-c"
//
// The root resolves "root-label" and the inner node "inner-label".
func newTestTree() *Tree[string, string] {
	root := &Node[string, string]{SplitFeature: 0, Label: "root-label"}
	leftLeaf := &Node[string, string]{Parent: root, SplitFeature: NoSplit, Label: "left"}
	inner := &Node[string, string]{Parent: root, SplitFeature: 1, Label: "inner-label"}
	deepA := &Node[string, string]{Parent: inner, SplitFeature: NoSplit, Label: "deep-a"}
	deepC := &Node[string, string]{Parent: inner, SplitFeature: NoSplit, Label: "deep-c"}
	inner.Children = map[string]*Node[string, string]{"a": deepA, "c": deepC}
	root.Children = map[string]*Node[string, string]{"a": leftLeaf, "b": inner}
	return New(root, domain.New([]string{"a", "b", "c"}))
}

func TestClassifyFollowsSplits(t *testing.T) {
	tr := newTestTree()
	assert.Equal(t, "left", tr.Classify(dataset.Vector[string]{"a", "a"}))
	assert.Equal(t, "deep-a", tr.Classify(dataset.Vector[string]{"b", "a"}))
	assert.Equal(t, "deep-c", tr.Classify(dataset.Vector[string]{"b", "c"}))
}

func TestClassifyFallsBackOnMissingChild(t *testing.T) {
	tr := newTestTree()
	// The root has no child for c, the inner node none for b. Both
	// answer with their own label instead of failing.
	assert.Equal(t, "root-label", tr.Classify(dataset.Vector[string]{"c", "a"}))
	assert.Equal(t, "inner-label", tr.Classify(dataset.Vector[string]{"b", "b"}))
}

func TestClassifyTreatsPrunedNodesAsLeaves(t *testing.T) {
	tr := newTestTree()
	inner := tr.Root.Children["b"]
	inner.SetPruned(true)
	assert.Equal(t, "inner-label", tr.Classify(dataset.Vector[string]{"b", "a"}))
	inner.SetPruned(false)
	assert.Equal(t, "deep-a", tr.Classify(dataset.Vector[string]{"b", "a"}))
}

func TestIsLeaf(t *testing.T) {
	tr := newTestTree()
	assert.False(t, tr.Root.IsLeaf())
	assert.True(t, tr.Root.Children["a"].IsLeaf())
}

func TestIsRoot(t *testing.T) {
	tr := newTestTree()
	assert.True(t, tr.Root.IsRoot())
	assert.False(t, tr.Root.Children["a"].IsRoot())
}

func TestChildrenOfFollowsValueDomainOrder(t *testing.T) {
	tr := newTestTree()
	children := tr.ChildrenOf(tr.Root)
	require.Len(t, children, 2)
	assert.Equal(t, "left", children[0].Label)
	assert.Equal(t, "inner-label", children[1].Label)

	inner := tr.Root.Children["b"]
	children = tr.ChildrenOf(inner)
	require.Len(t, children, 2)
	assert.Equal(t, "deep-a", children[0].Label)
	assert.Equal(t, "deep-c", children[1].Label)

	assert.Nil(t, tr.ChildrenOf(children[0]))
}

func TestTraverseTopDown(t *testing.T) {
	tr := newTestTree()
	var labels []string
	err := tr.Traverse(false, func(n *Node[string, string]) error {
		labels = append(labels, n.Label)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root-label", "left", "inner-label", "deep-a", "deep-c"}, labels)
}

func TestTraverseBottomUp(t *testing.T) {
	tr := newTestTree()
	var labels []string
	err := tr.Traverse(true, func(n *Node[string, string]) error {
		labels = append(labels, n.Label)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "deep-a", "deep-c", "inner-label", "root-label"}, labels)
}

func TestTraverseAbortsOnError(t *testing.T) {
	tr := newTestTree()
	visits := 0
	err := tr.Traverse(false, func(n *Node[string, string]) error {
		visits++
		if n.Label == "left" {
			return assert.AnError
		}
		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, visits)
}

func TestNodeCounts(t *testing.T) {
	tr := newTestTree()
	assert.Equal(t, 5, tr.Nodes())
	assert.Equal(t, 5, tr.EffectiveNodes())

	tr.Root.Children["b"].SetPruned(true)
	// The kept subtree still counts as nodes but not as effective
	// ones.
	assert.Equal(t, 5, tr.Nodes())
	assert.Equal(t, 3, tr.EffectiveNodes())
}

func TestStringRendersSplitsAndLeaves(t *testing.T) {
	tr := newTestTree()
	rendered := tr.String()
	assert.True(t, strings.HasPrefix(rendered, "feature 0\n"))
	assert.Contains(t, rendered, "|__(a) left")
	assert.Contains(t, rendered, "|__(b) feature 1")
	assert.Contains(t, rendered, "|__(c) deep-c")
}

func TestStringRendersPrunedNodeAsLeaf(t *testing.T) {
	tr := newTestTree()
	tr.Root.Children["b"].SetPruned(true)
	rendered := tr.String()
	assert.Contains(t, rendered, "|__(b) inner-label")
	assert.NotContains(t, rendered, "deep-a")
}
