/*
Package dataset models collections of labeled examples for decision-tree
induction, together with the partitioning, subsetting and entropy
operations tree growing, pruning and cross-validation are built on.

A Dataset couples an ordered sequence of examples with the label and
feature-value domains the whole classification problem was declared
over. Every subsetting operation spawns a new dataset that shares the
same two domains but owns its example sequence; no dataset is ever
mutated after construction.
*/
package dataset

import "sapling/domain"

/*
Dataset represents an immutable collection of labeled examples bound to
the label and feature-value universes of its classification problem.

Its Examples method returns the examples it contains, in order.

Its Labels and FeatureValues methods return the declared label and
feature-value domains, which every dataset spawned from this one shares.

Its DefaultLabel method returns the collaborator-supplied label to use
when a dataset cannot otherwise determine one.

Its Spawn method is the subset factory: it takes an example sequence and
returns a new dataset over it carrying the same domains and default
label.
*/
type Dataset[L, V comparable] interface {
	Examples() []Example[L, V]
	Size() int
	Labels() *domain.Domain[L]
	FeatureValues() *domain.Domain[V]
	DefaultLabel() L
	Spawn(examples []Example[L, V]) Dataset[L, V]
}

type memoryDataset[L, V comparable] struct {
	examples     []Example[L, V]
	labels       *domain.Domain[L]
	featValues   *domain.Domain[V]
	defaultLabel L
}

/*
New takes a slice of examples, the label and feature-value domains and a
default label and returns a Dataset backed by process memory.
*/
func New[L, V comparable](examples []Example[L, V], labels *domain.Domain[L], featValues *domain.Domain[V], defaultLabel L) Dataset[L, V] {
	return &memoryDataset[L, V]{examples, labels, featValues, defaultLabel}
}

func (ds *memoryDataset[L, V]) Examples() []Example[L, V] {
	return ds.examples
}

func (ds *memoryDataset[L, V]) Size() int {
	return len(ds.examples)
}

func (ds *memoryDataset[L, V]) Labels() *domain.Domain[L] {
	return ds.labels
}

func (ds *memoryDataset[L, V]) FeatureValues() *domain.Domain[V] {
	return ds.featValues
}

func (ds *memoryDataset[L, V]) DefaultLabel() L {
	return ds.defaultLabel
}

func (ds *memoryDataset[L, V]) Spawn(examples []Example[L, V]) Dataset[L, V] {
	return &memoryDataset[L, V]{examples, ds.labels, ds.featValues, ds.defaultLabel}
}
