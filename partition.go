package sapling

import "sapling/dataset"

/*
featurePartition represents the partition of a dataset on one feature:
a subset per value in the feature-value domain and the information gain
the split achieves, that is, the dataset's entropy minus the weighted
post-split entropy of the subsets.
*/
type featurePartition[L, V comparable] struct {
	feature         int
	subsets         map[V]dataset.Dataset[L, V]
	informationGain float64
}

func newFeaturePartition[L, V comparable](ds dataset.Dataset[L, V], feature int, dsEntropy float64) (*featurePartition[L, V], error) {
	subsets, err := dataset.Partition(ds, feature)
	if err != nil {
		return nil, err
	}
	informationGain := dsEntropy
	totalCount := float64(ds.Size())
	for _, sub := range subsets {
		subEntropy, err := dataset.Entropy(sub)
		if err != nil {
			return nil, err
		}
		informationGain -= subEntropy * float64(sub.Size()) / totalCount
	}
	return &featurePartition[L, V]{feature, subsets, informationGain}, nil
}

/*
bestPartition partitions the dataset on every feature index and returns
the partition with the strictly greatest information gain, or nil if no
feature gains anything. Gain must be strictly greater than the current
best to replace it, so gain ties resolve to the lowest feature index.
*/
func bestPartition[L, V comparable](ds dataset.Dataset[L, V], dsEntropy float64) (*featurePartition[L, V], error) {
	var best *featurePartition[L, V]
	features := ds.Examples()[0].Features()
	for i := 0; i < features; i++ {
		part, err := newFeaturePartition(ds, i, dsEntropy)
		if err != nil {
			return nil, err
		}
		if best == nil || part.informationGain > best.informationGain {
			best = part
		}
	}
	if best == nil || best.informationGain <= 0 {
		return nil, nil
	}
	return best, nil
}
