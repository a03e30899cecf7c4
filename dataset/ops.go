package dataset

import (
	"fmt"
	"math"
)

/*
ContractError represents a violation of the dataset contract by the
caller or the caller-supplied data. These errors are never retried
internally: they signal data inconsistent with the declared domains or
a misuse of an operation, not a transient condition.
*/
type ContractError string

func (ce ContractError) Error() string {
	return string(ce)
}

/*
ErrValueOutsideDomain is returned when an example carries a feature
value that is not a member of the declared feature-value domain.
*/
const ErrValueOutsideDomain = ContractError("example has a feature value outside the declared feature-value domain")

/*
ErrLabelOutsideDomain is returned when an example carries a label that
is not a member of the declared label domain.
*/
const ErrLabelOutsideDomain = ContractError("example has a label outside the declared label domain")

/*
ErrInvalidStride is returned by SplitByStride for strides below 1.
*/
const ErrInvalidStride = ContractError("stride must be 1 or greater")

/*
ErrRangeOutOfBounds is returned by the range subsetting operations when
the given half-open range does not fit the dataset.
*/
const ErrRangeOutOfBounds = ContractError("subset range out of dataset bounds")

/*
Partition takes a dataset and a feature index and returns a map from
every value in the feature-value domain to a freshly spawned dataset
containing exactly the examples whose feature at that index equals the
value. Domain values no example carries map to an empty dataset: tree
induction must consider the full declared universe, not just the values
observed locally.
An error is returned if an example carries a feature value outside the
declared domain.
*/
func Partition[L, V comparable](ds Dataset[L, V], i int) (map[V]Dataset[L, V], error) {
	buckets := make(map[V][]Example[L, V], ds.FeatureValues().Len())
	for _, v := range ds.FeatureValues().Values() {
		buckets[v] = nil
	}
	for _, e := range ds.Examples() {
		v := e.Feature(i)
		if !ds.FeatureValues().Contains(v) {
			return nil, fmt.Errorf("partitioning on feature %d: %w", i, ErrValueOutsideDomain)
		}
		buckets[v] = append(buckets[v], e)
	}
	subsets := make(map[V]Dataset[L, V], len(buckets))
	for v, examples := range buckets {
		subsets[v] = ds.Spawn(examples)
	}
	return subsets, nil
}

/*
GroupByLabel takes a dataset and returns a map from each label carried
by at least one example to the examples carrying it. Labels with no
occurrences are simply absent.
*/
func GroupByLabel[L, V comparable](ds Dataset[L, V]) map[L][]Example[L, V] {
	groups := make(map[L][]Example[L, V])
	for _, e := range ds.Examples() {
		groups[e.Label()] = append(groups[e.Label()], e)
	}
	return groups
}

/*
SplitByStride takes a dataset and a stride and returns two freshly
spawned datasets: first the examples at index positions that are
multiples of the stride (the tuning partition), then the remainder
(the training partition).
An error is returned for strides below 1.
*/
func SplitByStride[L, V comparable](ds Dataset[L, V], stride int) (Dataset[L, V], Dataset[L, V], error) {
	if stride < 1 {
		return nil, nil, ErrInvalidStride
	}
	var onStride, offStride []Example[L, V]
	for i, e := range ds.Examples() {
		if i%stride == 0 {
			onStride = append(onStride, e)
		} else {
			offStride = append(offStride, e)
		}
	}
	return ds.Spawn(onStride), ds.Spawn(offStride), nil
}

/*
ExcludingRange takes a dataset and a half-open index range [lower,
upper) and returns a freshly spawned dataset with the examples outside
the range, preserving their order.
An error is returned if the range does not fit the dataset.
*/
func ExcludingRange[L, V comparable](ds Dataset[L, V], lower, upper int) (Dataset[L, V], error) {
	if err := checkRange(ds, lower, upper); err != nil {
		return nil, err
	}
	examples := ds.Examples()
	subset := make([]Example[L, V], 0, len(examples)-(upper-lower))
	subset = append(subset, examples[:lower]...)
	subset = append(subset, examples[upper:]...)
	return ds.Spawn(subset), nil
}

/*
FromRange takes a dataset and a half-open index range [lower, upper)
and returns a freshly spawned dataset with only the examples inside the
range.
An error is returned if the range does not fit the dataset.
*/
func FromRange[L, V comparable](ds Dataset[L, V], lower, upper int) (Dataset[L, V], error) {
	if err := checkRange(ds, lower, upper); err != nil {
		return nil, err
	}
	subset := make([]Example[L, V], upper-lower)
	copy(subset, ds.Examples()[lower:upper])
	return ds.Spawn(subset), nil
}

func checkRange[L, V comparable](ds Dataset[L, V], lower, upper int) error {
	if lower < 0 || upper > ds.Size() || lower > upper {
		return fmt.Errorf("subsetting range [%d, %d) of %d examples: %w", lower, upper, ds.Size(), ErrRangeOutOfBounds)
	}
	return nil
}

/*
Entropy takes a dataset and returns the Shannon entropy, base 2, of the
label distribution over its examples, with the declared label domain as
the set of categories. Categories with zero occurrences contribute 0,
and the entropy of an empty dataset is 0.
An error is returned if an example carries a label outside the declared
label domain.
*/
func Entropy[L, V comparable](ds Dataset[L, V]) (float64, error) {
	size := ds.Size()
	if size == 0 {
		return 0.0, nil
	}
	counts := make(map[L]int, ds.Labels().Len())
	for _, e := range ds.Examples() {
		if !ds.Labels().Contains(e.Label()) {
			return 0.0, fmt.Errorf("computing entropy: %w", ErrLabelOutsideDomain)
		}
		counts[e.Label()]++
	}
	var entropy float64
	for _, c := range counts {
		p := float64(c) / float64(size)
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}
