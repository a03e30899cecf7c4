/*
Package domain models the fixed universes of legal values a classification
problem is declared over: the set of labels examples may carry and the set
of values their features may take.

A Domain is established once, from the full unsplit data, and is shared
unchanged by every dataset subset and every tree node derived from it:
subsets must never invent or drop possible values, since a grown tree has
to classify any value present in the original universe even if absent from
a node's local sample.
*/
package domain

/*
Domain is an immutable, ordered collection of distinct values.

The declared order is meaningful: algorithms that need a deterministic
tie-break (majority-vote label ties, traversal order over children keyed
by value) resolve it using the order in which values were declared.
*/
type Domain[T comparable] struct {
	values  []T
	indexes map[T]int
}

/*
New takes a slice of values and returns a Domain containing them.
Duplicates are discarded, keeping the first occurrence, so the
domain preserves the declared order of its values.
*/
func New[T comparable](values []T) *Domain[T] {
	d := &Domain[T]{indexes: make(map[T]int, len(values))}
	for _, v := range values {
		if _, ok := d.indexes[v]; ok {
			continue
		}
		d.indexes[v] = len(d.values)
		d.values = append(d.values, v)
	}
	return d
}

/*
Values returns the values of the domain in declared order. The returned
slice is shared: callers must not modify it.
*/
func (d *Domain[T]) Values() []T {
	return d.values
}

/*
Contains returns whether the given value belongs to the domain.
*/
func (d *Domain[T]) Contains(v T) bool {
	_, ok := d.indexes[v]
	return ok
}

/*
Index returns the position of the given value in the declared order,
or -1 if the value does not belong to the domain.
*/
func (d *Domain[T]) Index(v T) int {
	i, ok := d.indexes[v]
	if !ok {
		return -1
	}
	return i
}

/*
Len returns the number of values in the domain.
*/
func (d *Domain[T]) Len() int {
	return len(d.values)
}
