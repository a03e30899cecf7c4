package dataset

import "fmt"

/*
Example represents a labeled record to learn from or to classify.

Its Label method returns the label the record carries. Its Feature
method returns the value of the feature at the given index, and its
Features method the length of the record's feature vector. The core
never inspects a record beyond these three capabilities.
*/
type Example[L, V comparable] interface {
	Label() L
	Feature(i int) V
	Features() int
}

type example[L, V comparable] struct {
	label  L
	values []V
}

/*
NewExample takes a label and a feature vector and returns an Example
carrying them.
*/
func NewExample[L, V comparable](label L, values []V) Example[L, V] {
	return &example[L, V]{label, values}
}

func (e *example[L, V]) Label() L {
	return e.label
}

func (e *example[L, V]) Feature(i int) V {
	return e.values[i]
}

func (e *example[L, V]) Features() int {
	return len(e.values)
}

func (e *example[L, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.label, e.values)
}

/*
Vector is a bare feature vector with no label: a record to classify
rather than to learn from. It satisfies the feature-lookup capability
classification requires.
*/
type Vector[V comparable] []V

/*
Feature returns the value of the feature at the given index.
*/
func (v Vector[V]) Feature(i int) V {
	return v[i]
}

/*
Features returns the length of the vector.
*/
func (v Vector[V]) Features() int {
	return len(v)
}
