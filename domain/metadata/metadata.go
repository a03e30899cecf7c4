/*
Package metadata provides methods to parse dataset metadata from YAML
documents: the ordered feature names, the feature-value and label
universes and the default label.
*/
package metadata

import (
	"fmt"
	"os"

	"sapling/domain"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the classification problem a dataset belongs to:
which features each example carries (in column order), which values
those features may take, which labels examples may carry and the
default label collaborators supply for datasets that cannot otherwise
determine one.
*/
type Metadata struct {
	Features     []string `yaml:"features"`
	Values       []string `yaml:"values"`
	Labels       []string `yaml:"labels"`
	DefaultLabel string   `yaml:"default_label"`
}

/*
Read takes a slice of bytes with a metadata specification in YML and
returns the parsed Metadata or an error.
The YML is expected to be an object with a features property listing
the feature names in order, a values property listing every legal
feature value, a labels property listing every legal label and a
default_label property.
*/
func Read(md []byte) (*Metadata, error) {
	m := &Metadata{}
	err := yaml.Unmarshal(md, m)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(m.Features) == 0 {
		return nil, fmt.Errorf("metadata declares no features")
	}
	if len(m.Values) == 0 {
		return nil, fmt.Errorf("metadata declares no feature values")
	}
	if len(m.Labels) == 0 {
		return nil, fmt.Errorf("metadata declares no labels")
	}
	return m, nil
}

/*
ReadFromFile takes a filepath string, reads its contents and uses Read
to parse it and return the Metadata or an error. If the file indicated
by the filepath cannot be opened for reading an error will be returned.
*/
func ReadFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	m, err := Read(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return m, err
}

/*
LabelDomain returns the label universe of the metadata as a domain in
declared order.
*/
func (m *Metadata) LabelDomain() *domain.Domain[string] {
	return domain.New(m.Labels)
}

/*
ValueDomain returns the feature-value universe of the metadata as a
domain in declared order.
*/
func (m *Metadata) ValueDomain() *domain.Domain[string] {
	return domain.New(m.Values)
}
