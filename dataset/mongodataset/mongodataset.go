/*
Package mongodataset loads labeled datasets from a MongoDB collection.

Each document is expected to carry a string field per declared feature
plus a label field. Documents are read into an in-memory dataset bound
to the metadata's domains: the core's stride and range subsetting is
positional, so the Mongo backend acts as a loader rather than a query
push-down.
*/
package mongodataset

import (
	"fmt"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"sapling/dataset"
	"sapling/domain/metadata"
)

// LabelField is the name of the document field carrying example labels.
const LabelField = "label"

/*
ReadDataset takes a MongoDB session, a collection name and the dataset
metadata, reads every document of the collection on the session's
default database and returns a Dataset with the examples read, bound to
the metadata's domains, or an error.
*/
func ReadDataset(session *mgo.Session, collection string, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	labels := md.LabelDomain()
	values := md.ValueDomain()
	var examples []dataset.Example[string, string]
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	for iter.Next(&doc) {
		label, err := stringField(doc, LabelField)
		if err != nil {
			return nil, fmt.Errorf("document %d of collection %s: %v", len(examples)+1, collection, err)
		}
		if !labels.Contains(label) {
			return nil, fmt.Errorf("document %d of collection %s: label %q: %w", len(examples)+1, collection, label, dataset.ErrLabelOutsideDomain)
		}
		featValues := make([]string, len(md.Features))
		for i, f := range md.Features {
			v, err := stringField(doc, f)
			if err != nil {
				return nil, fmt.Errorf("document %d of collection %s: %v", len(examples)+1, collection, err)
			}
			if !values.Contains(v) {
				return nil, fmt.Errorf("document %d of collection %s: feature %s value %q: %w", len(examples)+1, collection, f, v, dataset.ErrValueOutsideDomain)
			}
			featValues[i] = v
		}
		examples = append(examples, dataset.NewExample(label, featValues))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return dataset.New(examples, labels, values, md.DefaultLabel), nil
}

func stringField(doc bson.M, field string) (string, error) {
	v, ok := doc[field]
	if !ok {
		return "", fmt.Errorf("field %s missing", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s holds a %T instead of a string", field, v)
	}
	return s, nil
}
