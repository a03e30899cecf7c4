/*
Package csv reads and writes labeled datasets as CSV streams.

The header or first row of a dataset stream is expected to consist of
the names of every feature declared in the metadata, in any order, plus
the label column. The remaining rows hold values valid for the declared
feature-value domain and labels valid for the declared label domain.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sapling/dataset"
	"sapling/domain/metadata"
)

// LabelColumn is the name of the column carrying example labels.
const LabelColumn = "label"

/*
ReadDataset takes an io.Reader for a CSV stream and the dataset
metadata and returns a Dataset with the examples parsed from the
reader, bound to the metadata's domains, or an error.
*/
func ReadDataset(reader io.Reader, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	labels := md.LabelDomain()
	values := md.ValueDomain()
	var examples []dataset.Example[string, string]
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featCols, labelCol, err := parseHeader(header, md)
	if err != nil {
		return nil, err
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("parsing header: %s column missing", LabelColumn)
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		label := row[labelCol]
		if !labels.Contains(label) {
			return nil, fmt.Errorf("parsing line %d: label %q: %w", l, label, dataset.ErrLabelOutsideDomain)
		}
		featValues := make([]string, len(featCols))
		for i, col := range featCols {
			v := row[col]
			if !values.Contains(v) {
				return nil, fmt.Errorf("parsing line %d: feature %s value %q: %w", l, md.Features[i], v, dataset.ErrValueOutsideDomain)
			}
			featValues[i] = v
		}
		examples = append(examples, dataset.NewExample(label, featValues))
	}
	return dataset.New(examples, labels, values, md.DefaultLabel), nil
}

/*
ReadDatasetFromFilePath takes a filepath string and the dataset
metadata, opens the file the filepath points to (os.Stdin when the
filepath is empty) and uses ReadDataset to return a Dataset read from
it or an error.
*/
func ReadDatasetFromFilePath(filepath string, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	f, err := openOrStdin(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := ReadDataset(f, md)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, err
}

/*
ReadInstances takes an io.Reader for a CSV stream and the dataset
metadata and returns the unlabeled feature vectors parsed from the
reader, one per row, or an error. The header is expected to name every
declared feature; a label column, if present, is ignored.
*/
func ReadInstances(reader io.Reader, md *metadata.Metadata) ([]dataset.Vector[string], error) {
	values := md.ValueDomain()
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featCols, _, err := parseHeader(header, md)
	if err != nil {
		return nil, err
	}
	var instances []dataset.Vector[string]
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		featValues := make(dataset.Vector[string], len(featCols))
		for i, col := range featCols {
			v := row[col]
			if !values.Contains(v) {
				return nil, fmt.Errorf("parsing line %d: feature %s value %q: %w", l, md.Features[i], v, dataset.ErrValueOutsideDomain)
			}
			featValues[i] = v
		}
		instances = append(instances, featValues)
	}
	return instances, nil
}

/*
ReadInstancesFromFilePath takes a filepath string and the dataset
metadata, opens the file the filepath points to (os.Stdin when the
filepath is empty) and uses ReadInstances to return the unlabeled
feature vectors read from it or an error.
*/
func ReadInstancesFromFilePath(filepath string, md *metadata.Metadata) ([]dataset.Vector[string], error) {
	f, err := openOrStdin(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	instances, err := ReadInstances(f, md)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return instances, err
}

/*
WriteDataset takes an io.Writer, a dataset and the dataset metadata and
dumps the dataset to the writer in CSV format, feature columns in
metadata order followed by the label column. It returns an error if
writing fails.
*/
func WriteDataset(writer io.Writer, ds dataset.Dataset[string, string], md *metadata.Metadata) error {
	w := csv.NewWriter(writer)
	record := make([]string, len(md.Features)+1)
	copy(record, md.Features)
	record[len(record)-1] = LabelColumn
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for _, e := range ds.Examples() {
		for i := range md.Features {
			record[i] = e.Feature(i)
		}
		record[len(record)-1] = e.Label()
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %v", err)
		}
	}
	w.Flush()
	return w.Error()
}

func parseHeader(header []string, md *metadata.Metadata) (featCols []int, labelCol int, err error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	featCols = make([]int, len(md.Features))
	for i, name := range md.Features {
		col, ok := cols[name]
		if !ok {
			return nil, 0, fmt.Errorf("parsing header: feature %s has no column", name)
		}
		featCols[i] = col
	}
	labelCol, ok := cols[LabelColumn]
	if !ok {
		labelCol = -1
	}
	return featCols, labelCol, nil
}

func openOrStdin(filepath string) (*os.File, error) {
	if filepath == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", filepath, err)
	}
	return f, nil
}
