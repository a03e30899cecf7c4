/*
Package tsv reads labeled datasets from compact tab-delimited record
streams.

Each line is one record with three tab-separated fields: a free-form
identifier, a single-character label, and a string of characters giving
the value of each feature in order. All records must carry the same
number of features. The label and feature-value domains are accumulated
from the full stream, in order of first appearance, so the resulting
dataset's universes cover exactly what the stream declares.
*/
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"sapling/dataset"
	"sapling/domain"
)

/*
ReadDataset takes an io.Reader for a tab-delimited record stream and a
default label and returns a Dataset with the records parsed from the
reader or an error. Blank lines are skipped.
*/
func ReadDataset(reader io.Reader, defaultLabel string) (dataset.Dataset[string, string], error) {
	var labelValues, featValues []string
	seenLabels := make(map[string]bool)
	seenValues := make(map[string]bool)
	var rawLabels []string
	var rawVectors [][]string
	features := -1
	scanner := bufio.NewScanner(reader)
	for l := 1; scanner.Scan(); l++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("parsing line %d: expected 3 tab-delimited fields, got %d", l, len(fields))
		}
		label := fields[1]
		if len(label) != 1 {
			return nil, fmt.Errorf("parsing line %d: label %q is not a single character", l, label)
		}
		votes := strings.Split(fields[2], "")
		if features < 0 {
			features = len(votes)
		} else if len(votes) != features {
			return nil, fmt.Errorf("parsing line %d: record has %d features, previous records have %d", l, len(votes), features)
		}
		if !seenLabels[label] {
			seenLabels[label] = true
			labelValues = append(labelValues, label)
		}
		for _, v := range votes {
			if !seenValues[v] {
				seenValues[v] = true
				featValues = append(featValues, v)
			}
		}
		rawLabels = append(rawLabels, label)
		rawVectors = append(rawVectors, votes)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %v", err)
	}
	labels := domain.New(labelValues)
	values := domain.New(featValues)
	examples := make([]dataset.Example[string, string], len(rawLabels))
	for i, label := range rawLabels {
		examples[i] = dataset.NewExample(label, rawVectors[i])
	}
	return dataset.New(examples, labels, values, defaultLabel), nil
}

/*
ReadDatasetFromFilePath takes a filepath string and a default label,
opens the file the filepath points to (os.Stdin when the filepath is
empty) and uses ReadDataset to return a Dataset read from it or an
error.
*/
func ReadDatasetFromFilePath(filepath string, defaultLabel string) (dataset.Dataset[string, string], error) {
	var f *os.File
	if filepath == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %v", filepath, err)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(f, defaultLabel)
	if err != nil {
		err = fmt.Errorf("parsing TSV file %s: %v", filepath, err)
	}
	return ds, err
}
