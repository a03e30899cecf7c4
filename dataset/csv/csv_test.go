package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapling/dataset"
	"sapling/domain/metadata"
)

func testMetadata() *metadata.Metadata {
	return &metadata.Metadata{
		Features:     []string{"outlook", "windy"},
		Values:       []string{"sunny", "rainy", "y", "n"},
		Labels:       []string{"play", "stay"},
		DefaultLabel: "stay",
	}
}

func TestReadDataset(t *testing.T) {
	stream := strings.Join([]string{
		"outlook,windy,label",
		"sunny,n,play",
		"rainy,y,stay",
	}, "\n")
	ds, err := ReadDataset(strings.NewReader(stream), testMetadata())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Size())
	first := ds.Examples()[0]
	assert.Equal(t, "play", first.Label())
	assert.Equal(t, "sunny", first.Feature(0))
	assert.Equal(t, "n", first.Feature(1))
	assert.Equal(t, []string{"play", "stay"}, ds.Labels().Values())
	assert.Equal(t, "stay", ds.DefaultLabel())
}

func TestReadDatasetReordersColumnsByHeader(t *testing.T) {
	stream := strings.Join([]string{
		"label,windy,outlook",
		"play,n,sunny",
	}, "\n")
	ds, err := ReadDataset(strings.NewReader(stream), testMetadata())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Size())
	e := ds.Examples()[0]
	// Features come back in metadata order regardless of the column
	// order of the stream.
	assert.Equal(t, "sunny", e.Feature(0))
	assert.Equal(t, "n", e.Feature(1))
	assert.Equal(t, "play", e.Label())
}

func TestReadDatasetRejectsMissingLabelColumn(t *testing.T) {
	stream := "outlook,windy\nsunny,n\n"
	_, err := ReadDataset(strings.NewReader(stream), testMetadata())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label")
}

func TestReadDatasetRejectsMissingFeatureColumn(t *testing.T) {
	stream := "outlook,label\nsunny,play\n"
	_, err := ReadDataset(strings.NewReader(stream), testMetadata())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "windy")
}

func TestReadDatasetRejectsLabelOutsideDomain(t *testing.T) {
	stream := "outlook,windy,label\nsunny,n,sleep\n"
	_, err := ReadDataset(strings.NewReader(stream), testMetadata())
	assert.ErrorIs(t, err, dataset.ErrLabelOutsideDomain)
}

func TestReadDatasetRejectsValueOutsideDomain(t *testing.T) {
	stream := "outlook,windy,label\ncloudy,n,play\n"
	_, err := ReadDataset(strings.NewReader(stream), testMetadata())
	assert.ErrorIs(t, err, dataset.ErrValueOutsideDomain)
}

func TestReadInstances(t *testing.T) {
	stream := strings.Join([]string{
		"outlook,windy",
		"sunny,n",
		"rainy,y",
	}, "\n")
	instances, err := ReadInstances(strings.NewReader(stream), testMetadata())
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, dataset.Vector[string]{"sunny", "n"}, instances[0])
	assert.Equal(t, dataset.Vector[string]{"rainy", "y"}, instances[1])
}

func TestReadInstancesIgnoresALabelColumn(t *testing.T) {
	stream := "outlook,windy,label\nsunny,n,play\n"
	instances, err := ReadInstances(strings.NewReader(stream), testMetadata())
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, 2, instances[0].Features())
}

func TestWriteDataset(t *testing.T) {
	md := testMetadata()
	examples := []dataset.Example[string, string]{
		dataset.NewExample("play", []string{"sunny", "n"}),
		dataset.NewExample("stay", []string{"rainy", "y"}),
	}
	ds := dataset.New(examples, md.LabelDomain(), md.ValueDomain(), md.DefaultLabel)
	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds, md))
	assert.Equal(t, "outlook,windy,label\nsunny,n,play\nrainy,y,stay\n", buf.String())
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	md := testMetadata()
	examples := []dataset.Example[string, string]{
		dataset.NewExample("play", []string{"sunny", "n"}),
		dataset.NewExample("stay", []string{"rainy", "y"}),
	}
	ds := dataset.New(examples, md.LabelDomain(), md.ValueDomain(), md.DefaultLabel)
	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds, md))
	read, err := ReadDataset(&buf, md)
	require.NoError(t, err)
	require.Equal(t, ds.Size(), read.Size())
	for i, e := range ds.Examples() {
		assert.Equal(t, e.Label(), read.Examples()[i].Label())
		assert.Equal(t, e.Feature(0), read.Examples()[i].Feature(0))
		assert.Equal(t, e.Feature(1), read.Examples()[i].Feature(1))
	}
}
