package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"

	"sapling/dataset"
	"sapling/dataset/csv"
	"sapling/dataset/mongodataset"
	"sapling/dataset/sqldataset"
	"sapling/dataset/sqldataset/pgadapter"
	"sapling/dataset/sqldataset/sqlite3adapter"
	"sapling/dataset/tsv"
	"sapling/domain/metadata"
)

// inputConfig holds the flags shared by every command that reads a
// labeled dataset: the input to read from and how to interpret it.
type inputConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	defaultLabel  string
	table         string
	maxDBConns    int
}

func (ic *inputConfig) registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(ic.dataInput), "input", "i", "", "path to an input CSV file, TSV (.tsv) record file or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to read the dataset from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(ic.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features, feature values and labels of the dataset (required except for TSV input)")
	cmd.PersistentFlags().StringVar(&(ic.defaultLabel), "default-label", "?", "label reported when a dataset cannot resolve one (TSV input only; other inputs take it from the metadata)")
	cmd.PersistentFlags().StringVar(&(ic.table), "table", "examples", "table (SQL inputs) or collection (MongoDB inputs) holding the dataset")
	cmd.PersistentFlags().IntVar(&(ic.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

/*
readDataset resolves the input flag: a mongodb:// URL is read as a
Mongo collection, a postgresql:// URL as a PostgreSQL table, a .db
file as an SQLite3 table, a .tsv file as compact tab-delimited
records, and anything else (including STDIN when the flag is empty)
as CSV.
*/
func (ic *inputConfig) readDataset(ctx context.Context) (dataset.Dataset[string, string], error) {
	if strings.HasSuffix(ic.dataInput, ".tsv") {
		ic.Logger().Infof("Reading records from %s...", ic.dataInput)
		return tsv.ReadDatasetFromFilePath(ic.dataInput, ic.defaultLabel)
	}
	md, err := ic.metadata()
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(ic.dataInput, "mongodb://") {
		return ic.mongoDataset(md)
	}
	if strings.HasPrefix(ic.dataInput, "postgresql://") || strings.HasPrefix(ic.dataInput, "postgres://") {
		return ic.postgreSQLDataset(ctx, md)
	}
	if strings.HasSuffix(ic.dataInput, ".db") {
		return ic.sqlite3Dataset(ctx, md)
	}
	if ic.dataInput == "" {
		ic.Logger().Infof("Reading dataset from STDIN...")
	} else {
		ic.Logger().Infof("Reading dataset from %s...", ic.dataInput)
	}
	return csv.ReadDatasetFromFilePath(ic.dataInput, md)
}

func (ic *inputConfig) metadata() (*metadata.Metadata, error) {
	if ic.metadataInput == "" {
		return nil, fmt.Errorf("required metadata flag was not set")
	}
	ic.Logger().Infof("Reading metadata from %s...", ic.metadataInput)
	return metadata.ReadFromFile(ic.metadataInput)
}

func (ic *inputConfig) sqlite3Dataset(ctx context.Context, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	ic.Logger().Infof("Creating SQLite3 adapter for file %s...", ic.dataInput)
	adapter, err := sqlite3adapter.New(ic.dataInput, ic.maxDBConns)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	ic.Logger().Infof("Reading dataset from table %s of %s...", ic.table, ic.dataInput)
	return sqldataset.ReadDataset(ctx, adapter, ic.table, md)
}

func (ic *inputConfig) postgreSQLDataset(ctx context.Context, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	ic.Logger().Infof("Creating PostgreSQL adapter for url %s...", ic.dataInput)
	adapter, err := pgadapter.New(ic.dataInput)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	ic.Logger().Infof("Reading dataset from table %s...", ic.table)
	return sqldataset.ReadDataset(ctx, adapter, ic.table, md)
}

func (ic *inputConfig) mongoDataset(md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	ic.Logger().Infof("Dialing MongoDB at %s...", ic.dataInput)
	session, err := mgo.Dial(ic.dataInput)
	if err != nil {
		return nil, fmt.Errorf("dialing mongodb at %s: %v", ic.dataInput, err)
	}
	defer session.Close()
	ic.Logger().Infof("Reading dataset from collection %s...", ic.table)
	return mongodataset.ReadDataset(session, ic.table, md)
}
