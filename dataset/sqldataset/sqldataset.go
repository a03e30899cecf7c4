/*
Package sqldataset loads labeled datasets from SQL databases.

It expects a table with one text column per declared feature plus a
label column, and reads every row into an in-memory dataset bound to
the metadata's domains: the core's stride and range subsetting is
positional, so SQL backends act as loaders rather than query
push-downs. Concrete databases are plugged in through the Adapter
interface; see the sqlite3adapter and pgadapter subpackages.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sapling/dataset"
	"sapling/domain/metadata"
)

// LabelColumn is the name of the column carrying example labels.
const LabelColumn = "label"

/*
Adapter is an interface giving access to a specific SQL database
engine.

Its DB method returns the open handle to the database. Its Close
method releases it.
*/
type Adapter interface {
	DB() *sql.DB
	Close() error
}

/*
ReadDataset takes a context, an adapter, a table name and the dataset
metadata, reads every row of the table and returns a Dataset with the
examples read, bound to the metadata's domains, or an error. Rows are
read in an unspecified but stable order left to the database.
*/
func ReadDataset(ctx context.Context, adapter Adapter, table string, md *metadata.Metadata) (dataset.Dataset[string, string], error) {
	labels := md.LabelDomain()
	values := md.ValueDomain()
	columns := make([]string, 0, len(md.Features)+1)
	for _, f := range md.Features {
		columns = append(columns, quoteIdentifier(f))
	}
	columns = append(columns, quoteIdentifier(LabelColumn))
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), quoteIdentifier(table))
	rows, err := adapter.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var examples []dataset.Example[string, string]
	fields := make([]string, len(md.Features)+1)
	scanTargets := make([]interface{}, len(fields))
	for i := range fields {
		scanTargets[i] = &fields[i]
	}
	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", len(examples)+1, table, err)
		}
		label := fields[len(fields)-1]
		if !labels.Contains(label) {
			return nil, fmt.Errorf("row %d of table %s: label %q: %w", len(examples)+1, table, label, dataset.ErrLabelOutsideDomain)
		}
		featValues := make([]string, len(md.Features))
		for i, v := range fields[:len(fields)-1] {
			if !values.Contains(v) {
				return nil, fmt.Errorf("row %d of table %s: feature %s value %q: %w", len(examples)+1, table, md.Features[i], v, dataset.ErrValueOutsideDomain)
			}
			featValues[i] = v
		}
		examples = append(examples, dataset.NewExample(label, featValues))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.New(examples, labels, values, md.DefaultLabel), nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}
