/*
Package pgadapter provides a sqldataset.Adapter backed by a PostgreSQL
database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Imported to register the postgres driver.
	_ "github.com/lib/pq"
)

/*
Adapter implements sqldataset.Adapter over a PostgreSQL database.
*/
type Adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns a sqldataset.Adapter
over the database it points to, or an error if the URL is not a
PostgreSQL one or the database cannot be opened.
*/
func New(dbURL string) (*Adapter, error) {
	if !strings.HasPrefix(dbURL, "postgresql://") && !strings.HasPrefix(dbURL, "postgres://") {
		return nil, fmt.Errorf("%q is not a PostgreSQL connection URL", dbURL)
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %v", err)
	}
	return &Adapter{db}, nil
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) Close() error {
	return a.db.Close()
}
