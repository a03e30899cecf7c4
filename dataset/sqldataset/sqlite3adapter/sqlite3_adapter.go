/*
Package sqlite3adapter provides a sqldataset.Adapter backed by an
SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	// Imported to register the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

/*
Adapter implements sqldataset.Adapter over an SQLite3 database file.
*/
type Adapter struct {
	db *sql.DB
}

/*
New takes the filepath to an SQLite3 database file and a limit to the
number of open connections (0 for no limit) and returns a
sqldataset.Adapter over it or an error if the database cannot be
opened.
*/
func New(filepath string, maxConns int) (*Adapter, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared", filepath))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database at %s: %v", filepath, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &Adapter{db}, nil
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) Close() error {
	return a.db.Close()
}
