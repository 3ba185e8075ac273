package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

var memoryDBSeq atomic.Int64

// NewSQLiteMemoryDB opens a shared-cache in-memory sqlite database.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}

// NewIsolatedSQLiteMemoryDB opens an in-memory database no other caller sees.
func NewIsolatedSQLiteMemoryDB() (*sql.DB, error) {
	name := fmt.Sprintf("colorbox_%d", memoryDBSeq.Add(1))
	return sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
}
