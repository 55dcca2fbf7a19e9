package singleton

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Database is the shared resource handle returned by Instance.
//
// Database has no exported constructor; the only way to obtain one is
// Instance.
type Database struct {
	mu       sync.Mutex
	out      io.Writer
	executed int
}

var instance = NewLazy(func() *Database {
	return &Database{out: os.Stdout}
})

// Instance returns the process-wide Database, creating it on first call.
func Instance() *Database {
	return instance.Get()
}

// Query emits the command as an executed query. The command is not validated.
func (db *Database) Query(command string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.executed++
	_, _ = fmt.Fprintf(db.out, "Executing query: %s\n", command)
}

// SetOutput redirects the lines written by Query. A nil writer restores stdout.
func (db *Database) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	db.mu.Lock()
	db.out = w
	db.mu.Unlock()
}

// Executed returns how many queries ran through this Database.
func (db *Database) Executed() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.executed
}
