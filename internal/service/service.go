// Package service holds the use cases behind the HTTP handlers: asset key
// minting and storage writes, record CRUD with boundary validation, the
// poster misroute repair, and URL normalization on every read.
package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("record not found")
	ErrReaderNil   = errors.New("reader is nil")
	ErrKeyRequired = errors.New("key is required")

	// ErrInvalid marks a validation failure; wrap it with the specific reason.
	ErrInvalid = errors.New("invalid input")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// logJSON emits one structured log line, matching the migration/tracing logs.
func logJSON(fields map[string]any) {
	fields["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := fields["level"]; !ok {
		fields["level"] = "info"
	}
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
