package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key addresses a collection (ID == 0) or a single item of a collection.
type Key struct {
	Kind string
	ID   int64
}

// List returns the key of a whole collection.
func List(kind string) Key {
	return Key{Kind: kind}
}

// Item returns the key of a single record.
func Item(kind string, id int64) Key {
	return Key{Kind: kind, ID: id}
}

// String renders the key as stored by the backends: "books" or "books:7".
func (k Key) String() string {
	if k.ID == 0 {
		return k.Kind
	}
	return k.Kind + ":" + strconv.FormatInt(k.ID, 10)
}

// ParseKey is the inverse of Key.String.
func ParseKey(s string) (Key, error) {
	kind, id, found := strings.Cut(s, ":")
	if kind == "" {
		return Key{}, fmt.Errorf("invalid cache key %q", s)
	}
	if !found {
		return List(kind), nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return Key{}, fmt.Errorf("invalid cache key %q", s)
	}
	return Item(kind, n), nil
}

/* Entry is what a backend keeps for a key.
 * Data stays encoded so every backend stores the same bytes.
 */
type Entry struct {
	Data        json.RawMessage `json:"data"`
	FetchedAt   time.Time       `json:"fetchedAt"`
	Invalidated bool            `json:"invalidated"`
}

// Status is the freshness of an entry as seen by a reader.
type Status int

const (
	Fresh Status = iota + 1
	Stale
	Invalidated
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	case Invalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of an entry, used by diagnostics and tests.
// Err is the last fetch failure for the key, if any; it never replaces Data.
type Snapshot struct {
	Key       Key
	Data      json.RawMessage
	FetchedAt time.Time
	Status    Status
	Err       error
}
