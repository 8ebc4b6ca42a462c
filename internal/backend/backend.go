// Package backend selects and constructs the persistence gateway the
// application talks to: the remote tracker API, a local SQLite database, or
// an in-memory store.
package backend

import (
	"fintrack/internal/gateway"
)

// Type names a gateway implementation.
type Type string

const (
	RemoteBackend Type = "remote"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case RemoteBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{RemoteBackend, SQLiteBackend, MemoryBackend}
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result carries the constructed gateway and its optional cleanup.
type Result struct {
	Gateway gateway.Gateway
	Cleanup CleanupFunc
}

// Config holds what each backend needs to come up.
type Config struct {
	Type Type

	// Remote backend
	RemoteBaseURL  string
	RemoteEmail    string
	RemotePassword string

	// SQLite backend
	SQLiteDBPath string
}
