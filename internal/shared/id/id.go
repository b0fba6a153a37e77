// Package id provides centralized ID generation for the service.
//
// Two ID families exist:
//   - ConnID: a process-lifetime-unique, monotonically increasing counter
//     assigned to each WebSocket connection on upgrade.
//   - RequestID: a prefixed ULID attached to log entries for correlating
//     one dispatched request across log lines.
//
// Connection ids are the only state shared across connections; they are
// read and advanced through a single atomic increment-and-fetch.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// ConnID identifies one WebSocket connection for the process lifetime.
type ConnID uint64

// RequestID identifies one dispatched request in logs.
type RequestID string

// RequestPrefix marks request ids in log output.
const RequestPrefix = "req"

var connCounter atomic.Uint64

// NextConnID returns the next connection identifier. Ids start at 1 and
// are strictly increasing for the lifetime of the process.
func NextConnID() ConnID {
	return ConnID(connCounter.Add(1))
}

// Generator generates ULIDs from a guarded entropy source.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a ULID generator with cryptographic entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRequestID generates a new request correlation id.
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// String methods for ID types.
func (id ConnID) String() string    { return fmt.Sprintf("%d", uint64(id)) }
func (id RequestID) String() string { return string(id) }
