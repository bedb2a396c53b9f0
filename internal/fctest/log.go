package fctest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a logger that writes through t,
// so log output is attributed to the owning test.
func NewLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slogt.New(t)
}
