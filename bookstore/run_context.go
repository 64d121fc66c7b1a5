package bookstore

import (
	"net/http"

	"go.uber.org/zap"
)

// RunContext holds the configuration shared by every request made during one batch run.
// It is immutable after construction.
type RunContext struct {
	Config Config
	RunID  string

	// RecordDir, when set, records every HTTP exchange into the directory
	// so it can be replayed later.
	RecordDir string

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper

	Logger *zap.Logger
}

func (rc *RunContext) logger() *zap.Logger {
	if rc == nil || rc.Logger == nil {
		return zap.NewNop()
	}
	return rc.Logger
}
