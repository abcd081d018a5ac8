package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrAllSourcesFailed signals that every enabled source errored. It is the
// only fetch-side condition surfaced to the caller as a failure; any partial
// success is an overall success with diagnostics attached.
var ErrAllSourcesFailed = errors.New("all job sources failed")

// ErrorKind classifies a per-source failure
type ErrorKind string

const (
	KindTimeout  ErrorKind = "timeout"
	KindUpstream ErrorKind = "upstream"

	// KindConfig marks registry-build faults, e.g. rejected credentials.
	// Absent configuration is not a fault; it just disables the source.
	KindConfig ErrorKind = "config"
)

// SourceError records one source's failure without failing the whole fetch
type SourceError struct {
	Source string
	Kind   ErrorKind
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Source, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func classifySourceError(source string, err error) *SourceError {
	kind := KindUpstream
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}

	return &SourceError{Source: source, Kind: kind, Err: err}
}
