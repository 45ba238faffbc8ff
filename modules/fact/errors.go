package fact

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTopology = errors.New("invalid fact topology")
	ErrInvalidArtifact = errors.New("invalid execution artifact")
)

// TopologyError wraps deterministic fact topology validation failures.
type TopologyError struct {
	Kind error
	Msg  string
}

func (e *TopologyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *TopologyError) Unwrap() error { return e.Kind }

func topologyf(format string, args ...any) error {
	return &TopologyError{Kind: ErrInvalidTopology, Msg: fmt.Sprintf(format, args...)}
}

func artifactf(format string, args ...any) error {
	return &TopologyError{Kind: ErrInvalidArtifact, Msg: fmt.Sprintf(format, args...)}
}
