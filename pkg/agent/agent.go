package agent

import (
	"context"
	"errors"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

// Agent accepts a natural-language message for a given agent id and returns
// the normalized response envelope. One call, one network exchange; callers
// own retries (there are none) and user-facing messaging.
type Agent interface {
	Invoke(ctx context.Context, agentID, message string) (*model.AgentResponse, error)
}

var (
	// ErrContactFailed covers transport failures: network errors and
	// non-success status codes.
	ErrContactFailed = errors.New("agent contact failed")

	// ErrBadPayload covers responses that arrived but carried no
	// recoverable JSON.
	ErrBadPayload = errors.New("agent response unparsable")
)
