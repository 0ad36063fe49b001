package commands

import (
	"context"
	"time"
)

// SetWait replaces the post-mutation delay for testing.
func (it *CreateIssuesCommand) SetWait(wait func(ctx context.Context, d time.Duration) error) {
	it.wait = wait
}

// WaitFor exports waitFor for testing.
var WaitFor = waitFor //nolint:gochecknoglobals // test export
