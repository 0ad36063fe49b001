package repositories

import "context"

// ContentRepository fetches raw text over HTTP (raw snippet files, remote includes).
type ContentRepository interface {
	Fetch(ctx context.Context, url string) (string, error)
}
