package httpclient

import (
	"context"
	"net/http"
)

// ContentRepository implements repositories.ContentRepository over plain HTTP GETs.
type ContentRepository struct {
	client *http.Client
}

func NewContentRepository(client *http.Client) *ContentRepository {
	return &ContentRepository{client: client}
}

// Fetch returns the response body of url as text.
func (r *ContentRepository) Fetch(ctx context.Context, url string) (string, error) {
	body, err := Get(ctx, r.client, url, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
