package internal

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// TokenCache wraps a TokenProvider so the token is fetched once and reused.
// Concurrent first callers share one fetch. A failed fetch is not kept; the
// next call tries again.
type TokenCache struct {
	source TokenProvider
	group  singleflight.Group

	mu    sync.RWMutex
	token string
}

// NewTokenCache creates a TokenCache over source.
func NewTokenCache(source TokenProvider) *TokenCache {
	return &TokenCache{source: source}
}

func (c *TokenCache) cached() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// GetToken returns the cached token, fetching it on first use. No lock is
// held during the fetch; a caller whose ctx ends stops waiting for it.
func (c *TokenCache) GetToken(ctx context.Context) (string, error) {
	if token := c.cached(); token != "" {
		return token, nil
	}

	ch := c.group.DoChan("token", func() (any, error) {
		if token := c.cached(); token != "" {
			return token, nil
		}
		token, err := c.source.GetToken(ctx)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.token = token
		c.mu.Unlock()
		return token, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
