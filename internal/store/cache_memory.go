package store

import (
	"context"
	"sync"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
)

// MemoryCache is an in-process Cache. It backs tests and cache-less
// deployments where Redis is not configured.
type MemoryCache struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
	sessions map[string]bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		profiles: make(map[string]models.UserProfile),
		sessions: make(map[string]bool),
	}
}

func (c *MemoryCache) GetProfile(_ context.Context, identity string) (models.UserProfile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[identity]
	if !ok {
		return models.UserProfile{}, ErrNotFound
	}
	return p.Clone(), nil
}

func (c *MemoryCache) SetProfile(_ context.Context, profile models.UserProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[profile.Email] = profile.Clone()
	return nil
}

func (c *MemoryCache) DeleteProfile(_ context.Context, identity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.profiles, identity)
	return nil
}

func (c *MemoryCache) MarkSession(_ context.Context, identity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[identity] = true
	return nil
}

func (c *MemoryCache) ClearSession(_ context.Context, identity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, identity)
	return nil
}
