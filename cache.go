package postzaper

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested tool does not exist.
var ErrNotFound = sql.ErrNoRows

// ToolCache is an in-memory cache of the tool catalog and its categories
// with a TTL.
type ToolCache struct {
	mu         sync.RWMutex
	tools      []Tool
	categories []string
	fetched    time.Time
	ttl        time.Duration
	store      *Store
}

// NewToolCache creates a ToolCache backed by the given Store.
func NewToolCache(s *Store, ttl time.Duration) *ToolCache {
	return &ToolCache{store: s, ttl: ttl}
}

func (c *ToolCache) valid() bool {
	return c.tools != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ToolCache) Invalidate() {
	c.mu.Lock()
	c.tools = nil
	c.categories = nil
	c.mu.Unlock()
}

func (c *ToolCache) load() error {
	if c.valid() {
		return nil
	}
	tools, err := c.store.ListTools("")
	if err != nil {
		return err
	}
	categories, err := c.store.ListCategories()
	if err != nil {
		return err
	}
	if tools == nil {
		tools = []Tool{}
	}
	c.tools = tools
	c.categories = categories
	c.fetched = time.Now()
	return nil
}

// ensureLoaded takes the read lock first and only upgrades when a reload is
// due.
func (c *ToolCache) ensureLoaded() ([]Tool, []string, error) {
	c.mu.RLock()
	if c.valid() {
		tools, categories := c.tools, c.categories
		c.mu.RUnlock()
		return tools, categories, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.tools, c.categories, nil
}

// ListTools returns tools in catalog order, optionally filtered by category.
func (c *ToolCache) ListTools(category string) ([]Tool, error) {
	tools, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if category == "" {
		return tools, nil
	}
	normalized := normalizeCategory(category)
	var filtered []Tool
	for _, t := range tools {
		if t.Category == normalized {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// ListCategories returns the cached categories.
func (c *ToolCache) ListCategories() ([]string, error) {
	_, categories, err := c.ensureLoaded()
	return categories, err
}

// GetTool returns a single tool by slug from the cache.
func (c *ToolCache) GetTool(slug string) (Tool, error) {
	tools, _, err := c.ensureLoaded()
	if err != nil {
		return Tool{}, err
	}
	for _, t := range tools {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Tool{}, ErrNotFound
}
