package loader

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Cache memoizes loaded workbooks keyed by source path, invalidated when
// the file's modification time changes. It exists so repeated dashboard
// recomputations do not re-parse the source on every render; the loaded
// workbook is the only long-lived shared resource in the system.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	book    *models.WorkbookData
}

// NewCache creates an empty workbook cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Load returns the cached workbook for path when the file has not changed
// since it was cached, and loads and caches it otherwise.
func (c *Cache) Load(path string) (*models.WorkbookData, error) {
	info, err := os.Stat(path)
	if err == nil {
		c.mu.RLock()
		entry, ok := c.entries[path]
		c.mu.RUnlock()
		if ok && entry.modTime.Equal(info.ModTime()) {
			slog.Debug("workbook cache hit", slog.String("path", path))
			return entry.book, nil
		}
	}

	book, err := Load(path)
	if err != nil {
		return nil, err
	}

	if info != nil {
		c.mu.Lock()
		c.entries[path] = cacheEntry{modTime: info.ModTime(), book: book}
		c.mu.Unlock()
	}
	return book, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len returns the number of cached workbooks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
