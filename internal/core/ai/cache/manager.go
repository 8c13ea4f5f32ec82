package cache

import (
	"context"
	"sync"
	"time"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager is the in-memory recommendation cache. Entries expire after the
// configured TTL; expired entries are evicted lazily on read and by a
// background sweep. When the map reaches MaxSize the least recently used
// entry is evicted.
type Manager struct {
	config *config.CacheConfig
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

type cacheEntry struct {
	items       []common.Recommendation
	createdAt   time.Time
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewManager creates the in-memory cache and starts its cleanup goroutine.
func NewManager(cfg *config.CacheConfig) *Manager {
	m := &Manager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("cache manager initialized",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)

	return m
}

// Get returns the cached recommendations for key. An entry past its TTL is
// treated as absent and removed.
func (m *Manager) Get(ctx context.Context, key string) ([]common.Recommendation, bool) {
	m.mu.RLock()
	entry, exists := m.store[key]
	m.mu.RUnlock()

	if !exists {
		m.mu.Lock()
		m.stats.misses++
		m.mu.Unlock()
		common.LogCacheMiss("memory", key)
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		// re-check under the write lock; a concurrent Set may have
		// refreshed the entry
		if cur, ok := m.store[key]; ok && time.Now().After(cur.expiresAt) {
			delete(m.store, key)
			m.stats.evictions++
		}
		m.stats.misses++
		m.mu.Unlock()
		common.LogInfo("cache entry expired", zap.String("key", key))
		return nil, false
	}

	m.mu.Lock()
	if cur, ok := m.store[key]; ok {
		cur.lastAccess = time.Now()
		cur.accessCount++
		m.store[key] = cur
	}
	m.stats.hits++
	m.mu.Unlock()

	common.LogCacheHit("memory", key)
	return copyItems(entry.items), true
}

// Set stores recommendations under key with a fresh timestamp, replacing
// any prior entry.
func (m *Manager) Set(ctx context.Context, key string, items []common.Recommendation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.config.MaxSize {
		if _, exists := m.store[key]; !exists {
			evicted := m.cleanupLocked()
			if evicted > 0 {
				common.LogInfo("cache cleanup performed", zap.Int("evicted", evicted))
			}
			for len(m.store) >= m.config.MaxSize {
				m.evictLRULocked()
			}
		}
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		items:      copyItems(items),
		createdAt:  now,
		expiresAt:  now.Add(m.config.TTL),
		lastAccess: now,
	}

	common.LogInfo("cache entry stored", zap.String("key", key))
}

// Stats reports hit/miss/eviction counters and current size.
func (m *Manager) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": ratio,
	}
}

// Close stops the cleanup goroutine and drops all entries.
func (m *Manager) Close() error {
	close(m.done)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]cacheEntry)

	common.LogInfo("cache manager closed",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}

func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			count := m.cleanupLocked()
			m.mu.Unlock()
			if count > 0 {
				common.LogInfo("cleaned up expired cache entries", zap.Int("count", count))
			}
		case <-m.done:
			return
		}
	}
}

// cleanupLocked removes expired entries. Caller holds the write lock.
func (m *Manager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

// evictLRULocked removes the least recently used entry. Caller holds the
// write lock.
func (m *Manager) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	for key, entry := range m.store {
		if oldestKey == "" || entry.lastAccess.Before(oldestAccess) {
			oldestKey = key
			oldestAccess = entry.lastAccess
		}
	}
	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("cache entry evicted (LRU)", zap.String("key", oldestKey))
	}
}

// copyItems guards cached slices against aliasing by callers.
func copyItems(items []common.Recommendation) []common.Recommendation {
	out := make([]common.Recommendation, len(items))
	copy(out, items)
	return out
}
