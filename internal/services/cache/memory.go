package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultTTL    = 5 * time.Minute
	sweepInterval = 1 * time.Minute
)

// MemoryCache is an in-memory TTL cache with a soft size cap.
// Expired entries are dropped lazily on read and swept periodically
// in the background.
type MemoryCache struct {
	mu          sync.RWMutex
	entries     map[string]*entry
	maxBytes    int64
	currentSize int64
	stats       Stats
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

type entry struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a memory cache capped at maxSizeMB megabytes.
// A cap of zero or less means unbounded.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		entries:  make(map[string]*entry),
		maxBytes: maxSizeMB * 1024 * 1024,
		stopCh:   make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweepLoop()

	return mc
}

// Get retrieves a value. Expired entries count as misses and are
// removed on the spot.
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	e, exists := mc.entries[key]
	mc.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	if time.Now().After(e.expiry) {
		_ = mc.Delete(ctx, key)
		atomic.AddInt64(&mc.stats.Misses, 1)
		return nil, false
	}

	atomic.AddInt64(&mc.stats.Hits, 1)
	return e.value, true
}

// Set stores a value with the given TTL, evicting old entries if the
// size cap would be exceeded
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	size := int64(len(key) + len(value))
	mc.makeRoom(size)

	e := &entry{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}

	mc.mu.Lock()
	if old, exists := mc.entries[key]; exists {
		atomic.AddInt64(&mc.currentSize, -old.size)
	}
	mc.entries[key] = e
	atomic.AddInt64(&mc.currentSize, size)
	mc.mu.Unlock()

	atomic.AddInt64(&mc.stats.Sets, 1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	if e, exists := mc.entries[key]; exists {
		delete(mc.entries, key)
		atomic.AddInt64(&mc.currentSize, -e.size)
		atomic.AddInt64(&mc.stats.Deletes, 1)
	}
	mc.mu.Unlock()
	return nil
}

// Clear drops every entry
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.entries = make(map[string]*entry)
	atomic.StoreInt64(&mc.currentSize, 0)
	mc.mu.Unlock()
	return nil
}

// Has reports whether a live entry exists for the key
func (mc *MemoryCache) Has(ctx context.Context, key string) bool {
	mc.mu.RLock()
	e, exists := mc.entries[key]
	mc.mu.RUnlock()

	return exists && time.Now().Before(e.expiry)
}

// Stats returns usage counters
func (mc *MemoryCache) Stats() Stats {
	stats := mc.stats
	stats.Size = atomic.LoadInt64(&mc.currentSize)
	stats.MaxSize = mc.maxBytes
	return stats
}

// Stop halts the background sweeper
func (mc *MemoryCache) Stop() {
	close(mc.stopCh)
	mc.wg.Wait()
}

func (mc *MemoryCache) sweepLoop() {
	defer mc.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpired() {
	now := time.Now()
	mc.mu.Lock()
	for key, e := range mc.entries {
		if now.After(e.expiry) {
			delete(mc.entries, key)
			atomic.AddInt64(&mc.currentSize, -e.size)
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
	}
	mc.mu.Unlock()
}

func (mc *MemoryCache) makeRoom(sizeNeeded int64) {
	if mc.maxBytes <= 0 {
		return
	}
	if atomic.LoadInt64(&mc.currentSize)+sizeNeeded <= mc.maxBytes {
		return
	}

	mc.removeExpired()

	if atomic.LoadInt64(&mc.currentSize)+sizeNeeded > mc.maxBytes {
		mc.mu.Lock()
		targetSize := mc.maxBytes - sizeNeeded
		for key, e := range mc.entries {
			if atomic.LoadInt64(&mc.currentSize) <= targetSize {
				break
			}
			delete(mc.entries, key)
			atomic.AddInt64(&mc.currentSize, -e.size)
			atomic.AddInt64(&mc.stats.Evictions, 1)
		}
		mc.mu.Unlock()
	}
}
