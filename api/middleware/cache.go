package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/internal/services/cache"
)

// CacheConfig holds configuration for the response cache middleware
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	TTLByPath  map[string]time.Duration
	Enabled    bool
}

// CachedResponse is the serialized form of a cached HTTP response
type CachedResponse struct {
	Status      int         `json:"status"`
	Headers     http.Header `json:"headers"`
	Body        []byte      `json:"body"`
	ContentType string      `json:"content_type"`
	CachedAt    time.Time   `json:"cached_at"`
	ETag        string      `json:"etag"`
}

// responseWriter captures the response body for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// ResponseCache caches successful GET responses. Clients can bypass
// with standard Cache-Control headers.
func ResponseCache(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		key := requestCacheKey(c.Request)

		if cachedData, found := config.Cache.Get(context.Background(), key); found {
			var response CachedResponse
			if err := json.Unmarshal(cachedData, &response); err == nil {
				c.Header("X-Cache", "HIT")
				c.Header("Age", fmt.Sprintf("%d", int(time.Since(response.CachedAt).Seconds())))
				c.Header("ETag", response.ETag)
				c.Data(response.Status, response.ContentType, response.Body)
				c.Abort()
				return
			}
		}

		c.Header("X-Cache", "MISS")

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		if w.status == http.StatusOK && w.body.Len() > 0 {
			response := CachedResponse{
				Status:      w.status,
				Headers:     c.Writer.Header(),
				Body:        w.body.Bytes(),
				ContentType: "application/json; charset=utf-8",
				CachedAt:    time.Now(),
				ETag:        etagFor(w.body.Bytes()),
			}

			if data, err := json.Marshal(response); err == nil {
				_ = config.Cache.Set(context.Background(), key, data, ttlForPath(config, c.Request.URL.Path))
			}

			c.Header("ETag", response.ETag)
		}
	}
}

func ttlForPath(config CacheConfig, path string) time.Duration {
	if ttl, exists := config.TTLByPath[path]; exists {
		return ttl
	}
	for prefix, ttl := range config.TTLByPath {
		if strings.HasPrefix(path, prefix) {
			return ttl
		}
	}
	return config.DefaultTTL
}

func shouldBypassCache(req *http.Request) bool {
	cacheControl := strings.ToLower(req.Header.Get("Cache-Control"))
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "no-cache" || directive == "no-store" || directive == "max-age=0" {
			return true
		}
	}
	return req.Header.Get("Pragma") == "no-cache"
}

// requestCacheKey derives a stable key from the path and sorted query
// parameters
func requestCacheKey(req *http.Request) string {
	parts := []string{req.URL.Path}

	if req.URL.RawQuery != "" {
		params := req.URL.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, v := range params[k] {
				parts = append(parts, k+"="+v)
			}
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "response:" + hex.EncodeToString(sum[:])
}

func etagFor(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
