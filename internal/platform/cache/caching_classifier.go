// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"breed_backend/internal/feature/prediction/usecase"
)

// CachingClassifier decorates a Classifier with Redis caching keyed by the
// SHA-256 of the image bytes. Inference is deterministic (same bytes, same
// model, same output), so cached vectors never go stale before their TTL.
type CachingClassifier struct {
	inner     usecase.Classifier
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingClassifier implements usecase.Classifier (compile-time check).
var _ usecase.Classifier = (*CachingClassifier)(nil)

// NewCachingClassifier decorates a Classifier with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "predict".
func NewCachingClassifier(rdb *redis.Client, ttl time.Duration, inner usecase.Classifier, namespace string) *CachingClassifier {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "predict"
	}
	return &CachingClassifier{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Probabilities returns the cached probability vector for the image when
// present, otherwise runs the inner classifier and stores the result.
func (c *CachingClassifier) Probabilities(ctx context.Context, imageData []byte) ([]float32, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Probabilities(ctx, imageData)
	}

	key := c.cacheKey(imageData)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []float32
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the model
	out, err := c.inner.Probabilities(ctx, imageData)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey derives the cache key from the image content digest.
func (c *CachingClassifier) cacheKey(imageData []byte) string {
	return fmt.Sprintf("%s:%x", c.namespace, sha256.Sum256(imageData))
}
