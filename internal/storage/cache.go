package storage

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
)

// WrapWithCache decorates base with go-repository-cache when both the cache
// service and key serializer are supplied.
func WrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

// NewCacheService builds the cache service shared by bun repositories.
func NewCacheService(ttl time.Duration) (cache.CacheService, cache.KeySerializer, error) {
	cfg := cache.DefaultConfig()
	if ttl > 0 {
		cfg.TTL = ttl
	}
	service, err := cache.NewCacheService(cfg)
	if err != nil {
		return nil, nil, err
	}
	return service, cache.NewDefaultKeySerializer(), nil
}

// CachePrefix returns the key prefix used to invalidate a repository
// namespace.
func CachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}

// Invalidate drops every cached entry under prefix. A nil service is a no-op.
func Invalidate(ctx context.Context, cacheService cache.CacheService, prefix string) error {
	if cacheService == nil || prefix == "" {
		return nil
	}
	return cacheService.DeleteByPrefix(ctx, prefix)
}
