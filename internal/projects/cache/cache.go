package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

const (
	listKeyPrefix = "portfolio:projects:" // Cached list per owner: portfolio:projects:{owner_id}
	defaultTTL    = 5 * time.Minute
)

// ProjectListCache caches the public project list per owner in Redis. Every
// error degrades to a cache miss; the document store stays authoritative.
type ProjectListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a project list cache. A zero ttl uses the default.
func New(client *redis.Client, ttl time.Duration) *ProjectListCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ProjectListCache{client: client, ttl: ttl}
}

func (c *ProjectListCache) key(ownerID string) string {
	return listKeyPrefix + ownerID
}

// Get returns the cached list and true on a hit.
func (c *ProjectListCache) Get(ctx context.Context, ownerID string) ([]domain.Project, bool) {
	data, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("project cache get failed for %s: %v", ownerID, err)
		return nil, false
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		log.Printf("project cache decode failed for %s: %v", ownerID, err)
		return nil, false
	}
	return projects, true
}

// Set stores the list for the owner with the configured TTL.
func (c *ProjectListCache) Set(ctx context.Context, ownerID string, projects []domain.Project) {
	data, err := json.Marshal(projects)
	if err != nil {
		log.Printf("project cache encode failed for %s: %v", ownerID, err)
		return
	}

	if err := c.client.Set(ctx, c.key(ownerID), data, c.ttl).Err(); err != nil {
		log.Printf("project cache set failed for %s: %v", ownerID, err)
	}
}

// Invalidate drops the owner's cached list after a mutation.
func (c *ProjectListCache) Invalidate(ctx context.Context, ownerID string) {
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		log.Printf("project cache invalidate failed for %s: %v", ownerID, err)
	}
}
