package access

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymdesk/internal/member"

	"github.com/redis/go-redis/v9"
)

// Cache holds member lookups keyed by tenant and normalized code.
type Cache interface {
	Get(ctx context.Context, tenantID int, code string) (*member.Member, bool, error)
	Set(ctx context.Context, m *member.Member) error
	Invalidate(ctx context.Context, tenantID int, code string) error
}

// CodeCache is the Redis implementation of Cache. A zero TTL disables it.
type CodeCache struct {
	redis redis.Cmdable
	ttl   time.Duration
}

func NewCodeCache(client redis.Cmdable, ttl time.Duration) *CodeCache {
	return &CodeCache{
		redis: client,
		ttl:   ttl,
	}
}

// NewRedisClient opens the client used for lookups.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func cacheKey(tenantID int, code string) string {
	return fmt.Sprintf("access:member:%d:%s", tenantID, code)
}

func (c *CodeCache) enabled() bool {
	return c != nil && c.redis != nil && c.ttl > 0
}

func (c *CodeCache) Get(ctx context.Context, tenantID int, code string) (*member.Member, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}

	data, err := c.redis.Get(ctx, cacheKey(tenantID, code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m member.Member
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false, fmt.Errorf("decode cached member: %w", err)
	}
	m.TenantID = tenantID
	return &m, true, nil
}

func (c *CodeCache) Set(ctx context.Context, m *member.Member) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, cacheKey(m.TenantID, m.Code), data, c.ttl).Err()
}

func (c *CodeCache) Invalidate(ctx context.Context, tenantID int, code string) error {
	if c == nil || c.redis == nil {
		return nil
	}
	return c.redis.Del(ctx, cacheKey(tenantID, member.NormalizeCode(code))).Err()
}
