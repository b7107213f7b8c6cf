package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Team identity changes rarely; caching the team-info payload keeps the
// per-cycle upstream call count down without holding state the service
// cannot rebuild from scratch.
const teamInfoTTL = 15 * time.Minute

// RedisCache caches upstream team-info payloads between fetch cycles.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetTeamInfo returns a cached team-info payload, or ok=false on a miss or
// any Redis/unmarshal fault. Cache trouble never fails a cycle.
func (rc *RedisCache) GetTeamInfo(ctx context.Context, sportPath, teamID string) (map[string]any, bool) {
	raw, err := rc.client.Get(ctx, teamInfoKey(sportPath, teamID)).Result()
	if err != nil {
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// SetTeamInfo caches a team-info payload with a fixed TTL. Errors are
// dropped; the next cycle simply refetches.
func (rc *RedisCache) SetTeamInfo(ctx context.Context, sportPath, teamID string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	rc.client.Set(ctx, teamInfoKey(sportPath, teamID), data, teamInfoTTL)
}

func teamInfoKey(sportPath, teamID string) string {
	return fmt.Sprintf("livestats:teaminfo:%s:%s", sportPath, teamID)
}
