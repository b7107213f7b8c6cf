package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pcheek13/MMM-LiveStats/internal/gamedata"
	"github.com/pcheek13/MMM-LiveStats/internal/leagues"
)

// RedisStreamPublisher publishes cycle results to Redis streams so other
// services can consume the same payloads the display surfaces receive.
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher connects to Redis and verifies the connection.
func NewRedisStreamPublisher(redisURL string) (*RedisStreamPublisher, error) {
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

	return &RedisStreamPublisher{client: client}, nil
}

// Close closes the Redis connection.
func (p *RedisStreamPublisher) Close() error {
	return p.client.Close()
}

// PublishGameData appends a success payload to the league's game stream.
func (p *RedisStreamPublisher) PublishGameData(ctx context.Context, league leagues.Key, payload *gamedata.Payload) error {
	return p.publish(ctx, gameStream(league), payload)
}

// PublishGameError appends an error payload to the league's error stream.
func (p *RedisStreamPublisher) PublishGameError(ctx context.Context, league leagues.Key, payload *gamedata.ErrorPayload) error {
	return p.publish(ctx, errorStream(league), payload)
}

func (p *RedisStreamPublisher) publish(ctx context.Context, stream string, payload any) error {
	values, err := streamValues(payload, time.Now())
	if err != nil {
		return err
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Err()
}

func gameStream(league leagues.Key) string {
	return fmt.Sprintf("livestats.games.%s", league)
}

func errorStream(league leagues.Key) string {
	return fmt.Sprintf("livestats.errors.%s", league)
}

// streamValues builds one stream entry. The data field carries the payload
// marshaled exactly as the other surfaces emit it, so stream consumers and
// websocket subscribers decode one shape.
func streamValues(payload any, at time.Time) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"data":      string(data),
		"timestamp": at.Unix(),
	}, nil
}
