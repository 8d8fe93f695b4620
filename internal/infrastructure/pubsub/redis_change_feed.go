// Package pubsub provides the redis-backed record change feed.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"jobdesk/internal/usecase/interfaces"
)

// RedisChangeFeed implements the change-notification boundary over redis
// pub/sub. Each record gets its own channel (records:<collection>:<id>), so a
// subscription delivers exactly the changes of the record it watches.
type RedisChangeFeed struct {
	client *redis.Client
}

var _ interfaces.IChangeFeed = (*RedisChangeFeed)(nil)

// NewRedisChangeFeed connects to redis and verifies the connection.
func NewRedisChangeFeed(redisURL string) (*RedisChangeFeed, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisChangeFeed{client: client}, nil
}

// NewRedisChangeFeedWithClient wraps an existing redis client.
func NewRedisChangeFeedWithClient(client *redis.Client) *RedisChangeFeed {
	return &RedisChangeFeed{client: client}
}

func channelFor(collection, id string) string {
	return "records:" + collection + ":" + id
}

// Publish announces a record change. Delivery is fire-and-forget; a
// subscriber that misses an event converges on the next one because events
// carry identity, not state.
func (f *RedisChangeFeed) Publish(ctx context.Context, event interfaces.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := f.client.Publish(ctx, channelFor(event.Collection, event.ID), payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Subscribe watches one record's channel until the returned func is called.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, collection, id string, onChange func(interfaces.ChangeEvent)) (func(), error) {
	sub := f.client.Subscribe(ctx, channelFor(collection, id))

	// Wait for the subscription confirmation so no event published after
	// Subscribe returns is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s/%s: %w", collection, id, err)
	}

	msgs := sub.Channel()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event interfaces.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("[pubsub] %s: dropping malformed event: %v", msg.Channel, err)
					continue
				}
				onChange(event)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			if err := sub.Close(); err != nil {
				log.Printf("[pubsub] close subscription %s/%s: %v", collection, id, err)
			}
		})
	}
	return unsubscribe, nil
}

// Ping verifies the redis connection.
func (f *RedisChangeFeed) Ping(ctx context.Context) error {
	return f.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (f *RedisChangeFeed) Close() error {
	return f.client.Close()
}
