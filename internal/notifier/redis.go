package notifier

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// RedisNotifier publishes events as JSON on a redis pub/sub channel.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Emit(ctx context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("notifier: marshal event %s: %v", e.EventID, err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		// Advisory only: log and move on.
		log.Printf("notifier: publish event %s: %v", e.EventID, err)
	}
}
