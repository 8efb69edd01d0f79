package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/pkg/e"
)

// EventQueue is a FIFO list: LPUSH on enqueue, BRPOP on dequeue.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, ev domain.IncidentEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop returns e.ErrEventQueueEmpty when nothing arrived within timeout.
func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.IncidentEvent, error) {
	var ev domain.IncidentEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrEventQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrEventQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
