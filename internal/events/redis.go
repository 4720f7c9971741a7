package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const broadcastChannel = "portal:events"

// redisDispatcher bridges the fan-out channel over Redis pub/sub. Pub/sub
// delivery matches the channel contract: at-most-once, unordered across
// publishers, and silently dropped when no consumer is subscribed. Payloads
// arrive as decoded JSON maps on the consuming side; subscribers must
// recompute authoritative state from the store rather than trust them.
type redisDispatcher struct {
	client *redis.Client
	logger *zap.Logger

	mu        sync.RWMutex
	listeners map[EventType][]EventHandler

	cancel context.CancelFunc
}

// NewRedisDispatcher starts a dispatcher backed by Redis pub/sub.
func NewRedisDispatcher(client *redis.Client, logger *zap.Logger) Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &redisDispatcher{
		client:    client,
		logger:    logger,
		listeners: make(map[EventType][]EventHandler),
		cancel:    cancel,
	}
	go d.consume(ctx)
	return d
}

// Publish sends the event into the broadcast channel. Failures are logged
// and swallowed: every send is fire-and-forget.
func (d *redisDispatcher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Warn("event marshal failed", zap.String("type", string(event.Type)), zap.Error(err))
		return nil
	}
	if err := d.client.Publish(ctx, broadcastChannel, data).Err(); err != nil {
		d.logger.Warn("event publish dropped", zap.String("type", string(event.Type)), zap.Error(err))
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *redisDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

func (d *redisDispatcher) consume(ctx context.Context) {
	sub := d.client.Subscribe(ctx, broadcastChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				d.logger.Warn("event decode failed", zap.Error(err))
				continue
			}
			d.mu.RLock()
			handlers := append([]EventHandler{}, d.listeners[event.Type]...)
			d.mu.RUnlock()
			for _, handler := range handlers {
				if err := handler(ctx, event); err != nil {
					d.logger.Warn("event handler failed", zap.String("type", string(event.Type)), zap.Error(err))
				}
			}
		}
	}
}

// Close stops the consuming goroutine.
func (d *redisDispatcher) Close() {
	d.cancel()
}
