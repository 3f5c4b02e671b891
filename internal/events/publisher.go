package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_safety_system/internal/models"
)

const (
	eventQueueKey = "incident_events"
)

// EventType - тип события жизненного цикла инцидента
type EventType string

const (
	EventReported      EventType = "incident.reported"
	EventVerified      EventType = "incident.verified"
	EventDismissed     EventType = "incident.dismissed"
	EventStatusChanged EventType = "incident.status_changed"
)

// IncidentEvent - событие для внешних потребителей (вебхуки, лента Kafka).
// Потребители читают данные инцидента только на чтение.
type IncidentEvent struct {
	Type      EventType        `json:"type"`
	Incident  *models.Incident `json:"incident"`
	Timestamp time.Time        `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий инцидентов
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis.
// События из очереди доставляет WebhookWorker.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}

// Fanout публикует событие в несколько издателей, собирая первую ошибку
type Fanout []Publisher

// NewFanout создает составной Publisher
func NewFanout(pubs ...Publisher) Fanout {
	return Fanout(pubs)
}

// Publish рассылает событие во все издатели
func (f Fanout) Publish(ctx context.Context, event IncidentEvent) error {
	var firstErr error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
