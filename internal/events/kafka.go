package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/community_safety_system/internal/config"
)

// KafkaFeed - Publisher, пишущий события инцидентов в топик Kafka.
// Ленту читают внешние коллабораторы (уведомления, телефония), для
// которых данные инцидента доступны только на чтение.
type KafkaFeed struct {
	writer *kafkago.Writer
}

// NewKafkaFeed создает продюсер для настроенного топика
func NewKafkaFeed(cfg *config.Config) *KafkaFeed {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaFeed{writer: w}
}

// Publish сериализует и публикует событие в Kafka
func (f *KafkaFeed) Publish(ctx context.Context, event IncidentEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	return f.writer.WriteMessages(ctx, msg)
}

// Close закрывает продюсер
func (f *KafkaFeed) Close() error {
	return f.writer.Close()
}

// serializeToMessage преобразует событие в сообщение Kafka с ключом по id инцидента
func serializeToMessage(event IncidentEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize incident event: %w", err)
	}
	var key []byte
	if event.Incident != nil {
		key = []byte(event.Incident.ID.String())
	}
	return kafkago.Message{
		Key:   key,
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "published_at", Value: []byte(event.Timestamp.Format(time.RFC3339))},
		},
	}, nil
}
