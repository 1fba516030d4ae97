package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a security event to Kafka. Publishing is best
// effort: a nil writer or a broker failure never fails the caller.
func publishEvent(ctx context.Context, w KafkaWriter, evt models.SecurityEvent) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "kind", evt.Kind)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal security event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish security event to Kafka", "event_id", evt.EventID, "kind", evt.Kind, "error", err)
	} else {
		logger.Log.Infow("Security event published to Kafka", "event_id", evt.EventID, "kind", evt.Kind)
	}
}
