package services

import (
	"encoding/json"
	"time"

	"month_balance_ms/config"
	"month_balance_ms/domain"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type ActivityEvent struct {
	UserID       uint                `json:"user_id"`
	ActivityType domain.ActivityType `json:"activity_type"`
	Timestamp    time.Time           `json:"timestamp"`
}

// IActivityEventPublisher pushes critical activity events to the
// notification pipeline. Publication is best-effort: callers log and drop
// failures.
type IActivityEventPublisher interface {
	PublishActivityEvent(event *ActivityEvent) error
}

type KafkaActivityEventPublisher struct {
	brokers []string
	topic   string
	logger  *zap.Logger
}

func NewKafkaActivityEventPublisher(logger *zap.Logger) *KafkaActivityEventPublisher {
	return &KafkaActivityEventPublisher{
		brokers: config.Conf.Application.Kafka.Brokers,
		topic:   config.Conf.Application.Kafka.Topic,
		logger:  logger,
	}
}

func (p *KafkaActivityEventPublisher) PublishActivityEvent(event *ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	producer, err := sarama.NewSyncProducer(p.brokers, nil)
	if err != nil {
		p.logger.Warn("failed to create kafka producer", zap.Error(err))
		return err
	}
	defer producer.Close()

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.StringEncoder(data),
	}
	if _, _, err := producer.SendMessage(msg); err != nil {
		p.logger.Warn("failed to publish activity event",
			zap.String("activity_type", string(event.ActivityType)), zap.Error(err))
		return err
	}
	return nil
}
