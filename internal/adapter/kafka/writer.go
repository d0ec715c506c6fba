package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/weather-synth/internal/config"
	"github.com/couchcryptid/weather-synth/internal/domain"
)

// Writer produces generated weather records to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer  *kafkago.Writer
	runID   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic. Every message
// it writes carries runID in its headers.
func NewWriter(cfg *config.Config, runID string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, runID: runID, timeout: cfg.KafkaTimeout, logger: logger}
}

// LoadBatch publishes the records in a single WriteMessages call, bounded by
// the configured timeout.
func (w *Writer) LoadBatch(ctx context.Context, records []domain.WeatherRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i], w.runID)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages to %s: %w", w.writer.Topic, err)
	}
	w.logger.Debug("records published", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a WeatherRecord into a Kafka message keyed by
// the record ID.
func serializeToMessage(rec domain.WeatherRecord, runID string) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize weather record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.ID()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(rec.Station.String())},
			{Key: "run_id", Value: []byte(runID)},
		},
	}, nil
}
