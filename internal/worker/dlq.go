package worker

// Jobs that exhausted their retries are parked in a per-queue Redis list
// (dlq:<cola origen>) so an operator can inspect and replay them by hand.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry keeps enough context to understand and replay the failure.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Motivo   string          `json:"motivo"`
	FalloEn  time.Time       `json:"fallo_en"`
	Intentos int             `json:"intentos"`
}

// SendToDLQ parks a job that will not be retried again.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, motivo string, intentos int) {
	entry := DLQEntry{
		Queue:    queue,
		Type:     jobType,
		Payload:  payload,
		Motivo:   motivo,
		FalloEn:  time.Now().UTC(),
		Intentos: intentos,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal")
		return
	}
	if err := rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: lpush")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("type", jobType).
		Str("motivo", motivo).
		Int("intentos", intentos).
		Msg("dlq: job descartado tras agotar reintentos")
}

// DLQLength reports how many jobs are parked for a queue.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
