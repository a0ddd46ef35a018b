package worker

// push_worker.go
// Delivers one Web Push notification per job. Jobs carry the subscription id,
// not the keys — the worker re-reads the row so unsubscribed endpoints are
// skipped and expired ones pruned.

import (
	"context"
	"encoding/json"

	"github.com/parinohernan/aqua-delivery-sub000/internal/infra"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxPushAttempts = 3

// Redis counters behind GET /api/push/stats.
const (
	StatPushEnviadas = "push:enviadas"
	StatPushFallidas = "push:fallidas"
)

// PushJobPayload is the job envelope sent to QueuePush.
type PushJobPayload struct {
	SuscripcionID string `json:"suscripcion_id"`
	Titulo        string `json:"titulo"`
	Cuerpo        string `json:"cuerpo"`
	URL           string `json:"url,omitempty"`
}

type PushWorker struct {
	sender *infra.WebPushSender
	repo   repository.PushRepository
}

func NewPushWorker(sender *infra.WebPushSender, repo repository.PushRepository) *PushWorker {
	return &PushWorker{sender: sender, repo: repo}
}

// Process sends the notification. Expired endpoints are deleted, transient
// failures are requeued up to maxPushAttempts, then parked in the DLQ.
func (w *PushWorker) Process(ctx context.Context, rdb *redis.Client, job Job) {
	var payload PushJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("push_worker: invalid payload")
		return
	}

	subID, err := uuid.Parse(payload.SuscripcionID)
	if err != nil {
		log.Error().Str("suscripcion_id", payload.SuscripcionID).Msg("push_worker: invalid subscription id")
		return
	}

	sub, err := w.repo.FindByID(ctx, subID)
	if err != nil {
		// Unsubscribed between enqueue and delivery — nothing to do.
		return
	}

	body, _ := json.Marshal(map[string]string{
		"title": payload.Titulo,
		"body":  payload.Cuerpo,
		"url":   payload.URL,
	})

	switch err := w.sender.Send(ctx, sub, body); {
	case err == nil:
		rdb.Incr(ctx, StatPushEnviadas)
	case err == infra.ErrSuscripcionVencida:
		if delErr := w.repo.DeleteByID(ctx, sub.ID); delErr != nil {
			log.Error().Err(delErr).Str("endpoint", sub.Endpoint).Msg("push_worker: prune failed")
		}
		rdb.Incr(ctx, StatPushFallidas)
		log.Info().Str("endpoint", sub.Endpoint).Msg("push_worker: expired subscription pruned")
	default:
		rdb.Incr(ctx, StatPushFallidas)
		if job.Attempts+1 >= maxPushAttempts {
			SendToDLQ(ctx, rdb, QueuePush, job.Type, job.Payload, err.Error(), job.Attempts+1)
			return
		}
		if reqErr := requeue(ctx, rdb, QueuePush, job); reqErr != nil {
			log.Error().Err(reqErr).Msg("push_worker: requeue failed")
		}
	}
}
