package service

// push_service.go
// Web Push subscription management plus the company-wide fan-out. Sending is
// asynchronous: Enviar enqueues one job per subscription and returns the count.

import (
	"context"
	"fmt"

	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"
	"github.com/parinohernan/aqua-delivery-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type PushService interface {
	Suscribir(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.SuscripcionRequest) error
	Desuscribir(ctx context.Context, empresaID uuid.UUID, req dto.DesuscripcionRequest) error
	Enviar(ctx context.Context, empresaID uuid.UUID, req dto.EnviarPushRequest) (int, error)
	Stats(ctx context.Context, empresaID uuid.UUID) (*dto.PushStatsResponse, error)
	VAPIDPublicKey() string
}

type pushService struct {
	repo       repository.PushRepository
	dispatcher *worker.Dispatcher
	rdb        *redis.Client
	publicKey  string
}

func NewPushService(repo repository.PushRepository, dispatcher *worker.Dispatcher, rdb *redis.Client, publicKey string) PushService {
	return &pushService{repo: repo, dispatcher: dispatcher, rdb: rdb, publicKey: publicKey}
}

func (s *pushService) Suscribir(ctx context.Context, empresaID, vendedorID uuid.UUID, req dto.SuscripcionRequest) error {
	sub := model.PushSuscripcion{
		ID:         uuid.New(),
		EmpresaID:  empresaID,
		VendedorID: vendedorID,
		Endpoint:   req.Endpoint,
		P256dh:     req.Keys.P256dh,
		Auth:       req.Keys.Auth,
	}
	return s.repo.Upsert(ctx, &sub)
}

func (s *pushService) Desuscribir(ctx context.Context, empresaID uuid.UUID, req dto.DesuscripcionRequest) error {
	if err := s.repo.DeleteByEndpoint(ctx, empresaID, req.Endpoint); err != nil {
		return fmt.Errorf("suscripción: %w", ErrNotFound)
	}
	return nil
}

func (s *pushService) Enviar(ctx context.Context, empresaID uuid.UUID, req dto.EnviarPushRequest) (int, error) {
	subs, err := s.repo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return 0, err
	}

	encoladas := 0
	for _, sub := range subs {
		payload := worker.PushJobPayload{
			SuscripcionID: sub.ID.String(),
			Titulo:        req.Titulo,
			Cuerpo:        req.Cuerpo,
			URL:           req.URL,
		}
		if err := s.dispatcher.EnqueuePush(ctx, payload); err != nil {
			log.Error().Err(err).Str("endpoint", sub.Endpoint).Msg("push: no se pudo encolar")
			continue
		}
		encoladas++
	}
	return encoladas, nil
}

func (s *pushService) Stats(ctx context.Context, empresaID uuid.UUID) (*dto.PushStatsResponse, error) {
	count, err := s.repo.Count(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	// Counter misses are zero, not errors.
	enviadas, _ := s.rdb.Get(ctx, worker.StatPushEnviadas).Int64()
	fallidas, _ := s.rdb.Get(ctx, worker.StatPushFallidas).Int64()
	enDLQ, _ := worker.DLQLength(ctx, s.rdb, worker.QueuePush)

	return &dto.PushStatsResponse{
		Suscripciones: count,
		Enviadas:      enviadas,
		Fallidas:      fallidas,
		EnDLQ:         enDLQ,
	}, nil
}

func (s *pushService) VAPIDPublicKey() string {
	return s.publicKey
}
