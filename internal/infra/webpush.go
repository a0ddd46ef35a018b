package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/parinohernan/aqua-delivery-sub000/internal/config"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/SherClockHolmes/webpush-go"
)

// ErrSuscripcionVencida marks an endpoint the push service has discarded
// (HTTP 404/410). The caller should delete the stored subscription.
var ErrSuscripcionVencida = errors.New("suscripcion push vencida")

// WebPushSender delivers Web Push notifications signed with the VAPID key
// pair. The public key is also served to the front-ends so they can subscribe.
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
}

func NewWebPushSender(cfg *config.Config) *WebPushSender {
	return &WebPushSender{
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		subscriber: cfg.VAPIDSubscriber,
	}
}

// PublicKey returns the VAPID public key for GET /api/push/vapid-public-key.
func (s *WebPushSender) PublicKey() string { return s.publicKey }

// Send pushes payload to one stored subscription. Expired endpoints map to
// ErrSuscripcionVencida so callers can prune them.
func (s *WebPushSender) Send(ctx context.Context, sub *model.PushSuscripcion, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSuscripcionVencida
	case resp.StatusCode >= 400:
		return fmt.Errorf("push: el servicio respondio %d", resp.StatusCode)
	}
	return nil
}

// GenerateVAPIDKeys creates a fresh key pair for first-time setup
// (cmd/seedempresa prints them).
func GenerateVAPIDKeys() (privateKey, publicKey string, err error) {
	return webpush.GenerateVAPIDKeys()
}
