package dto

// SuscripcionRequest mirrors the browser PushSubscription JSON.
type SuscripcionRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" validate:"required"`
		Auth   string `json:"auth" validate:"required"`
	} `json:"keys"`
}

type DesuscripcionRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// EnviarPushRequest fans one notification out to every subscription of the
// caller's company.
type EnviarPushRequest struct {
	Titulo string `json:"titulo" validate:"required"`
	Cuerpo string `json:"cuerpo" validate:"required"`
	URL    string `json:"url" validate:"omitempty,url"`
}

type PushStatsResponse struct {
	Suscripciones int64 `json:"suscripciones"`
	Enviadas      int64 `json:"enviadas"`
	Fallidas      int64 `json:"fallidas"`
	EnDLQ         int64 `json:"en_dlq"`
}
