package dto

// LoginRequest identifies a salesperson by Telegram id within a company.
type LoginRequest struct {
	TelegramID    string `json:"telegram_id" validate:"required"`
	CodigoEmpresa string `json:"codigo_empresa" validate:"required"`
	Pin           string `json:"pin" validate:"required,min=4"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Vendedor string `json:"vendedor"`
	Empresa  string `json:"empresa"`
}
