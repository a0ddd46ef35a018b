package service

import (
	"context"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/config"
	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	vendedorRepo repository.VendedorRepository
	empresaRepo  repository.EmpresaRepository
	cfg          *config.Config
}

func NewAuthService(vendedorRepo repository.VendedorRepository, empresaRepo repository.EmpresaRepository, cfg *config.Config) AuthService {
	return &authService{vendedorRepo: vendedorRepo, empresaRepo: empresaRepo, cfg: cfg}
}

// Login resolves the company by code and the salesperson by Telegram id,
// checks the PIN and issues an HS256 token carrying the tenant claims.
// Every failure collapses into ErrCredenciales — no field-level hints.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	empresa, err := s.empresaRepo.FindByCodigo(ctx, req.CodigoEmpresa)
	if err != nil {
		return nil, ErrCredenciales
	}
	vendedor, err := s.vendedorRepo.FindByTelegramID(ctx, empresa.ID, req.TelegramID)
	if err != nil {
		return nil, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendedor.PinHash), []byte(req.Pin)); err != nil {
		return nil, ErrCredenciales
	}

	claims := middleware.JWTClaims{
		VendedorID: vendedor.ID.String(),
		EmpresaID:  empresa.ID.String(),
		Nombre:     vendedor.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   vendedor.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    signed,
		Vendedor: vendedor.Nombre,
		Empresa:  empresa.Nombre,
	}, nil
}
