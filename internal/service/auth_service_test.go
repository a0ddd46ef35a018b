package service_test

import (
	"context"
	"testing"

	"github.com/parinohernan/aqua-delivery-sub000/internal/config"
	"github.com/parinohernan/aqua-delivery-sub000/internal/dto"
	"github.com/parinohernan/aqua-delivery-sub000/internal/middleware"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"
	"github.com/parinohernan/aqua-delivery-sub000/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authFixture(t *testing.T) (service.AuthService, *model.Empresa, *model.Vendedor) {
	t.Helper()
	empresas := newStubEmpresaRepo()
	vendedores := newStubVendedorRepo()

	empresa := &model.Empresa{ID: uuid.New(), Codigo: "DEMO", Nombre: "Agua Demo SRL"}
	require.NoError(t, empresas.Create(context.Background(), empresa))

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	vendedor := &model.Vendedor{
		ID:         uuid.New(),
		EmpresaID:  empresa.ID,
		TelegramID: "555",
		Nombre:     "Caro",
		PinHash:    string(hash),
		Activo:     true,
	}
	require.NoError(t, vendedores.Create(context.Background(), vendedor))

	cfg := &config.Config{JWTSecret: "secreto-de-test", JWTExpirationHours: 1}
	return service.NewAuthService(vendedores, empresas, cfg), empresa, vendedor
}

func TestLoginEmiteTokenConClaimsDeEmpresa(t *testing.T) {
	svc, empresa, vendedor := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		TelegramID:    "555",
		CodigoEmpresa: "DEMO",
		Pin:           "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Caro", resp.Vendedor)
	assert.Equal(t, "Agua Demo SRL", resp.Empresa)

	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-test"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, empresa.ID.String(), claims.EmpresaID)
	assert.Equal(t, vendedor.ID.String(), claims.VendedorID)
}

func TestLoginFallaSinDetalles(t *testing.T) {
	svc, _, _ := authFixture(t)

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong pin", dto.LoginRequest{TelegramID: "555", CodigoEmpresa: "DEMO", Pin: "9999"}},
		{"unknown telegram id", dto.LoginRequest{TelegramID: "000", CodigoEmpresa: "DEMO", Pin: "1234"}},
		{"unknown company", dto.LoginRequest{TelegramID: "555", CodigoEmpresa: "OTRA", Pin: "1234"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.req)
			assert.ErrorIs(t, err, service.ErrCredenciales)
		})
	}
}
