package middleware

import (
	"net/http"
	"strings"

	"github.com/parinohernan/aqua-delivery-sub000/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token. EmpresaID
// is the tenant every query must be scoped by.
type JWTClaims struct {
	VendedorID string `json:"vendedor_id"`
	EmpresaID  string `json:"empresa_id"`
	Nombre     string `json:"nombre"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// EmpresaID returns the caller's tenant id, parsed from the claims.
func EmpresaID(c *gin.Context) uuid.UUID {
	id, _ := uuid.Parse(GetClaims(c).EmpresaID)
	return id
}

// VendedorID returns the caller's salesperson id, parsed from the claims.
func VendedorID(c *gin.Context) uuid.UUID {
	id, _ := uuid.Parse(GetClaims(c).VendedorID)
	return id
}
