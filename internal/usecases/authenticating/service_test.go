package authenticating

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, expiresIn time.Duration) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     7,
		UserName:   "Ana",
		UserEmail:  "ana@example.com",
		UserRoleID: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestValidateToken(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	tests := []struct {
		name     string
		token    string
		wantErr  error
		wantCode string
	}{
		{
			name:  "token válido",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Hour),
		},
		{
			name:     "token expirado",
			token:    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), -time.Hour),
			wantErr:  ErrExpiredToken,
			wantCode: apiErrors.ErrExpiredToken,
		},
		{
			name:     "assinatura com outro segredo",
			token:    signToken(t, jwt.SigningMethodHS256, []byte("outro"), time.Hour),
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "método de assinatura inesperado",
			token:    signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Hour),
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "token malformado",
			token:    "abc.def",
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "token vazio",
			token:    "",
			wantErr:  ErrMissingToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
				return
			}

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAuthorizationError(err))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestIsAuthorizationError(t *testing.T) {
	rejected := fmt.Errorf("middleware: %w", NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "exp"))

	assert.True(t, IsAuthorizationError(rejected))
	assert.ErrorIs(t, rejected, ErrExpiredToken)
	assert.Equal(t, "token expirado: exp", errors.Unwrap(rejected).Error())
	assert.False(t, IsAuthorizationError(errors.New("secret ausente")))
}
