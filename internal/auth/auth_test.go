package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signClaims(t *testing.T, claims *JWTClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func baseClaims(tokenType string, tenantID int, expires time.Time) *JWTClaims {
	return &JWTClaims{
		UserID:    7,
		TenantID:  tenantID,
		Role:      RoleStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(7, 3, RoleAdmin, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 3, claims.TenantID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "access", claims.TokenType)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateAccessTokenEmptySecret(t *testing.T) {
	_, err := GenerateAccessToken(7, 3, RoleAdmin, "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestValidateToken(t *testing.T) {
	valid, err := GenerateAccessToken(1, 2, RoleStaff, testSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
		anyErr  bool
	}{
		{name: "valid", token: valid, secret: testSecret},
		{name: "wrong secret", token: valid, secret: "other", anyErr: true},
		{name: "empty secret", token: valid, secret: "", wantErr: ErrEmptyJWTSecret},
		{name: "garbage", token: "not.a.jwt", secret: testSecret, anyErr: true},
		{
			name:    "expired",
			token:   signClaims(t, baseClaims("access", 2, time.Now().Add(-time.Minute)), testSecret),
			secret:  testSecret,
			wantErr: ErrTokenExpired,
		},
		{
			name:    "refresh token rejected",
			token:   signClaims(t, baseClaims("refresh", 2, time.Now().Add(time.Hour)), testSecret),
			secret:  testSecret,
			wantErr: ErrInvalidTokenType,
		},
		{
			name:    "no tenant",
			token:   signClaims(t, baseClaims("access", 0, time.Now().Add(time.Hour)), testSecret),
			secret:  testSecret,
			wantErr: ErrMissingTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, claims)
			default:
				require.NoError(t, err)
				assert.Equal(t, 2, claims.TenantID)
			}
		})
	}
}

func TestValidateTokenRejectsOtherSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims("access", 2, time.Now().Add(time.Hour)))
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(s, testSecret)
	assert.Error(t, err)
}
