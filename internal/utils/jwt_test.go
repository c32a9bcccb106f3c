package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-sync/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("nr-sync", 123, models.AccessAdmin, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)

	claims, ok := token.Token.Claims.(*models.Claims)
	require.True(t, ok)
	assert.Equal(t, "nr-sync", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.Equal(t, models.AccessAdmin, claims.AccessLevel)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, 0, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("nr-sync", 456, 50, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	t.Run("valid token carries identity", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(valid.SignedString, "secret-key", "nr-sync")
		require.NoError(t, err)
		assert.Equal(t, int64(456), parsed.UserID)
		assert.Equal(t, 50, parsed.AccessLevel)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "wrong-key", "nr-sync")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "secret-key", "fake-issuer")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateJWTToken("nr-sync", 1, 0, -time.Second, "secret-key")
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, "secret-key", "nr-sync")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lower case scheme", "bearer abc", "abc", false},
		{"missing token", "Bearer ", "", true},
		{"other scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
