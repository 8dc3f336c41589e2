package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	signed, err := GenerateToken(testSecret, "opaque-token", TypeAuth, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(testSecret, TypeAuth, signed)
	assert.NoError(t, err)
	assert.Equal(t, "opaque-token", claims.Token)
	assert.Equal(t, TypeAuth, claims.Type)
}

func TestParseWrongType(t *testing.T) {
	signed, err := GenerateToken(testSecret, "opaque-token", TypeOtp, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(testSecret, TypeAuth, signed)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := GenerateToken(testSecret, "opaque-token", TypeAuth, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), TypeAuth, signed)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	signed, err := GenerateToken(testSecret, "opaque-token", TypeAuth, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(testSecret, TypeAuth, signed)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, TypeAuth, "not-a-jwt")
	assert.Error(t, err)
}
