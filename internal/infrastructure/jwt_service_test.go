package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

var testIdentity = &entities.Identity{
	ID:        "5dbff437f482e01d03fecd4b",
	Email:     "test@gmail.com",
	FirstName: "Test",
	LastName:  "Johnson",
}

func TestGenerateAndVerifyToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved := svc.VerifyToken(token)
	require.NotNil(t, resolved)
	assert.Equal(t, testIdentity.ID, resolved.ID)
	assert.Equal(t, testIdentity.Email, resolved.Email)
	assert.Equal(t, testIdentity.FirstName, resolved.FirstName)
	assert.Equal(t, testIdentity.LastName, resolved.LastName)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken(testIdentity)
	require.NoError(t, err)

	assert.Nil(t, NewJWTService("secret-b", time.Hour).VerifyToken(token))
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(testIdentity)
	require.NoError(t, err)

	assert.Nil(t, svc.VerifyToken(token))
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	assert.Nil(t, svc.VerifyToken(""))
	assert.Nil(t, svc.VerifyToken("not.a.token"))
}
