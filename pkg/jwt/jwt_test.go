package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing-purposes"

func TestNewService(t *testing.T) {
	service := NewService(testSecret, time.Hour)

	assert.NotNil(t, service)
	assert.Equal(t, testSecret, service.secret)
	assert.Equal(t, time.Hour, service.tokenExpiry)
}

func TestGenerateToken(t *testing.T) {
	service := NewService(testSecret, time.Hour)

	token, err := service.GenerateToken("op-1", "Jordan", []string{"operator", "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.OperatorID)
	assert.Equal(t, "Jordan", claims.Name)
	assert.Equal(t, []string{"operator", "admin"}, claims.Roles)
	assert.Equal(t, "op-1", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := NewService(testSecret, time.Hour)
	other := NewService("a-completely-different-secret", time.Hour)

	token, err := service.GenerateToken("op-1", "Jordan", []string{"operator"})
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService(testSecret, -time.Minute)

	token, err := service.GenerateToken("op-1", "Jordan", []string{"operator"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService(testSecret, time.Hour)

	claims, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
