package jwt

import (
	"MediAssist-Backend/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndResolveToken(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, "user")
	assert.NotEmpty(t, token)

	resolvedID, role, err := service.GetUserIDByToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, resolvedID)
	assert.Equal(t, "user", role)
}

func TestGetUserIDByToken_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	_, _, err := service.GetUserIDByToken("not-a-token")

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_RejectsWrongSecret(t *testing.T) {
	token := NewJWTService("secret-a").GenerateTokenUser(uuid.NewString(), "user")

	_, _, err := NewJWTService("secret-b").GetUserIDByToken(token)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
