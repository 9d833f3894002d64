package service

import (
	"context"
	"testing"
	"time"

	"standards-hub/backend/common"
	huberrors "standards-hub/backend/common/errors"
	"standards-hub/backend/common/i18n"

	"github.com/stretchr/testify/assert"
)

func setupSessionTest(t *testing.T) {
	t.Helper()
	originalPassword := common.AdminPassword
	originalHash := common.AdminPasswordHash
	common.AdminPassword = "correct-horse"
	common.AdminPasswordHash = ""
	SetSessionStore(NewMemorySessionStore(0))
	t.Cleanup(func() {
		common.AdminPassword = originalPassword
		common.AdminPasswordHash = originalHash
		SetSessionStore(NewMemorySessionStore(0))
	})
}

func TestAdminLoginValidPassword(t *testing.T) {
	setupSessionTest(t)
	ctx := context.Background()

	token, err := AdminLogin(ctx, "correct-horse", "en")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, IsAdmin(ctx, token))

	// Every login mints a distinct token.
	token2, err := AdminLogin(ctx, "correct-horse", "en")
	assert.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	setupSessionTest(t)

	token, err := AdminLogin(context.Background(), "battery-staple", "en")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.True(t, i18n.IsErrorCode(err, huberrors.ErrInvalidCredentials))
}

func TestIsAdminUnknownToken(t *testing.T) {
	setupSessionTest(t)
	ctx := context.Background()

	assert.False(t, IsAdmin(ctx, "fabricated-token"))
	assert.False(t, IsAdmin(ctx, ""))
}

func TestAdminLogoutRevokesAndIsIdempotent(t *testing.T) {
	setupSessionTest(t)
	ctx := context.Background()

	token, err := AdminLogin(ctx, "correct-horse", "en")
	assert.NoError(t, err)
	assert.True(t, IsAdmin(ctx, token))

	assert.NoError(t, AdminLogout(ctx, token))
	assert.False(t, IsAdmin(ctx, token))

	// Logging out again, or with an unknown token, is not an error.
	assert.NoError(t, AdminLogout(ctx, token))
	assert.NoError(t, AdminLogout(ctx, "never-issued"))
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemorySessionStore(30 * time.Millisecond)
	ctx := context.Background()
	now := time.Now()

	assert.NoError(t, store.Put(ctx, "tok", Session{CreatedAt: now, LastSeen: now}))
	_, ok, err := store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok, err = store.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAdminLoginWithBcryptHash(t *testing.T) {
	setupSessionTest(t)
	hash, err := common.Password2Hash("hashed-secret")
	assert.NoError(t, err)
	common.AdminPasswordHash = hash

	_, err = AdminLogin(context.Background(), "hashed-secret", "en")
	assert.NoError(t, err)

	_, err = AdminLogin(context.Background(), "correct-horse", "en")
	assert.Error(t, err)
}
