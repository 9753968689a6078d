package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pippali-pos/configs"
	"pippali-pos/entity"
	"pippali-pos/repository"
)

func newAuthService(t *testing.T) (*AuthService, *entity.Admin) {
	t.Helper()
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &entity.Admin{Email: "admin@pippali.dk", Password: string(hash), Name: "Admin", Role: "admin"}
	require.NoError(t, db.Create(admin).Error)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	return NewAuthService(repository.NewAdminRepository(db), cfg), admin
}

func TestLoginSuccess(t *testing.T) {
	svc, admin := newAuthService(t)

	result, err := svc.Login(admin.Email, "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, admin := newAuthService(t)

	_, err := svc.Login(admin.Email, "wrong")
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("nobody@pippali.dk", "hunter2")
	assert.Error(t, err)
}
