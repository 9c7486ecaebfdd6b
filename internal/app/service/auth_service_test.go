package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/common/security"
	"inkwell/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 7 * 24 * time.Hour

func newAuthService(users *fakeUserRepo, sessions *fakeSessionRepo) *AuthService {
	tokens := security.NewTokenIssuer([]byte("test-secret"), testTTL)
	return NewAuthService(users, sessions, tokens, testTTL)
}

func registerReq() RegisterRequest {
	return RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret",
	}
}

func TestRegister(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.UserStatusActive, user.Status)
	assert.True(t, strings.HasPrefix(user.Username, "ada"))
	assert.Len(t, user.Username, len("ada")+5)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, security.CheckPasswordHash("s3cret", user.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, "User already exists.", err.Error())
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	req := registerReq()
	req.Password = ""
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := newAuthService(users, sessions)

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, user.Username, resp.User.Username)

	// A freshly issued token resolves to exactly the user that logged in.
	session, err := sessions.Find(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.WithinDuration(t, session.CreatedAt.Add(testTTL), session.ExpiredAt, time.Second)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Invalid e-mail address.", err.Error())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Invalid password.", err.Error())
}

func TestLogin_BannedUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeSessionRepo())

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	users.setStatus(user.ID, model.UserStatusBanned)

	// Banned users are rejected even with the correct password.
	_, err = svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "User already banned.", err.Error())
}

func TestLogout(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := newAuthService(users, sessions)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	// The token no longer resolves.
	_, err = sessions.Find(context.Background(), resp.Token)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Logging out again reports the session as already gone.
	err = svc.Logout(context.Background(), resp.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "Session already ended.", err.Error())
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeSessionRepo())

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	bio := "Mathematician."
	updated, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{Biography: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Mathematician.", *updated.Biography)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, user.Username, updated.Username)
}

func TestUpdateProfile_StaleSession(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeSessionRepo())

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	users.delete(user.ID)

	_, err = svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "User not found.", err.Error())
}
