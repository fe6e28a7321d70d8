package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

func newAuthService(store *storage.Storage) (*AuthService, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	return NewAuthService(store, tokens), tokens
}

func TestRegister_IssuesTokenForNormalizedEmail(t *testing.T) {
	svc, tokens := newAuthService(storage.NewMemoryStorage())

	session, err := svc.Register(context.Background(), "  Alice@Example.COM ", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)
	ownerID, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, ownerID)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthService(storage.NewMemoryStorage())

	_, err := svc.Register(context.Background(), "not-an-email", "123")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "email")
	assert.Contains(t, validation.Fields, "password")

	_, err = svc.Register(context.Background(), "a@b.co", strings.Repeat("x", 73))
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "must be at most 72 bytes", validation.Fields["password"])

	_, err = svc.Register(context.Background(), "a@b.co", strings.Repeat("x", 72))
	assert.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(storage.NewMemoryStorage())
	_, err := svc.Register(context.Background(), "bob@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "BOB@example.com", "secret2")

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestRegister_StorageError(t *testing.T) {
	users := new(mockUserTable)
	users.On("Insert", mock.Anything, "carol@example.com", mock.AnythingOfType("string")).Return(nil, errors.New("disk full"))
	svc, _ := newAuthService(&storage.Storage{Users: users})

	_, err := svc.Register(context.Background(), "carol@example.com", "secret1")

	var internalErr *InternalError
	assert.ErrorAs(t, err, &internalErr)
	users.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(storage.NewMemoryStorage())
	registered, err := svc.Register(context.Background(), "dana@example.com", "secret1")
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), " DANA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, session.UserID)
	assert.NotEmpty(t, session.Token)

	_, wrongPassword := svc.Login(context.Background(), "dana@example.com", "secret2")
	_, unknownEmail := svc.Login(context.Background(), "erin@example.com", "secret1")

	var authErr *AuthError
	require.ErrorAs(t, wrongPassword, &authErr)
	require.ErrorAs(t, unknownEmail, &authErr)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_OverlongPasswordIsRejected(t *testing.T) {
	svc, _ := newAuthService(storage.NewMemoryStorage())
	_, err := svc.Register(context.Background(), "erin@example.com", strings.Repeat("y", 72))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "erin@example.com", strings.Repeat("y", 73))

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}
