package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/storage"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

// Session is returned by register and login.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	storage *storage.Storage
	tokens  *auth.TokenIssuer
}

func NewAuthService(store *storage.Storage, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{storage: store, tokens: tokens}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs them in. A taken email is a ConflictError.
func (s *AuthService) Register(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)

	v := &ValidationError{}
	if email == "" {
		v.add("email", "is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		v.add("email", "must be a valid email address")
	}
	if len(password) < auth.MinPasswordLength {
		v.add("password", "must be at least 6 characters")
	} else if len(password) > auth.MaxPasswordBytes {
		v.add("password", "must be at most 72 bytes")
	}
	if err := v.orNil(); err != nil {
		return Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, internal("hash password", err)
	}

	user, err := s.storage.Users.Insert(ctx, email, hash)
	if errors.Is(err, sqlconfig.ErrUniqueViolation) {
		return Session{}, &ConflictError{Reason: "email already registered"}
	}
	if err != nil {
		return Session{}, internal("insert user", err)
	}

	return s.session(user)
}

// Login verifies credentials. Unknown emails and wrong passwords are the same AuthError.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	if len(password) > auth.MaxPasswordBytes {
		return Session{}, &AuthError{Reason: "invalid email or password"}
	}
	user, err := s.storage.Users.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return Session{}, &AuthError{Reason: "invalid email or password"}
	}
	if err != nil {
		return Session{}, internal("find user", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return Session{}, internal("check password", err)
	}
	if !ok {
		return Session{}, &AuthError{Reason: "invalid email or password"}
	}

	return s.session(user)
}

func (s *AuthService) session(user *sqlconfig.User) (Session, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return Session{}, internal("issue token", err)
	}
	return Session{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
