package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a registered account holder. Email is stored normalised.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	// Insert returns ErrUniqueViolation when the email is already registered.
	Insert(ctx context.Context, email, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
