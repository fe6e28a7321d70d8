package user

import (
	"time"

	"github.com/Purvi1411/expense-tracker/internal/service"
)

// Credentials is the request body for register and login.
type Credentials struct {
	Email    string `json:"email,omitempty" maxLength:"254" doc:"Email address, matched case-insensitively"`
	Password string `json:"password,omitempty" maxLength:"72" doc:"At least 6 characters"`
}

// Session is the response body for register and login.
type Session struct {
	ID        string    `json:"id" doc:"User UUID"`
	Email     string    `json:"email" doc:"Normalised email address"`
	Token     string    `json:"token" doc:"Bearer token for the Authorization header"`
	ExpiresAt time.Time `json:"expiresAt" doc:"Token expiry"`
}

func sessionFrom(s service.Session) Session {
	return Session{
		ID:        s.UserID.String(),
		Email:     s.Email,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}
