package service

import (
	"context"
	"time"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/events"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

// Notifier receives change events after successful writes. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, event events.Event) bool
}

// Clock returns the current time in the server's configured location.
type Clock func() time.Time

// ClockIn returns a Clock reading the system time in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Report      *ReportService
	Auth        *AuthService
}

// NewService creates a new Service with the given storage. A nil notifier
// disables change events; a nil clock uses the local system time.
func NewService(store *storage.Storage, tokens *auth.TokenIssuer, notifier Notifier, clock Clock) *Service {
	return &Service{
		Transaction: NewTransactionService(store, notifier, clock),
		Budget:      NewBudgetService(store, notifier, clock),
		Report:      NewReportService(store, clock),
		Auth:        NewAuthService(store, tokens),
	}
}

func clockOrDefault(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

func notify(ctx context.Context, notifier Notifier, event events.Event) {
	if notifier != nil {
		notifier.Notify(ctx, event)
	}
}
