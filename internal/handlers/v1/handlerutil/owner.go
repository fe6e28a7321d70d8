package handlerutil

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// Owner returns the caller set by the auth middleware. Operations reaching a
// handler without one were registered without bearer security.
func Owner(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized(auth.ErrUnauthorized.Error())
	}
	return ownerID, nil
}

// PathID parses a record id from the URL. Malformed ids are reported the same
// way as ids that do not exist.
func PathID(ctx context.Context, raw, resource string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, ServiceError(ctx, &service.NotFoundError{Resource: resource})
	}
	return id, nil
}
