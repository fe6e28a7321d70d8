package handlerutil

import (
	"context"
	"errors"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// ServiceError converts a service error into the huma error returned to the
// client. Anything unrecognised becomes a 500 whose cause is only logged.
func ServiceError(ctx context.Context, err error) error {
	var (
		validation *service.ValidationError
		notFound   *service.NotFoundError
		conflict   *service.ConflictError
		authErr    *service.AuthError
	)

	switch {
	case errors.As(err, &validation):
		return huma.Error400BadRequest("validation failed", fieldDetails(validation.Fields)...)
	case errors.As(err, &authErr):
		return huma.Error401Unauthorized(authErr.Reason)
	case errors.Is(err, auth.ErrUnauthorized):
		return huma.Error401Unauthorized(auth.ErrUnauthorized.Error())
	case errors.As(err, &notFound):
		return huma.Error404NotFound(notFound.Error())
	case errors.As(err, &conflict):
		return huma.Error409Conflict(conflict.Reason)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.Error500InternalServerError("internal server error")
}

func fieldDetails(fields map[string]string) []error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]error, len(names))
	for i, name := range names {
		details[i] = &huma.ErrorDetail{Location: name, Message: fields[name]}
	}
	return details
}
