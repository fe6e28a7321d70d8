package handlerutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestServiceError_Mapping(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"validation": {&service.ValidationError{Fields: map[string]string{"amount": "must be greater than 0"}}, http.StatusBadRequest},
		"auth":       {&service.AuthError{Reason: "invalid email or password"}, http.StatusUnauthorized},
		"token":      {auth.ErrUnauthorized, http.StatusUnauthorized},
		"not found":  {&service.NotFoundError{Resource: "transaction"}, http.StatusNotFound},
		"conflict":   {&service.ConflictError{Reason: "email already registered"}, http.StatusConflict},
		"internal":   {&service.InternalError{Op: "list", Err: errors.New("connection refused")}, http.StatusInternalServerError},
		"unknown":    {errors.New("boom"), http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusOf(t, ServiceError(context.Background(), tc.err)))
		})
	}
}

func TestServiceError_ValidationDetails(t *testing.T) {
	err := ServiceError(context.Background(), &service.ValidationError{Fields: map[string]string{
		"kind":   "must be income or expense",
		"amount": "is required",
	}})

	var model *huma.ErrorModel
	require.ErrorAs(t, err, &model)
	require.Len(t, model.Errors, 2)
	assert.Equal(t, "amount", model.Errors[0].Location)
	assert.Equal(t, "kind", model.Errors[1].Location)
}

func TestServiceError_InternalDetailsAreLoggedNotReturned(t *testing.T) {
	logData := logging.NewLogData(logrus.New())
	ctx := logging.WithLogData(context.Background(), logData)

	err := ServiceError(ctx, &service.InternalError{Op: "insert transaction", Err: errors.New("pq: relation missing")})

	assert.NotContains(t, err.Error(), "pq:")
	assert.Contains(t, logData.Log().Data["error"], "pq: relation missing")
}

func TestOwner_Missing(t *testing.T) {
	_, err := Owner(context.Background())

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestPathID_Malformed(t *testing.T) {
	_, err := PathID(context.Background(), "not-a-uuid", "transaction")

	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestAmount_JSONNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{NewAmount(decimal.RequireFromString("12.50"))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":12.5}`, string(out))
}

func TestFlexAmount_Unmarshal(t *testing.T) {
	cases := map[string]struct {
		body     string
		expected *string
	}{
		"number":  {`{"amount":12.5}`, ptr("12.5")},
		"string":  {`{"amount":"7.25"}`, ptr("7.25")},
		"garbage": {`{"amount":"abc"}`, ptr("abc")},
		"null":    {`{"amount":null}`, nil},
		"absent":  {`{}`, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var body struct {
				Amount FlexAmount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &body))
			assert.Equal(t, tc.expected, body.Amount.Text())
		})
	}
}

func ptr(s string) *string { return &s }
