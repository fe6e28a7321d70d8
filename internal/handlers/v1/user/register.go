package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

type RegisterInput struct {
	Body Credentials
}

type RegisterOutput struct {
	Body Session
}

type registerer interface {
	Register(ctx context.Context, email, password string) (service.Session, error)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	AuthService registerer
}

func NewRegisterHandler(svc registerer) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register",
		Description:   "Creates a user and returns a session token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	session, err := h.AuthService.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("ownerID", session.UserID.String())
	}
	return &RegisterOutput{Body: sessionFrom(session)}, nil
}
