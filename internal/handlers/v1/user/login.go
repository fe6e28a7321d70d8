package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

type LoginInput struct {
	Body Credentials
}

type LoginOutput struct {
	Body Session
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (service.Session, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	AuthService authenticator
}

func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Exchanges email and password for a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	session, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("ownerID", session.UserID.String())
	}
	return &LoginOutput{Body: sessionFrom(session)}, nil
}
