package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Purvi1411/expense-tracker/internal/logging"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"Always ok when the server can reach its storage"`
	}
}

// Handler handles GET /status. DB is nil for the in-memory backend.
type Handler struct {
	DB pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			if logData := logging.GetLogData(ctx); logData != nil {
				logData.AddData("error", err.Error())
			}
			return nil, huma.Error503ServiceUnavailable("storage unavailable")
		}
	}

	out := &StatusOutput{}
	out.Body.Status = "ok"
	return out, nil
}
