package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type ListCategoriesOutput struct {
	Body struct {
		Categories []string `json:"categories" doc:"Suggested names; any non-empty category is accepted"`
	}
}

// Handler handles GET /categories.
type Handler struct {
	Suggested func() []string
}

func NewHandler(suggested func() []string) *Handler {
	return &Handler{Suggested: suggested}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "Suggested categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	out := &ListCategoriesOutput{}
	out.Body.Categories = h.Suggested()
	return out, nil
}
