package category

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Purvi1411/expense-tracker/internal/service"
)

func TestHTTP_ListCategories(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(service.SuggestedCategories).Register(api)

	resp := api.Get("/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Categories, "Food")
	assert.Contains(t, body.Categories, "Salary")
}

func TestSuggestedCategories_ReturnsCopy(t *testing.T) {
	first := service.SuggestedCategories()
	first[0] = "changed"

	assert.NotEqual(t, "changed", service.SuggestedCategories()[0])
}
