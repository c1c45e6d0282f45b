package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/api"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/jwt"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/service"
)

type stubClickCountService struct {
	counts map[string]int
}

func (s *stubClickCountService) Increment(ctx context.Context, userID uuid.UUID, filterType string) (int, error) {
	column, ok := model.CounterColumn(filterType)
	if !ok {
		return 0, service.ErrUnknownFilter
	}
	s.counts[column]++
	return s.counts[column], nil
}

func (s *stubClickCountService) GetCounts(ctx context.Context, userID uuid.UUID) (*model.ClickCount, error) {
	if len(s.counts) == 0 {
		return nil, service.ErrCounterNotFound
	}
	return &model.ClickCount{UserID: userID, OilyCount: s.counts["oily_count"]}, nil
}

func newClickCountApp() (*fiber.App, *stubClickCountService) {
	svc := &stubClickCountService{counts: map[string]int{}}
	handler := api.NewClickCountHandler(svc)

	app := fiber.New()
	app.Post("/api/click-count", api.AuthMiddleware(), handler.Increment)
	app.Get("/api/click-counts", api.AuthMiddleware(), handler.GetCounts)
	return app, svc
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.GenerateToken(&model.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestClickCountHandler_Increment_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app, _ := newClickCountApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/click-count", "", fiber.Map{"filter_type": "Oily"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClickCountHandler_Increment_UnknownFilter(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app, svc := newClickCountApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/click-count", bearerToken(t), fiber.Map{"filter_type": "Unknown"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Empty(t, svc.counts)
}

func TestClickCountHandler_IncrementThenGetCounts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app, _ := newClickCountApp()
	auth := bearerToken(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/click-count", auth, fiber.Map{"filter_type": "Oily"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var incremented struct {
		FilterType string `json:"filter_type"`
		Count      int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &incremented))
	require.Equal(t, "Oily", incremented.FilterType)
	require.Equal(t, 1, incremented.Count)

	resp = doJSON(t, app, fiber.MethodGet, "/api/click-counts", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	var counts struct {
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(body, &counts))
	require.Equal(t, 1, counts.Counts["oily_count"])
	require.Equal(t, 0, counts.Counts["dry_count"])
}

func TestClickCountHandler_GetCounts_NotFound(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app, _ := newClickCountApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/click-counts", bearerToken(t), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
