package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/questguild/quests-tracker/internal/api"
	v1 "github.com/questguild/quests-tracker/internal/api/v1"
	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/service/mocks"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := api.NewServer(v1.Services{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestVersionEndpoint(t *testing.T) {
	t.Parallel()

	router := api.NewServer(v1.Services{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.GoVersion)
	assert.NotEmpty(t, resp.Platform)
}

func TestV1Mounted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	viewer := mocks.NewMockQuestViewer(ctrl)
	viewer.EXPECT().BoardChecking(gomock.Any(), gomock.Any()).
		Return([]domain.QuestView{}, nil)

	router := api.NewServer(v1.Services{Viewer: viewer})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/quests", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareOrdering(t *testing.T) {
	t.Parallel()

	var sawRequestID bool
	probe := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawRequestID = middleware.GetReqID(r.Context()) != ""
			next.ServeHTTP(w, r)
		})
	}

	router := api.NewServer(v1.Services{},
		api.WithMiddlewares(middleware.RequestID, probe, api.LoggingMiddleware),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawRequestID)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	router := api.NewServer(v1.Services{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
