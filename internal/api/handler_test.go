package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/api"
	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/cocktail"
)

// mockService is a mock of the cocktail service.
type mockService struct {
	view     cocktail.View
	err      error
	lastSel  cocktail.SelectionState
	lastMode cocktail.Mode
	calls    int
}

func (m *mockService) Generate(_ context.Context, sel cocktail.SelectionState, mode cocktail.Mode) (cocktail.View, error) {
	m.calls++
	m.lastSel = sel
	m.lastMode = mode
	return m.view, m.err
}

func newTestRouter(service api.CocktailService, session *cocktail.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := api.NewHandler(service, session, 5*time.Second)

	r := gin.New()
	r.POST("/api/cocktails", handler.Generate)
	r.GET("/api/session", handler.GetSession)
	r.POST("/api/session/next", handler.Next)
	r.POST("/api/session/previous", handler.Previous)
	r.POST("/api/session/goto", handler.GoTo)
	r.POST("/api/session/theme", handler.ToggleTheme)
	r.GET("/api/healthz", handler.Health)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func publishedSession(t *testing.T, n int) *cocktail.Session {
	t.Helper()
	session := cocktail.NewSession(nil)
	batch := make([]cocktail.Recipe, n)
	for i := range batch {
		batch[i] = cocktail.Recipe{Name: string(rune('A' + i))}
	}
	require.True(t, session.Publish(session.Begin(), batch))
	return session
}

func TestGenerate_Success(t *testing.T) {
	service := &mockService{view: cocktail.View{
		State:   cocktail.StateSuccess,
		Recipes: []cocktail.Recipe{{Name: "Negroni"}, {Name: "Martini"}},
		Theme:   cocktail.ThemeLight,
	}}
	r := newTestRouter(service, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/cocktails", api.GenerateRequest{
		SelectedAlcohols: []string{"Gin"},
		Mixers:           "tonic water",
		Mode:             "guided",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.StateSuccess, view.State)
	assert.Len(t, view.Recipes, 2)

	assert.Equal(t, cocktail.ModeGuided, service.lastMode)
	assert.Equal(t, []string{"Gin"}, service.lastSel.SelectedAlcohols)
	assert.Equal(t, "tonic water", service.lastSel.Mixers)
}

func TestGenerate_InvalidModeRejected(t *testing.T) {
	service := &mockService{}
	r := newTestRouter(service, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/cocktails", api.GenerateRequest{Mode: "random"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, service.calls)
}

func TestGenerate_ValidationError(t *testing.T) {
	service := &mockService{
		view: cocktail.View{State: cocktail.StateFailed, Message: cocktail.MsgNoIngredients, Theme: cocktail.ThemeLight},
		err:  cocktail.ErrNoIngredients,
	}
	r := newTestRouter(service, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/cocktails", api.GenerateRequest{Mode: "guided"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.MsgNoIngredients, view.Message)
}

func TestGenerate_GenerationFailure(t *testing.T) {
	service := &mockService{
		view: cocktail.View{State: cocktail.StateFailed, Message: cocktail.MsgGenerationFailed, Theme: cocktail.ThemeLight},
		err:  cocktail.ErrRecipeGeneration,
	}
	r := newTestRouter(service, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/cocktails", api.GenerateRequest{Mode: "surprise"})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.MsgGenerationFailed, view.Message)
}

func TestGenerate_MissingCredential(t *testing.T) {
	service := &mockService{
		view: cocktail.View{State: cocktail.StateFailed, Message: cocktail.MsgNotConfigured, Theme: cocktail.ThemeLight},
		err:  cocktail.ErrMissingAPIKey,
	}
	r := newTestRouter(service, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/cocktails", api.GenerateRequest{Mode: "surprise"})

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetSession(t *testing.T) {
	session := publishedSession(t, 3)
	r := newTestRouter(&mockService{}, session)

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.StateSuccess, view.State)
	assert.Len(t, view.Recipes, 3)
	assert.Equal(t, 0, view.CurrentIndex)
}

func TestNavigation_NextWrapsAround(t *testing.T) {
	session := publishedSession(t, 3)
	r := newTestRouter(&mockService{}, session)

	var view cocktail.View
	for i := 0; i < 3; i++ {
		rr := postJSON(t, r, "/api/session/next", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	}
	assert.Equal(t, 0, view.CurrentIndex)
}

func TestNavigation_PreviousWrapsFromZero(t *testing.T) {
	session := publishedSession(t, 4)
	r := newTestRouter(&mockService{}, session)

	rr := postJSON(t, r, "/api/session/previous", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, 3, view.CurrentIndex)
}

func TestNavigation_GoTo(t *testing.T) {
	session := publishedSession(t, 3)
	r := newTestRouter(&mockService{}, session)

	rr := postJSON(t, r, "/api/session/goto", api.GoToRequest{Index: 2})
	require.Equal(t, http.StatusOK, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, 2, view.CurrentIndex)

	rr = postJSON(t, r, "/api/session/goto", api.GoToRequest{Index: 9})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNavigation_WithoutResults(t *testing.T) {
	r := newTestRouter(&mockService{}, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/session/next", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestToggleTheme(t *testing.T) {
	r := newTestRouter(&mockService{}, cocktail.NewSession(nil))

	rr := postJSON(t, r, "/api/session/theme", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var view cocktail.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.ThemeDark, view.Theme)

	rr = postJSON(t, r, "/api/session/theme", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, cocktail.ThemeLight, view.Theme)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&mockService{}, cocktail.NewSession(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
