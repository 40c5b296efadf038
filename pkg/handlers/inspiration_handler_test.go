package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/services"
)

// mockInspirationService implements services.InspirationService for
// handler tests, backed by a real result store keyed on the session IDs
// the handler mints.
type mockInspirationService struct {
	themeText    string
	sequenceText string
	suggestErr   error
	previewErr   error
	results      *services.ResultStore

	lastSessionID string
}

func newMockInspirationService() *mockInspirationService {
	return &mockInspirationService{
		themeText:    "THEME: Presence",
		sequenceText: "PEAK POSE: Crow\nSEQUENCE: a flow",
		results:      services.NewResultStore(),
	}
}

func (m *mockInspirationService) SuggestTheme(ctx context.Context, sessionID string) (string, error) {
	m.lastSessionID = sessionID
	if m.suggestErr != nil {
		return "", m.suggestErr
	}
	m.results.Set(sessionID, services.KindTheme, m.themeText)
	return m.themeText, nil
}

func (m *mockInspirationService) SuggestSequence(ctx context.Context, sessionID string) (string, error) {
	m.lastSessionID = sessionID
	if m.suggestErr != nil {
		return "", m.suggestErr
	}
	m.results.Set(sessionID, services.KindSequence, m.sequenceText)
	return m.sequenceText, nil
}

func (m *mockInspirationService) LastResult(sessionID string, kind services.SuggestionKind) (string, bool) {
	return m.results.Get(sessionID, kind)
}

func (m *mockInspirationService) ClearResult(sessionID string, kind services.SuggestionKind) {
	m.results.Clear(sessionID, kind)
}

func (m *mockInspirationService) HistoryPreview(ctx context.Context) ([]*models.ThemeStats, error) {
	if m.previewErr != nil {
		return nil, m.previewErr
	}
	return []*models.ThemeStats{{Theme: "Hip Openers", TimesTaught: 3}}, nil
}

func newInspirationMux(svc *mockInspirationService) *http.ServeMux {
	handler := NewInspirationHandler(svc, sessions.NewCookieStore([]byte("test-key")), zap.NewNop())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func TestInspirationHandler_SuggestTheme(t *testing.T) {
	svc := newMockInspirationService()
	mux := newInspirationMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/inspiration/theme", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, svc.lastSessionID)
	require.NotEmpty(t, rec.Result().Cookies(), "first contact must set the session cookie")

	var response ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
}

func TestInspirationHandler_SessionStableAcrossRequests(t *testing.T) {
	svc := newMockInspirationService()
	mux := newInspirationMux(svc)

	first := httptest.NewRequest(http.MethodPost, "/api/inspiration/theme", nil)
	firstRec := httptest.NewRecorder()
	mux.ServeHTTP(firstRec, first)
	require.Equal(t, http.StatusOK, firstRec.Code)
	firstSession := svc.lastSessionID

	second := httptest.NewRequest(http.MethodPost, "/api/inspiration/sequence", nil)
	for _, cookie := range firstRec.Result().Cookies() {
		second.AddCookie(cookie)
	}
	secondRec := httptest.NewRecorder()
	mux.ServeHTTP(secondRec, second)
	require.Equal(t, http.StatusOK, secondRec.Code)

	assert.Equal(t, firstSession, svc.lastSessionID)
}

func TestInspirationHandler_GetLastResultRoundTrip(t *testing.T) {
	svc := newMockInspirationService()
	mux := newInspirationMux(svc)

	post := httptest.NewRequest(http.MethodPost, "/api/inspiration/theme", nil)
	postRec := httptest.NewRecorder()
	mux.ServeHTTP(postRec, post)
	require.Equal(t, http.StatusOK, postRec.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/inspiration/theme", nil)
	for _, cookie := range postRec.Result().Cookies() {
		get.AddCookie(cookie)
	}
	getRec := httptest.NewRecorder()
	mux.ServeHTTP(getRec, get)

	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "Presence")
}

func TestInspirationHandler_GetWithoutResultIs404(t *testing.T) {
	mux := newInspirationMux(newMockInspirationService())

	req := httptest.NewRequest(http.MethodGet, "/api/inspiration/sequence", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInspirationHandler_DeleteClearsResult(t *testing.T) {
	svc := newMockInspirationService()
	mux := newInspirationMux(svc)

	post := httptest.NewRequest(http.MethodPost, "/api/inspiration/theme", nil)
	postRec := httptest.NewRecorder()
	mux.ServeHTTP(postRec, post)
	cookies := postRec.Result().Cookies()

	del := httptest.NewRequest(http.MethodDelete, "/api/inspiration/theme", nil)
	for _, cookie := range cookies {
		del.AddCookie(cookie)
	}
	delRec := httptest.NewRecorder()
	mux.ServeHTTP(delRec, del)
	require.Equal(t, http.StatusOK, delRec.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/inspiration/theme", nil)
	for _, cookie := range cookies {
		get.AddCookie(cookie)
	}
	getRec := httptest.NewRecorder()
	mux.ServeHTTP(getRec, get)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestInspirationHandler_GenerationFailureIs500(t *testing.T) {
	svc := newMockInspirationService()
	svc.suggestErr = errors.New("endpoint timeout")
	mux := newInspirationMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/inspiration/theme", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInspirationHandler_HistoryPreview(t *testing.T) {
	mux := newInspirationMux(newMockInspirationService())

	req := httptest.NewRequest(http.MethodGet, "/api/inspiration/history-preview", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hip Openers")
}
