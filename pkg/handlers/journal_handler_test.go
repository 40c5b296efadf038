package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alou/yoga-journal/pkg/apperrors"
	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/services"
)

// mockJournalService implements services.JournalService for handler tests.
type mockJournalService struct {
	logClassErr error
	lastInput   *services.LogClassInput
}

func (m *mockJournalService) LogClass(ctx context.Context, input *services.LogClassInput) (*models.ClassRecord, error) {
	m.lastInput = input
	if m.logClassErr != nil {
		return nil, m.logClassErr
	}
	return &models.ClassRecord{ID: 42, ClassDate: input.Date, DayOfWeek: input.Date.Weekday().String()}, nil
}

func postClass(t *testing.T, handler *JournalHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.LogClass(rec, req)
	return rec
}

func TestLogClassHandler_Created(t *testing.T) {
	svc := &mockJournalService{}
	handler := NewJournalHandler(svc, zap.NewNop())

	rec := postClass(t, handler, LogClassRequest{
		Date:         "2026-08-24",
		Time:         "09:00",
		LocationID:   1,
		ClassTypeID:  1,
		StudentCount: 22,
		VibeRating:   5,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var response ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)

	require.NotNil(t, svc.lastInput)
	assert.Equal(t, "09:00", svc.lastInput.Time)
	assert.Equal(t, int64(1), svc.lastInput.LocationID)
}

func TestLogClassHandler_BadDate(t *testing.T) {
	handler := NewJournalHandler(&mockJournalService{}, zap.NewNop())

	rec := postClass(t, handler, LogClassRequest{Date: "24/08/2026", VibeRating: 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogClassHandler_BadBody(t *testing.T) {
	handler := NewJournalHandler(&mockJournalService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.LogClass(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogClassHandler_ValidationErrorIs400(t *testing.T) {
	svc := &mockJournalService{
		logClassErr: fmt.Errorf("%w: vibe rating must be between 1 and 5", apperrors.ErrValidation),
	}
	handler := NewJournalHandler(svc, zap.NewNop())

	rec := postClass(t, handler, LogClassRequest{Date: "2026-08-24", VibeRating: 9})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["error"])
}

func TestLogClassHandler_WarehouseErrorIs500(t *testing.T) {
	svc := &mockJournalService{logClassErr: errors.New("connection reset")}
	handler := NewJournalHandler(svc, zap.NewNop())

	rec := postClass(t, handler, LogClassRequest{Date: "2026-08-24", VibeRating: 5})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogClassHandler_NotConnectedIs503(t *testing.T) {
	svc := &mockJournalService{
		logClassErr: fmt.Errorf("%w: pool closed", apperrors.ErrNotConnected),
	}
	handler := NewJournalHandler(svc, zap.NewNop())

	rec := postClass(t, handler, LogClassRequest{Date: "2026-08-24", VibeRating: 5})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
