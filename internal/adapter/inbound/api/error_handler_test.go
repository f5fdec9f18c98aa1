package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/application/dto"
	"hellotutor/internal/config"
	"hellotutor/internal/domain/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorHandler(t *testing.T, options FormatOptions) (*DefaultErrorHandler, *bytes.Buffer) {
	t.Helper()
	stderr := &bytes.Buffer{}
	logger, err := logging.NewWithStreams(
		logging.Config{Level: logging.LevelDebug, Format: "json"},
		&bytes.Buffer{}, stderr,
	)
	require.NoError(t, err)
	factory := failure.NewFactory(failure.NewClassifier(logger), logger)
	return NewDefaultErrorHandler(factory, logger, options), stderr
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) dto.ErrorEnvelope {
	t.Helper()
	var envelope dto.ErrorEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	return envelope
}

func TestDefaultErrorHandler_WritesEnvelope(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		hint           failure.Category
		expectedStatus int
		expectedType   string
	}{
		{
			name:           "validation_hint_yields_400",
			err:            errors.New("name too long"),
			hint:           failure.CategoryValidation,
			expectedStatus: http.StatusBadRequest,
			expectedType:   "VALIDATION_ERROR",
		},
		{
			name:           "server_hint_yields_500",
			err:            errors.New("something broke"),
			hint:           failure.CategoryServer,
			expectedStatus: http.StatusInternalServerError,
			expectedType:   "SERVER_ERROR",
		},
		{
			name:           "invalid_hint_defaults_to_server",
			err:            errors.New("unclear"),
			hint:           failure.Category(""),
			expectedStatus: http.StatusInternalServerError,
			expectedType:   "SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, stderr := newTestErrorHandler(t, FormatOptions{Environment: config.EnvProduction})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/hello/x", nil)

			handler.HandleError(recorder, request, tt.err, tt.hint)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedType, recorder.Header().Get("X-Error-Type"))

			envelope := decodeEnvelope(t, recorder)
			assert.True(t, envelope.Error)
			assert.Equal(t, tt.expectedType, envelope.Type)
			assert.Equal(t, tt.err.Error(), envelope.Message)

			assert.Contains(t, stderr.String(), "Request failed")
		})
	}
}

func TestDefaultErrorHandler_ClassifiedValuePassesThrough(t *testing.T) {
	handler, _ := newTestErrorHandler(t, FormatOptions{Environment: config.EnvProduction})

	classified := handler.factory.NewError(
		context.Background(), "bad input", failure.CategoryValidation, 422, failure.Guidance{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/hello", nil)

	// The server hint must not override the existing classification.
	handler.HandleError(recorder, request, classified, failure.CategoryServer)

	assert.Equal(t, 422, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Type)
}

func TestDefaultErrorHandler_CorrelationIDHeader(t *testing.T) {
	handler, _ := newTestErrorHandler(t, FormatOptions{Environment: config.EnvProduction})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/hello", nil)
	request = request.WithContext(logging.WithCorrelationID(request.Context(), "corr-42"))

	handler.HandleError(recorder, request, errors.New("x"), failure.CategoryServer)

	assert.Equal(t, "corr-42", recorder.Header().Get("X-Correlation-ID"))
}

func TestDefaultErrorHandler_EducationalEnvelope(t *testing.T) {
	handler, _ := newTestErrorHandler(t, FormatOptions{
		Educational: true,
		Environment: config.EnvEducational,
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/hello", nil)

	handler.HandleError(recorder, request, errors.New("oops"), failure.CategoryValidation)

	envelope := decodeEnvelope(t, recorder)
	require.NotNil(t, envelope.Educational)
	assert.NotEmpty(t, envelope.Educational.Troubleshooting)
	require.NotNil(t, envelope.Debug)
	assert.NotEmpty(t, envelope.Debug.StackTrace)
}
