package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/stretchr/testify/require"
)

// newTestErrHandler builds an error handler that logs nowhere and mails
// nobody, so tests can exercise error paths without side effects.
func newTestErrHandler() *errHandler.ErrorHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return errHandler.New("", nil, logger)
}

// decodeEnvelope unmarshals the standard response envelope and returns it.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	err := json.Unmarshal(rr.Body.Bytes(), &envelope)
	require.NoError(t, err)

	return envelope
}

// envelopeData returns the data object from a response envelope.
func envelopeData(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	envelope := decodeEnvelope(t, rr)
	require.Contains(t, envelope, "data")

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected response data to be an object")

	return data
}
