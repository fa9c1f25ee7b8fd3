package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/educhain/educhain-api/internal/mocks"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHandleDiscoverStudents_PassesFilters(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	students := []models.Student{
		{
			ID:         "1e2f3a4b-5c6d-4e7f-8a9b-0c1d2e3f4a5b",
			FullName:   "Ravi Kumar",
			Email:      "ravi@example.com",
			SchoolName: "Govt High School",
			TrustScore: 70,
			KycStatus:  "verified",
			CreatedAt:  time.Now(),
		},
	}

	mockStudentRepo.On("Search", "ravi", true, 100).Return(students, nil)

	discoveryHandler := &DiscoveryHandler{
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := httptest.NewRequest("GET", "/discover?q=ravi&lat=12.97&lng=77.59", nil)
	rr := httptest.NewRecorder()

	discoveryHandler.HandleDiscoverStudents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Ravi Kumar", first["full_name"])
	require.Equal(t, float64(70), first["trust_score"])

	mockStudentRepo.AssertExpectations(t)
}

func TestHandleDiscoverStudents_StoreFailureDegradesToEmpty(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	mockStudentRepo.On("Search", "", false, 100).Return(nil, errors.New("connection refused"))

	discoveryHandler := &DiscoveryHandler{
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := httptest.NewRequest("GET", "/discover", nil)
	rr := httptest.NewRecorder()

	discoveryHandler.HandleDiscoverStudents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	// empty result lists are elided from the envelope entirely
	envelope := decodeEnvelope(t, rr)
	require.True(t, envelope["success"].(bool))
	require.Nil(t, envelope["data"])
}

func TestHandleDiscoverStudents_LimitOutOfRange(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	discoveryHandler := &DiscoveryHandler{
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := httptest.NewRequest("GET", "/discover?limit=500", nil)
	rr := httptest.NewRecorder()

	discoveryHandler.HandleDiscoverStudents(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	mockStudentRepo.AssertNotCalled(t, "Search", "", false, 500)
}

func TestHandleHeatmap(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	rows := []models.HeatmapPoint{
		{City: "Bengaluru", Country: "India", Count: 12},
		{City: "Unknown", Country: "Unknown", Count: 3},
	}
	mockStudentRepo.On("Heatmap").Return(rows, nil)

	discoveryHandler := &DiscoveryHandler{
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := httptest.NewRequest("GET", "/heatmap", nil)
	rr := httptest.NewRecorder()

	discoveryHandler.HandleHeatmap(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	data := envelopeData(t, rr)
	points, ok := data["points"].([]any)
	require.True(t, ok)
	require.Len(t, points, 2)

	first, ok := points[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Bengaluru", first["city"])
	require.Equal(t, "India", first["country"])
	require.Equal(t, float64(12), first["count"])
}

func TestHandleHeatmap_StoreFailureDegradesToEmpty(t *testing.T) {
	mockStudentRepo := new(mocks.MockStudentRepo)

	mockStudentRepo.On("Heatmap").Return(nil, errors.New("connection refused"))

	discoveryHandler := &DiscoveryHandler{
		StudentRepo: mockStudentRepo,
		ErrHandler:  newTestErrHandler(),
	}

	req := httptest.NewRequest("GET", "/heatmap", nil)
	rr := httptest.NewRecorder()

	discoveryHandler.HandleHeatmap(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	data := envelopeData(t, rr)
	points, ok := data["points"].([]any)
	require.True(t, ok)
	require.Empty(t, points)
}
