package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/educhain/educhain-api/internal/cache"
	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/models"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/response"
	"github.com/educhain/educhain-api/internal/validator"
)

const (
	heatmapCacheKey = "heatmap:city-country"
	heatmapCacheTTL = 60 * time.Second
)

type DiscoveryHandler struct {
	StudentRepo repository.StudentRepository
	Cache       *cache.Cache
	ErrHandler  *errHandler.ErrorHandler
}

func NewDiscoveryHandler(handler *DiscoveryHandler) *DiscoveryHandler {
	return &DiscoveryHandler{
		StudentRepo: handler.StudentRepo,
		Cache:       handler.Cache,
		ErrHandler:  handler.ErrHandler,
	}
}

type HeatmapPointData struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// HandleDiscoverStudents filters students for donor-facing discovery. A
// free-text q matches name or school case-insensitively; lat/lng narrow to
// students with a location set. Discovery is best-effort: a store failure
// is reported server-side and surfaces to the client as an empty list, not
// an error.
func (h *DiscoveryHandler) HandleDiscoverStudents(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator

	limit := parseLimitParam(r, 100)
	v.Check(validator.Between(limit, 1, 200), "Limit must be between 1 and 200")

	if v.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, v.Errors)
		return
	}

	query := r.URL.Query().Get("q")
	hasLocation := r.URL.Query().Has("lat") && r.URL.Query().Has("lng")

	data := []*StudentResponseData{}

	students, err := h.StudentRepo.Search(query, hasLocation, limit)
	if err != nil {
		h.ErrHandler.ReportServerError(r, err)
	} else {
		data = make([]*StudentResponseData, len(students))
		for i := range students {
			data[i] = newStudentResponseData(&students[i])
		}
	}

	message := "Data retrieved successfully"
	err = response.JSONOkResponse(w, data, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleHeatmap returns donor-facing geographic counts. The aggregation is
// cached briefly; both the cache and the store are best-effort, degrading
// to an empty point list.
func (h *DiscoveryHandler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	points := []HeatmapPointData{}

	cached := false
	if h.Cache != nil {
		if value, err := h.Cache.Get(heatmapCacheKey); err == nil {
			if err := json.Unmarshal([]byte(value), &points); err == nil {
				cached = true
			}
		}
	}

	if !cached {
		rows, err := h.StudentRepo.Heatmap()
		if err != nil {
			h.ErrHandler.ReportServerError(r, err)
			rows = []models.HeatmapPoint{}
		}

		points = make([]HeatmapPointData, len(rows))
		for i, row := range rows {
			points[i] = HeatmapPointData{
				City:    row.City,
				Country: row.Country,
				Count:   row.Count,
			}
		}

		if h.Cache != nil && err == nil {
			if encoded, err := json.Marshal(points); err == nil {
				// cache write failures are ignored; the next request
				// recomputes
				_ = h.Cache.Set(heatmapCacheKey, string(encoded), heatmapCacheTTL)
			}
		}
	}

	message := "Data retrieved successfully"
	err := response.JSONOkResponse(w, map[string]any{"points": points}, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
