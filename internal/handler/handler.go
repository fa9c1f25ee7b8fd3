package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/file"
)

type RouteHandler struct {
	ErrHandler   *errHandler.ErrorHandler
	FileUploader *file.FileUploader
}

func NewRouteHandler(handler *RouteHandler) *RouteHandler {
	return &RouteHandler{
		ErrHandler:   handler.ErrHandler,
		FileUploader: handler.FileUploader,
	}
}

// parseLimitParam reads the limit query parameter, falling back to
// defaultLimit when absent or unparsable. Range checking is left to the
// caller's validator.
func parseLimitParam(r *http.Request, defaultLimit int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return defaultLimit
	}

	return limit
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullStringFrom(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloatFrom(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
