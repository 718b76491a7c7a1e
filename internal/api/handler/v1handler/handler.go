// Package v1handler implements the HTTP handlers of version 1 of the file
// scanning API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"filescan/internal/upload"
	"filescan/pkg/logger"
	"filescan/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps bundles the collaborators the handlers need.
type Deps struct {
	// Uploader drives the upload pipeline and record queries.
	Uploader upload.Service
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

// New constructs a Handler from its dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router with every endpoint behind bearer auth.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(sec.WithAuth)

	r.Route("/files", func(r chi.Router) {
		r.Post("/", h.CreateFile)
		r.Get("/", h.ListFiles)
		r.Get("/{fileID}", h.GetFile)
		r.Get("/{fileID}/download-url", h.GetDownloadURL)
		r.Delete("/{fileID}", h.DeleteFile)
	})

	return r
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Code is the semantic error kind, e.g. NOT_FOUND.
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// StatusForError maps a semantic error kind to an HTTP status code. Unmatched
// errors are treated as internal.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout), errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the error and renders it as an ErrorResponse. Internal
// errors never leak their message to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusForError(err)

	resp := ErrorResponse{
		Code:    serrors.ErrInternal.Error(),
		Message: "internal error",
	}

	var serr *serrors.Error
	if status != http.StatusInternalServerError && errors.As(err, &serr) {
		if serr.Kind() != nil {
			resp.Code = serr.Kind().Error()
		}
		if serr.Message() != "" {
			resp.Message = serr.Message()
		} else {
			resp.Message = defaultMessage(status)
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", status))
	}

	writeJSON(ctx, w, status, resp)
}

func defaultMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusBadRequest:
		return "bad request"
	default:
		return http.StatusText(status)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}
