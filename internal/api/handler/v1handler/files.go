package v1handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"filescan/pkg/domain"
	"filescan/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DefaultLimit is the page size used when the list endpoint receives no limit.
const DefaultLimit = 20

// uploadFormField is the multipart form field carrying the file contents.
const uploadFormField = "file"

// FileScan is the wire representation of an uploaded file record.
type FileScan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	Fingerprint string    `json:"fingerprint"`
	Verdict     string    `json:"verdict"`
	Degraded    bool      `json:"degraded,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// FileScanList is a page of file records.
type FileScanList struct {
	Items      []FileScan `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

// DownloadURL is the response of the download-url endpoint.
type DownloadURL struct {
	URL string `json:"url"`
}

// DomainFileScanToV1 maps a domain record to its wire representation.
func DomainFileScanToV1(in *domain.FileScan) FileScan {
	return FileScan{
		ID:          uuid.UUID(in.ID).String(),
		Name:        in.Name,
		Size:        in.Size,
		Fingerprint: in.Fingerprint,
		Verdict:     string(in.Verdict),
		Degraded:    in.Degraded,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

// CreateFile accepts a multipart upload, scans it synchronously and returns
// the stored record. The request body size is capped by middleware; hitting
// the cap surfaces as a bad request here.
func (h *Handler) CreateFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err,
				"file exceeds the %d byte upload limit", maxErr.Limit))

			return
		}
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "missing file field"))

		return
	}
	defer func() { _ = file.Close() }()

	contents, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err,
				"file exceeds the %d byte upload limit", maxErr.Limit))

			return
		}
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file"))

		return
	}

	record, err := h.deps.Uploader.Upload(ctx, GetUserIDFromContext(ctx), header.Filename, contents)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainFileScanToV1(record))
}

// ListFiles returns a page of the caller's records, optionally filtered by
// verdict.
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit: %q", raw))

			return
		}
		limit = uint(parsed)
	}

	files, nextCursor, err := h.deps.Uploader.UserFiles(ctx,
		GetUserIDFromContext(ctx),
		domain.Verdict(r.URL.Query().Get("verdict")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items := make([]FileScan, 0, len(files))
	for i := range files {
		items = append(items, DomainFileScanToV1(&files[i]))
	}

	writeJSON(ctx, w, http.StatusOK, FileScanList{Items: items, NextCursor: nextCursor})
}

// GetFile returns a single record by ID.
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fileID, err := fileIDParam(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	record, err := h.deps.Uploader.File(ctx, GetUserIDFromContext(ctx), fileID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainFileScanToV1(record))
}

// GetDownloadURL returns a short-lived presigned URL for a clean file.
func (h *Handler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fileID, err := fileIDParam(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	url, err := h.deps.Uploader.DownloadURL(ctx, GetUserIDFromContext(ctx), fileID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DownloadURL{URL: url})
}

// DeleteFile soft-deletes a record.
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fileID, err := fileIDParam(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Uploader.Delete(ctx, GetUserIDFromContext(ctx), fileID); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func fileIDParam(r *http.Request) (domain.FileID, error) {
	raw := chi.URLParam(r, "fileID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.FileID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid file ID: %q", raw)
	}

	return domain.FileID(id), nil
}
