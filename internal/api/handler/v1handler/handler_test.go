package v1handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"filescan/internal/api/handler/v1handler"
	"filescan/pkg/logger"
	"filescan/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestStatusForError_PlainErrorIsInternal(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, v1handler.StatusForError(errors.New("boom")))
}

func TestStatusForError_KindSentinelDirect(t *testing.T) {
	require.Equal(t, http.StatusNotFound, v1handler.StatusForError(serrors.ErrNotFound))
	require.Equal(t, http.StatusUnauthorized, v1handler.StatusForError(serrors.ErrUnauthorized))
	require.Equal(t, http.StatusConflict, v1handler.StatusForError(serrors.ErrConflict))
	require.Equal(t, http.StatusTooManyRequests, v1handler.StatusForError(serrors.ErrRateLimited))
}

func TestStatusForError_SemanticWithMessage(t *testing.T) {
	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing file")
	require.Equal(t, http.StatusBadRequest, v1handler.StatusForError(err))
}

func TestStatusForError_SemanticWrap(t *testing.T) {
	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	require.Equal(t, http.StatusUnauthorized, v1handler.StatusForError(err))
}

func TestStatusForError_DegradedBudgets(t *testing.T) {
	require.Equal(t, http.StatusServiceUnavailable, v1handler.StatusForError(serrors.KindOnly(serrors.ErrTimeout)))
	require.Equal(t, http.StatusServiceUnavailable, v1handler.StatusForError(serrors.KindOnly(serrors.ErrUnavailable)))
	require.Equal(t, http.StatusInternalServerError, v1handler.StatusForError(serrors.KindOnly(serrors.ErrInternal)))
}
