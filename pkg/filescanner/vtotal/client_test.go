package vtotal_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"filescan/pkg/filescanner"
	"filescan/pkg/filescanner/vtotal"
	"filescan/pkg/metrics"
	"filescan/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *vtotal.Client {
	return vtotal.New(&http.Client{Transport: fn}, "https://scanner.test/api/v3", "test-key")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const fp = "275a021bbfb6489e54d471899f7db9d1663fc695ec2fe2a2c4538aabf651fd0f"

func TestClient_FileReport_knownHash(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v3/files/"+fp, r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-apikey"))

		return jsonResponse(http.StatusOK, `{
			"data": {
				"id": "`+fp+`",
				"attributes": {
					"last_analysis_id": "an-123",
					"last_analysis_stats": {"malicious": 2, "suspicious": 1, "harmless": 60, "undetected": 5}
				}
			}
		}`), nil
	})

	rep, err := c.FileReport(context.Background(), fp)
	require.NoError(t, err)
	require.Equal(t, fp, rep.ID)
	require.Equal(t, "an-123", rep.LastAnalysisID)
	require.NotNil(t, rep.LastAnalysisStats)
	require.Equal(t, 2, rep.LastAnalysisStats.Malicious)
	require.Equal(t, 60, rep.LastAnalysisStats.Harmless)
}

func TestClient_FileReport_unknownHashIsNotFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound,
			`{"error":{"code":"NotFoundError","message":"File not found"}}`), nil
	})

	_, err := c.FileReport(context.Background(), fp)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, err.Error(), "File not found")
}

func TestClient_UploadFile_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v3/files", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		require.Equal(t, "report.pdf", hdr.Filename)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "hello", string(b))

		return jsonResponse(http.StatusOK, `{"data":{"type":"analysis","id":"an-456"}}`), nil
	})

	id, err := c.UploadFile(context.Background(), "report.pdf", []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "an-456", id)
}

func TestClient_UploadFile_conflict409(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusConflict,
			`{"error":{"code":"AlreadyExistsError","message":"File already exists"}}`), nil
	})

	_, err := c.UploadFile(context.Background(), "a.bin", []byte{1})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestClient_UploadFile_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests,
			`{"error":{"code":"QuotaExceededError","message":"Quota exceeded"}}`), nil
	})

	_, err := c.UploadFile(context.Background(), "a.bin", []byte{1})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_UploadFile_duplicateInFlight400(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest,
			`{"error":{"code":"DuplicateAnalysisError","message":"analysis already in flight"}}`), nil
	})

	_, err := c.UploadFile(context.Background(), "a.bin", []byte{1})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.NotErrorIs(t, err, serrors.ErrAnalysisPending)
}

func TestClient_remoteErrorsCountedByKind(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests,
			`{"error":{"code":"QuotaExceededError","message":"Quota exceeded"}}`), nil
	})

	counter := metrics.RemoteErrors.WithLabelValues("RATE_LIMITED")
	before := testutil.ToFloat64(counter)

	_, err := c.FileReport(context.Background(), fp)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, before+1, testutil.ToFloat64(counter)) //nolint: testifylint
}

func TestClient_Analysis_completed(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/v3/analyses/an-456", r.URL.Path)

		return jsonResponse(http.StatusOK, `{
			"data": {
				"id": "an-456",
				"attributes": {
					"status": "completed",
					"stats": {"malicious": 0, "suspicious": 0, "harmless" : 70, "undetected": 3}
				}
			}
		}`), nil
	})

	rep, err := c.Analysis(context.Background(), "an-456")
	require.NoError(t, err)
	require.Equal(t, filescanner.StatusCompleted, rep.Status)
	require.NotNil(t, rep.Stats)
	require.Equal(t, 0, rep.Stats.Malicious)
}

func TestClient_Analysis_queuedHasNoStats(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK,
			`{"data":{"id":"an-456","attributes":{"status":"queued"}}}`), nil
	})

	rep, err := c.Analysis(context.Background(), "an-456")
	require.NoError(t, err)
	require.Equal(t, filescanner.StatusQueued, rep.Status)
	require.Nil(t, rep.Stats)
}

func TestClient_Analysis_notAvailableYet(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest,
			`{"error":{"code":"NotAvailableYet","message":"Analysis is still queued"}}`), nil
	})

	_, err := c.Analysis(context.Background(), "an-456")
	require.ErrorIs(t, err, serrors.ErrAnalysisPending)
}

func TestClient_Analysis_serverErrorIsUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream bad"), nil
	})

	_, err := c.Analysis(context.Background(), "an-456")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")
}
