// Package vtotal provides a filescanner.Client implementation backed by a
// VirusTotal-compatible v3 REST API.
package vtotal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"filescan/pkg/domain"
	"filescan/pkg/filescanner"
	"filescan/pkg/metrics"
	"filescan/pkg/serrors"
)

// DefaultBaseURL points at the public VirusTotal v3 API.
const DefaultBaseURL = "https://www.virustotal.com/api/v3"

// notAvailableYet is the provider error code returned for analyses that have
// been created but carry no result yet.
const notAvailableYet = "NotAvailableYet"

// Client talks to a VirusTotal-compatible REST API and fulfills the
// filescanner.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	baseURL    string       // baseURL is the API root, without trailing slash
	apiKey     string       // apiKey is sent in the x-apikey header
}

// apiError is the envelope the provider uses for error responses.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fileData mirrors the provider's file object. Depending on the endpoint the
// summary arrives as last_analysis_stats (hash lookups) or stats (analyses).
type fileData struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Status            string                `json:"status"`
			LastAnalysisID    string                `json:"last_analysis_id"`
			LastAnalysisStats *domain.AnalysisStats `json:"last_analysis_stats"`
			Stats             *domain.AnalysisStats `json:"stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// do sends the request, reads the body and maps provider-level failures to
// semantic error kinds shared by all three endpoints.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, remoteError(serrors.Wrap(serrors.ErrUnavailable, err, "could not send request"))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, remoteError(serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body"))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return b, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, remoteError(serrors.With(serrors.ErrNotFound, "not found: %s", errMessage(b)))
	case resp.StatusCode == http.StatusConflict:
		return nil, remoteError(serrors.With(serrors.ErrConflict, "already exists: %s", errMessage(b)))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, remoteError(serrors.With(serrors.ErrRateLimited, "rate limited: %s", errMessage(b)))
	case resp.StatusCode == http.StatusBadRequest:
		var ae apiError
		if json.Unmarshal(b, &ae) == nil && ae.Error.Code == notAvailableYet {
			return nil, remoteError(serrors.With(serrors.ErrAnalysisPending, "analysis not available yet"))
		}

		return nil, remoteError(serrors.With(serrors.ErrBadRequest, "bad request: %s", errMessage(b)))
	case resp.StatusCode >= 500:
		return nil, remoteError(serrors.With(serrors.ErrUnavailable, "server error (%d): %s", resp.StatusCode, errMessage(b)))
	default:
		return nil, remoteError(serrors.With(serrors.ErrInternal, "unexpected status %d: %s", resp.StatusCode, errMessage(b)))
	}
}

// remoteError counts a failed provider request on the shared error counter,
// labeled by semantic kind, and returns the error unchanged.
func remoteError(err *serrors.Error) error {
	metrics.RemoteErrors.WithLabelValues(err.Kind().Error()).Inc()

	return err
}

// errMessage extracts a human-readable message from an error body, falling
// back to the raw payload.
func errMessage(b []byte) string {
	var ae apiError
	if json.Unmarshal(b, &ae) == nil && ae.Error.Message != "" {
		return ae.Error.Message
	}

	return strings.TrimSpace(string(b))
}

// FileReport fetches the provider record for the given content hash via
// GET /files/{fingerprint}. Unknown hashes yield serrors.ErrNotFound.
func (c *Client) FileReport(ctx context.Context, fingerprint string) (*filescanner.FileReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/files/"+fingerprint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	b, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var fd fileData
	if err := json.Unmarshal(b, &fd); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not decode file report")
	}

	return &filescanner.FileReport{
		ID:                fd.Data.ID,
		LastAnalysisID:    fd.Data.Attributes.LastAnalysisID,
		LastAnalysisStats: fd.Data.Attributes.LastAnalysisStats,
	}, nil
}

// UploadFile submits the file bytes via POST /files (multipart) and returns
// the ID of the created analysis job.
func (c *Client) UploadFile(ctx context.Context, filename string, contents []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("could not create multipart field: %w", err)
	}
	if _, err := fw.Write(contents); err != nil {
		return "", fmt.Errorf("could not write multipart field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("could not finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &body)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	b, err := c.do(req)
	if err != nil {
		return "", err
	}

	var fd fileData
	if err := json.Unmarshal(b, &fd); err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not decode upload response")
	}
	if fd.Data.ID == "" {
		return "", serrors.With(serrors.ErrInternal, "upload response carries no analysis id")
	}

	return fd.Data.ID, nil
}

// Analysis fetches the state of an analysis job via GET /analyses/{id}.
// Jobs without a result yet yield serrors.ErrAnalysisPending.
func (c *Client) Analysis(ctx context.Context, analysisID string) (*filescanner.AnalysisReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/analyses/"+analysisID, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	b, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var fd fileData
	if err := json.Unmarshal(b, &fd); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not decode analysis report")
	}

	return &filescanner.AnalysisReport{
		ID:     fd.Data.ID,
		Status: fd.Data.Attributes.Status,
		Stats:  fd.Data.Attributes.Stats,
	}, nil
}

// Ensure Client conforms to the filescanner.Client interface at compile time.
var _ filescanner.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key to
// talk to a VirusTotal-compatible API at baseURL (DefaultBaseURL when empty).
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
