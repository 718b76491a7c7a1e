package v1handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"filescan/internal/api/handler/v1handler"
	mockupload "filescan/internal/upload/mock"
	"filescan/pkg/domain"
	"filescan/pkg/serrors"
)

// testServer wires the handler routes behind a real sec handler so tests
// exercise the same path as production requests.
type testServer struct {
	uploader *mockupload.MockService
	router   http.Handler
	token    string
	userID   domain.UserID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	uploader := mockupload.NewMockService(ctrl)

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()

	h := v1handler.New(v1handler.Deps{Uploader: uploader})

	return &testServer{
		uploader: uploader,
		router:   h.Routes(sec),
		token:    signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
		userID:   domain.UserID(uid),
	}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func multipartBody(t *testing.T, filename string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(contents); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return &buf, w.FormDataContentType()
}

func sampleFileScan(userID domain.UserID, verdict domain.Verdict) domain.FileScan {
	return domain.FileScan{
		ID:          domain.FileID(uuid.New()),
		UserID:      userID,
		Name:        "report.pdf",
		Size:        5,
		Fingerprint: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Verdict:     verdict,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateFile_Success(t *testing.T) {
	s := newTestServer(t)

	record := sampleFileScan(s.userID, domain.VerdictClean)
	s.uploader.EXPECT().
		Upload(gomock.Any(), s.userID, "report.pdf", []byte("hello")).
		Return(&record, nil)

	body, contentType := multipartBody(t, "report.pdf", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/files/", body)
	req.Header.Set("Content-Type", contentType)
	rec := s.do(t, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got v1handler.FileScan
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != uuid.UUID(record.ID).String() {
		t.Fatalf("id = %q", got.ID)
	}
	if got.Verdict != string(domain.VerdictClean) {
		t.Fatalf("verdict = %q", got.Verdict)
	}
	if got.Fingerprint != record.Fingerprint {
		t.Fatalf("fingerprint = %q", got.Fingerprint)
	}
}

func TestCreateFile_MissingFileField(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("note", "no file here")
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/files/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := s.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp v1handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != serrors.ErrBadRequest.Error() {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestCreateFile_ServiceError(t *testing.T) {
	s := newTestServer(t)

	s.uploader.EXPECT().
		Upload(gomock.Any(), s.userID, "bad.bin", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "empty file"))

	body, contentType := multipartBody(t, "bad.bin", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/files/", body)
	req.Header.Set("Content-Type", contentType)
	rec := s.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListFiles_DefaultLimit(t *testing.T) {
	s := newTestServer(t)

	f1 := sampleFileScan(s.userID, domain.VerdictClean)
	f2 := sampleFileScan(s.userID, domain.VerdictMalicious)
	s.uploader.EXPECT().
		UserFiles(gomock.Any(), s.userID, domain.Verdict(""), "", uint(v1handler.DefaultLimit)).
		Return([]domain.FileScan{f1, f2}, "cursor123", nil)

	req := httptest.NewRequest(http.MethodGet, "/files/", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got v1handler.FileScanList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items len = %d", len(got.Items))
	}
	if got.NextCursor != "cursor123" {
		t.Fatalf("nextCursor = %q", got.NextCursor)
	}
}

func TestListFiles_VerdictFilterAndCustomLimit(t *testing.T) {
	s := newTestServer(t)

	s.uploader.EXPECT().
		UserFiles(gomock.Any(), s.userID, domain.VerdictMalicious, "c0", uint(5)).
		Return([]domain.FileScan{}, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/files/?verdict=MALICIOUS&cursor=c0&limit=5", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got v1handler.FileScanList
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty list")
	}
	if got.NextCursor != "" {
		t.Fatalf("nextCursor should be empty")
	}
}

func TestListFiles_InvalidLimit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/files/?limit=zero", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetFile_Success(t *testing.T) {
	s := newTestServer(t)

	record := sampleFileScan(s.userID, domain.VerdictClean)
	s.uploader.EXPECT().
		File(gomock.Any(), s.userID, record.ID).
		Return(&record, nil)

	req := httptest.NewRequest(http.MethodGet, "/files/"+uuid.UUID(record.ID).String(), nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestGetFile_NotFound(t *testing.T) {
	s := newTestServer(t)

	id := domain.FileID(uuid.New())
	s.uploader.EXPECT().
		File(gomock.Any(), s.userID, id).
		Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/files/"+uuid.UUID(id).String(), nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetFile_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/files/not-a-uuid", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetDownloadURL_Success(t *testing.T) {
	s := newTestServer(t)

	id := domain.FileID(uuid.New())
	s.uploader.EXPECT().
		DownloadURL(gomock.Any(), s.userID, id).
		Return("https://blob.example/presigned", nil)

	req := httptest.NewRequest(http.MethodGet, "/files/"+uuid.UUID(id).String()+"/download-url", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got v1handler.DownloadURL
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.URL != "https://blob.example/presigned" {
		t.Fatalf("url = %q", got.URL)
	}
}

func TestGetDownloadURL_MaliciousRejected(t *testing.T) {
	s := newTestServer(t)

	id := domain.FileID(uuid.New())
	s.uploader.EXPECT().
		DownloadURL(gomock.Any(), s.userID, id).
		Return("", serrors.With(serrors.ErrBadRequest, "malicious files cannot be downloaded"))

	req := httptest.NewRequest(http.MethodGet, "/files/"+uuid.UUID(id).String()+"/download-url", nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp v1handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "malicious files cannot be downloaded" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestDeleteFile_Success(t *testing.T) {
	s := newTestServer(t)

	id := domain.FileID(uuid.New())
	s.uploader.EXPECT().
		Delete(gomock.Any(), s.userID, id).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/files/"+uuid.UUID(id).String(), nil)
	rec := s.do(t, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRoutes_Unauthenticated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/files/", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}
