package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sushihentaime/wayfarer/internal/aboutservice"
	"github.com/sushihentaime/wayfarer/internal/common"
	"github.com/sushihentaime/wayfarer/internal/heroservice"
	"github.com/sushihentaime/wayfarer/internal/locationservice"
	"github.com/sushihentaime/wayfarer/internal/mediaservice"
	"github.com/sushihentaime/wayfarer/internal/newsletterservice"
	"github.com/sushihentaime/wayfarer/internal/postservice"
	"github.com/sushihentaime/wayfarer/internal/storageservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

// fakeStorage stands in for the S3 gateway. Deleting a URL listed in failURLs fails.
type fakeStorage struct {
	mu       sync.Mutex
	deleted  []string
	failURLs map[string]bool
}

func (s *fakeStorage) RequestUploadTarget(ctx context.Context, req *storageservice.UploadRequest) (*storageservice.UploadTarget, error) {
	v := common.NewValidator()
	v.Struct(req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := "1-" + req.FileName
	return &storageservice.UploadTarget{
		PresignedURL: "https://storage.example.com/" + key + "?X-Amz-Expires=3600",
		FileName:     key,
		PublicURL:    "https://cdn.example.com/" + key,
		ExpiresAt:    time.Now().Add(storageservice.UploadExpiry),
	}, nil
}

func (s *fakeStorage) DeleteByURL(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failURLs[fileURL] {
		return storageservice.ErrEmptyKey
	}
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func testConfig() *Config {
	return &Config{
		Port:           4000,
		Environment:    "testing",
		Version:        "1.0.0",
		TrustedOrigins: []string{"http://localhost:3000"},
		RateLimitRPS:   2,
		RateLimitBurst: 4,
	}
}

func newTestApplication(t *testing.T) (*application, *sql.DB, *fakeStorage) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := &fakeStorage{failURLs: map[string]bool{}}

	app := &application{
		config:            testConfig(),
		logger:            logger,
		postService:       postservice.NewPostService(db),
		heroService:       heroservice.NewHeroService(db),
		aboutService:      aboutservice.NewAboutService(db),
		locationService:   locationservice.NewLocationService(db),
		mediaService:      mediaservice.NewMediaService(db, storage, logger),
		newsletterService: newsletterservice.NewNewsletterService(db, nil, logger),
		storage:           storage,
		metrics:           newMetrics(prometheus.NewRegistry(), db),
		visitors:          newVisitorCache(),
	}

	return app, db, storage
}

// do sends payload as JSON and decodes the JSON response into dst when dst is not nil.
func (ts *testServer) do(t *testing.T, method, path string, payload any, dst any) (int, http.Header) {
	var body io.Reader
	if payload != nil {
		switch p := payload.(type) {
		case string:
			body = bytes.NewBufferString(p)
		default:
			jsonPayload, err := json.Marshal(p)
			if err != nil {
				t.Fatal(err)
			}
			body = bytes.NewReader(jsonPayload)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	if dst != nil {
		if err := json.Unmarshal(responseBody, dst); err != nil {
			t.Fatalf("could not decode %q: %v", responseBody, err)
		}
	}

	return res.StatusCode, res.Header
}

func (ts *testServer) get(t *testing.T, path string, dst any) int {
	status, _ := ts.do(t, http.MethodGet, path, nil, dst)
	return status
}

func (ts *testServer) post(t *testing.T, path string, payload, dst any) int {
	status, _ := ts.do(t, http.MethodPost, path, payload, dst)
	return status
}

func (ts *testServer) put(t *testing.T, path string, payload, dst any) int {
	status, _ := ts.do(t, http.MethodPut, path, payload, dst)
	return status
}

func (ts *testServer) delete(t *testing.T, path string, payload, dst any) int {
	status, _ := ts.do(t, http.MethodDelete, path, payload, dst)
	return status
}
