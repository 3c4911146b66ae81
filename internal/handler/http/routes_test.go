package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) RegisterUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) Login(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) Logout(_ context.Context, _ string) error {
	return nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{SignedString: "stub"}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: "64f1b2a3c4d5e6f708192a3b", Login: "alice"}, nil
}
func (m *mockAuthSvc) VerifySession(_ context.Context, _, _ string) error {
	return nil
}

// ---- Mock: RecordService ----

type mockRecordSvc struct{}

func (m *mockRecordSvc) CreateRecord(_ context.Context, _ models.Identity, draft models.Record, _ models.AssetUpload) (models.Record, error) {
	return draft, nil
}
func (m *mockRecordSvc) ListOwnRecords(_ context.Context, _ models.Identity) ([]models.Record, error) {
	return nil, nil
}
func (m *mockRecordSvc) ListPublicRecords(_ context.Context) ([]models.Record, error) {
	return nil, nil
}
func (m *mockRecordSvc) GetRecord(_ context.Context, _ models.Identity, _ string) (models.Record, error) {
	return models.Record{}, nil
}
func (m *mockRecordSvc) UpdateRecord(_ context.Context, _ models.Identity, _ string, _ models.RecordUpdate) (models.Record, error) {
	return models.Record{}, nil
}
func (m *mockRecordSvc) DeleteRecord(_ context.Context, _ models.Identity, _ string) error {
	return nil
}
func (m *mockRecordSvc) LoadAsset(_ context.Context, _ string) ([]byte, error) {
	return []byte("asset"), nil
}

// ---- Helpers ----

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:   &mockAuthSvc{},
			RecordService: &mockRecordSvc{},
		},
	}
}

// ---- Auth service router ----

func TestInitAuth_PublicRoutes(t *testing.T) {
	router := newTestHandler(t).InitAuth()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"route should be reachable without a token: %s %s", tt.method, tt.path)
		})
	}
}

func TestInitAuth_LogoutRequiresToken(t *testing.T) {
	router := newTestHandler(t).InitAuth()

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- Diary service router ----

func TestInitDiary_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestHandler(t).InitDiary()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/records"},
		{http.MethodGet, "/api/records"},
		{http.MethodGet, "/api/records/64f1b2a3c4d5e6f708192a3b"},
		{http.MethodPut, "/api/records/64f1b2a3c4d5e6f708192a3b"},
		{http.MethodDelete, "/api/records/64f1b2a3c4d5e6f708192a3b"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInitDiary_OpenRoutes(t *testing.T) {
	router := newTestHandler(t).InitDiary()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/records/public"},
		{http.MethodGet, "/assets/owner_abc.png"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// with a token present, the protected routes resolve and dispatch
func TestInitDiary_WithToken(t *testing.T) {
	router := newTestHandler(t).InitDiary()

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
