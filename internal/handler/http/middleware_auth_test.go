package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService, sessionCheck bool) *Handler {
	return &Handler{
		logger:       logger.Nop(),
		sessionCheck: sessionCheck,
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	const userID = "64f1b2a3c4d5e6f708192a3b"
	validToken := models.Token{UserID: userID, Login: "alice", SignedString: "valid-token"}

	tests := []struct {
		name            string
		authHeader      string
		sessionCheck    bool
		parseTokenFn    func(ctx context.Context, s string) (models.Token, error)
		verifySessionFn func(ctx context.Context, userID, tokenString string) error
		expectedStatus  int
		nextCalled      bool
	}{
		{
			name:           "empty Authorization header yields 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header without token yields 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token passes through",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "expired token yields 401",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "other parse error yields 401",
			authHeader: "Bearer bad-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid token but revoked session yields 401",
			authHeader:   "Bearer valid-token",
			sessionCheck: true,
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			verifySessionFn: func(_ context.Context, _, _ string) error {
				return service.ErrNoActiveSession
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid token with live session passes through",
			authHeader:   "Bearer valid-token",
			sessionCheck: true,
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			verifySessionFn: func(_ context.Context, gotUserID, gotToken string) error {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, "valid-token", gotToken)
				return nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mockAuthService{
				parseTokenFn:    tt.parseTokenFn,
				verifySessionFn: tt.verifySessionFn,
			}
			if tt.parseTokenFn == nil {
				authSvc.parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}

			h := newHandlerWithAuthService(authSvc, tt.sessionCheck)

			nextCalled := false
			var capturedIdentity models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedIdentity, _ = utils.GetIdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				assert.Equal(t, models.Identity{ID: userID, Login: "alice"}, capturedIdentity)
			}
		})
	}
}

// ---- error response bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}, false)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("expired token error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer expired", next)
		assert.Contains(t, rr.Body.String(), service.ErrTokenIsExpired.Error())
	})
}

// ---- original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: "1", Login: "a"}, nil
		},
	}, false)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}
