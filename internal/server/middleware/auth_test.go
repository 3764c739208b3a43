package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(token string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

func TestAuth_AllowsValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{userID: userID}

	var got uuid.UUID
	var ok bool
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestAuth_RejectsMissingHeader(t *testing.T) {
	handler := Auth(&stubValidator{userID: uuid.New()})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RejectsMalformedHeader(t *testing.T) {
	validator := &stubValidator{userID: uuid.New()}

	for _, header := range []string{"some-token", "Basic abc", "Bearer", "Bearer  "} {
		handler := Auth(validator)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("handler should not run for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodGet, "/history", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("expired")})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuth_AttachesUserWhenPresent(t *testing.T) {
	userID := uuid.New()

	var got uuid.UUID
	var ok bool
	handler := OptionalAuth(&stubValidator{userID: userID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/score", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestOptionalAuth_AllowsAnonymous(t *testing.T) {
	var ok bool
	handler := OptionalAuth(&stubValidator{userID: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/score", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}

func TestUserIDFromContext_EmptyContext(t *testing.T) {
	_, ok := UserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestBearerPrefixCaseInsensitive(t *testing.T) {
	userID := uuid.New()

	var ok bool
	handler := Auth(&stubValidator{userID: userID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
}
