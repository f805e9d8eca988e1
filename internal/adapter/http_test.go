// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter builds an httpRemoteAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpRemoteAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPRemoteAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRemoteAdapter)
}

func testRecord() models.Record {
	ts := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	return models.Record{ID: "0190a1b2-0000-7000-8000-000000000001", Kind: models.KindJournal, Sealed: "c2VhbGVk", CreatedAt: ts, UpdatedAt: ts}
}

func jwtWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPRemoteAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRemoteAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://sync.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://sync.example.com", got)
}

// ── FetchRemoteVersion ───────────────────────────────────────────────────────

func TestFetchRemoteVersion_Found(t *testing.T) {
	want := testRecord()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records/journal/"+want.ID, r.URL.Path)
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	got, err := a.FetchRemoteVersion(ctx, want.Ref())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, want.Same(*got))
}

func TestFetchRemoteVersion_NotFoundIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchRemoteVersion(context.Background(), testRecord().Ref())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFetchRemoteVersion_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("db down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchRemoteVersion(context.Background(), testRecord().Ref())
	assert.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "db down")
}

// ── ApplyMutation ────────────────────────────────────────────────────────────

func TestApplyMutation_SendsSignedBody(t *testing.T) {
	rec := testRecord()
	mType := models.NewMutationType(models.KindJournal, models.OpCreate)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mutations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(string(body), testHashKey), r.Header.Get("HashSHA256"))

		var req models.ApplyMutationRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, mType, req.Type)
		assert.Equal(t, rec.ID, req.Payload.ID)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).ApplyMutation(context.Background(), mType, rec))
}

func TestApplyMutation_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrVersionConflict},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrRemote},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).ApplyMutation(context.Background(), "task.update", testRecord())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyMutation_NoHashKeyNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("HashSHA256"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewHTTPRemoteAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.ApplyMutation(context.Background(), "task.update", testRecord()))
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestAuthorizationHeader(t *testing.T) {
	token := jwtWithExpiry(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(token)

	require.NoError(t, a.ApplyMutation(context.Background(), "task.update", testRecord()))
}

func TestExpiredTokenFailsWithoutRoundTrip(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(jwtWithExpiry(t, time.Now().Add(-time.Minute)))

	err := a.ApplyMutation(context.Background(), "task.update", testRecord())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.FetchRemoteVersion(context.Background(), testRecord().Ref())
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Zero(t, hits.Load())
}

func TestOpaqueTokenIsSentAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque-token")

	require.NoError(t, a.ApplyMutation(context.Background(), "task.update", testRecord()))
}

func TestBearerPrefixIsStripped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("Bearer opaque-token")

	require.NoError(t, a.ApplyMutation(context.Background(), "task.update", testRecord()))
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	healthy := atomic.Bool{}
	healthy.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Ping(context.Background()))

	healthy.Store(false)
	assert.ErrorIs(t, a.Ping(context.Background()), ErrRemote)

	srv.Close()
	assert.Error(t, a.Ping(context.Background()))
	assert.NoError(t, a.Close())
}
