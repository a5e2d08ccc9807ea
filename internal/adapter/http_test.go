// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points an httpRegistryAdapter at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpRegistryAdapter {
	t.Helper()
	return newTestAdapterWithTimeout(t, serverURL, 2*time.Second)
}

func newTestAdapterWithTimeout(t *testing.T, serverURL string, timeout time.Duration) *httpRegistryAdapter {
	t.Helper()
	a, err := NewHTTPRegistryAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRegistryAdapter)
}

func sampleUser() models.UserRecord {
	return models.UserRecord{
		ID:          "7",
		TitlePrefix: "Ms.",
		FirstName:   "Anna",
		LastName:    "Lee",
		Username:    "anna",
		Password:    "plain-pass",
		Address:     "1 Main St\nFloor 2",
		Sex:         "Female",
		Birthday:    "1992-03-04",
	}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:3000", "http://localhost:3000", false},
		{"https://proxy.local/", "https://proxy.local", false},
		{"  ", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body.Username)
		assert.Equal(t, "secret", body.Password)

		_, _ = w.Write([]byte(`{"token":"tok-1"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "tok-1", a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrBackend)

	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "Invalid username or password", be.Message)
	assert.Empty(t, a.Token())
}

// ── ListUsers ───────────────────────────────────────────────────────────────

func TestListUsers_Array(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"username":"a","password":"x"},{"id":"2","username":"b","password":"$2a$10$y"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	users, err := a.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.RecordID("1"), users[0].ID)
	assert.Equal(t, models.RecordID("2"), users[1].ID)
	assert.True(t, users[1].IsHashed())
}

func TestListUsers_WrappedAndEmpty(t *testing.T) {
	var body atomic.Value
	body.Store(`{"data":[{"id":5,"username":"c"}]}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body.Load().(string)))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	users, err := a.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "c", users[0].Username)

	body.Store(`[]`)
	users, err = a.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_Undecodable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestListUsers_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapterWithTimeout(t, srv.URL, 50*time.Millisecond)
	_, err := a.ListUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestListUsers_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListUsers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestListUsers_CallerCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).ListUsers(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}

// ── GetUser ─────────────────────────────────────────────────────────────────

func TestGetUser_ObjectOrArray(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"id":7,"username":"anna","fullname":"Anna"}`},
		{"array", `[{"id":7,"username":"anna","fullname":"Anna"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/users/7", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			u, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "7")
			require.NoError(t, err)
			assert.Equal(t, models.RecordID("7"), u.ID)
			assert.Equal(t, "Anna", u.FirstName)
		})
	}
}

func TestGetUser_EmptyArrayIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "9")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── CreateUser ──────────────────────────────────────────────────────────────

func TestCreateUser_EchoesInputWithAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		assert.NotContains(t, string(raw), `"id"`)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"insertId":31}`))
	}))
	defer srv.Close()

	in := sampleUser()
	got, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), in)
	require.NoError(t, err)

	in.ID = "31"
	assert.Equal(t, in, got)
}

func TestCreateUser_ReturnsBackendRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":40,"username":"anna","password":"$2a$10$h"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), sampleUser())
	require.NoError(t, err)
	assert.Equal(t, models.RecordID("40"), got.ID)
	assert.Equal(t, "$2a$10$h", got.Password)
}

// ── UpdateUser ──────────────────────────────────────────────────────────────

func TestUpdateUser_SendsFullRecord(t *testing.T) {
	user := sampleUser()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		for _, key := range []string{"id", "firstname", "fullname", "lastname", "username", "password", "address", "sex", "birthday"} {
			assert.Contains(t, raw, key)
		}
		assert.Equal(t, float64(7), raw["id"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).UpdateUser(context.Background(), user))
}

func TestUpdateUser_BackendErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"duplicate username"}}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), sampleUser())

	assert.ErrorIs(t, err, ErrInternalServerError)
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusInternalServerError, be.Status)
	assert.Equal(t, "duplicate username", be.Message)
}

// ── DeleteUser ──────────────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/users/404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "/api/users/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteUser(context.Background(), "12"))

	err := a.DeleteUser(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(2), calls.Load())
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"error key", `{"error":"boom"}`, 500, "boom"},
		{"message key", `{"message":"bad id"}`, 400, "bad id"},
		{"json string", `"plain json"`, 400, "plain json"},
		{"json without message", `{"code":17}`, 409, "Conflict"},
		{"plain text", "user not found", 404, "user not found"},
		{"html", "<html>502</html>", 502, "Bad Gateway"},
		{"empty", "", 503, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body), tt.status))
		})
	}
}

func TestBackendError_UnknownStatusStillBackend(t *testing.T) {
	err := error(&BackendError{Status: 418, Message: "teapot"})
	assert.ErrorIs(t, err, ErrBackend)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "backend error: http 418: teapot", err.Error())
}
