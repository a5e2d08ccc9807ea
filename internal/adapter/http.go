// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	usersPath = "/api/users"
	loginPath = "/api/auth/login"
)

// listPaths are probed when the list endpoint wraps its array in an object.
var listPaths = []string{"data", "users", "rows", "result"}

type httpRegistryAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRegistryAdapter returns the REST implementation of [RegistryAdapter].
// adapterCfg.HTTPAddress may be "host:port" or a full URL; the request
// timeout applies to every call.
func NewHTTPRegistryAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRegistryAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRegistryAdapter) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

func (h *httpRegistryAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRegistryAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpRegistryAdapter) Login(ctx context.Context, creds models.LoginRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return "", mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := gjson.GetBytes(resp.Body(), "token").String()
	if token == "" {
		// some backends answer with the header only
		if t, perr := utils.ParseBearerToken(resp.Header().Get("Authorization")); perr == nil {
			token = t
		}
	}
	if token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpRegistryAdapter) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	resp, err := h.request(ctx).Get(usersPath)
	if err != nil {
		return nil, mapTransportError("list users request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	users, err := decodeUserList(resp.Body())
	if err != nil {
		h.logger.Debug().Err(err).Int("size", len(resp.Body())).Msg("undecodable user list")
		return nil, err
	}
	return users, nil
}

func decodeUserList(body []byte) ([]models.UserRecord, error) {
	root := gjson.ParseBytes(body)

	raw := ""
	switch {
	case root.IsArray():
		raw = root.Raw
	case root.IsObject():
		for _, p := range listPaths {
			if v := root.Get(p); v.IsArray() {
				raw = v.Raw
				break
			}
		}
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: user list is not an array", ErrDecode)
	}

	users := make([]models.UserRecord, 0)
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return users, nil
}

func (h *httpRegistryAdapter) GetUser(ctx context.Context, id models.RecordID) (models.UserRecord, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id.String()).
		Get(usersPath + "/{id}")
	if err != nil {
		return models.UserRecord{}, mapTransportError("get user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserRecord{}, err
	}

	root := gjson.ParseBytes(resp.Body())
	if root.IsArray() {
		items := root.Array()
		if len(items) == 0 {
			return models.UserRecord{}, &BackendError{Status: http.StatusNotFound, Message: "user " + id.String() + " not found"}
		}
		root = items[0]
	}
	if !root.IsObject() {
		return models.UserRecord{}, fmt.Errorf("%w: user is not an object", ErrDecode)
	}

	var user models.UserRecord
	if err = json.Unmarshal([]byte(root.Raw), &user); err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return user, nil
}

func (h *httpRegistryAdapter) CreateUser(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	user.ID = ""

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(usersPath)
	if err != nil {
		return models.UserRecord{}, mapTransportError("create user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserRecord{}, err
	}

	root := gjson.ParseBytes(resp.Body())
	if root.IsObject() && root.Get("username").Exists() {
		var created models.UserRecord
		if err = json.Unmarshal([]byte(root.Raw), &created); err == nil {
			return created, nil
		}
	}

	// echo the input, picking up the assigned id when the backend reports it
	for _, p := range []string{"id", "insertId", "data.id"} {
		if v := root.Get(p); v.Exists() && (v.Type == gjson.Number || v.Type == gjson.String) {
			user.ID = models.RecordID(v.String())
			break
		}
	}
	return user, nil
}

func (h *httpRegistryAdapter) UpdateUser(ctx context.Context, user models.UserRecord) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put(usersPath)
	if err != nil {
		return mapTransportError("update user request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRegistryAdapter) DeleteUser(ctx context.Context, id models.RecordID) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id.String()).
		Delete(usersPath + "/{id}")
	if err != nil {
		return mapTransportError("delete user request", err)
	}

	return mapHTTPError(resp)
}
