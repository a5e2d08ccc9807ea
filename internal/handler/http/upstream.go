// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
)

// Upstream sends one already-read request to the registry backend.
type Upstream interface {
	// Forward returns the backend response whatever its status. A non-nil
	// error means no response was received and wraps ErrUpstreamTimeout or
	// ErrUpstreamUnavailable.
	Forward(ctx context.Context, req ForwardRequest) (ForwardResponse, error)
}

// ForwardRequest is the part of an incoming request that travels upstream.
type ForwardRequest struct {
	Method string
	// Path is the escaped request path, e.g. "/api/users/42".
	Path string
	// Query is the raw query string without the leading '?'.
	Query  string
	Header http.Header
	Body   []byte
}

// ForwardResponse is the part of the backend response passed back.
type ForwardResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type restyUpstream struct {
	client *utils.HTTPClient
}

// NewUpstream returns an Upstream rooted at cfg.BackendURL. Every request is
// bounded by cfg.RequestTimeout.
func NewUpstream(cfg config.ProxyConfig) Upstream {
	return &restyUpstream{
		client: utils.NewHTTPClient(cfg.BackendURL, cfg.RequestTimeout),
	}
}

func (u *restyUpstream) Forward(ctx context.Context, in ForwardRequest) (ForwardResponse, error) {
	req := u.client.R().SetContext(ctx)
	for name := range in.Header {
		req.SetHeader(name, in.Header.Get(name))
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	if in.Query != "" {
		req.SetQueryString(in.Query)
	}
	if len(in.Body) > 0 {
		req.SetBody(in.Body)
	}

	resp, err := req.Execute(in.Method, in.Path)
	if err != nil {
		return ForwardResponse{}, upstreamError(err)
	}

	return ForwardResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

func upstreamError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
