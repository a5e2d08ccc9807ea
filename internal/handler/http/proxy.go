// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/utils"
)

// maxBodyBytes caps request bodies read into memory before forwarding.
const maxBodyBytes = 1 << 20

var forwardedHeaders = []string{"Content-Type", "Accept", "Authorization", traceIDHeader}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, log, fmt.Errorf("%w: %w", ErrReadingBody, err))
		return
	}

	header := make(http.Header, len(forwardedHeaders))
	for _, name := range forwardedHeaders {
		if v := r.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}

	resp, err := h.upstream.Forward(r.Context(), ForwardRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.RawQuery,
		Header: header,
		Body:   body,
	})
	if err != nil {
		h.writeError(w, log, err)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.StatusCode)

	if _, err = w.Write(resp.Body); err != nil {
		log.Error().Err(err).Msg("error writing upstream response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status, message := statusFromError(err)
	log.Error().Err(err).Int("status", status).Msg("request was not forwarded")

	w.Header().Set("Cache-Control", "no-store")
	if _, writeErr := utils.WriteJSONError(w, message, status); writeErr != nil {
		log.Error().Err(writeErr).Msg("error writing error response")
	}
}
