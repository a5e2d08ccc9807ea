// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// maxPlainMessage caps how much of a non-JSON error body becomes the message.
const maxPlainMessage = 200

// messagePaths are probed in order for a readable reason in a JSON error body.
var messagePaths = []string{"error.message", "error", "message", "msg", "detail"}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &BackendError{
		Status:  resp.StatusCode(),
		Message: extractMessage(resp.Body(), resp.StatusCode()),
	}
}

// extractMessage pulls a reason out of an error body. JSON bodies are probed
// for the usual keys; short plain-text bodies are used verbatim; anything
// else falls back to the status text.
func extractMessage(body []byte, status int) string {
	trimmed := strings.TrimSpace(string(body))

	if gjson.Valid(trimmed) {
		for _, p := range messagePaths {
			if v := gjson.Get(trimmed, p); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
		if r := gjson.Parse(trimmed); r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
		return http.StatusText(status)
	}

	if trimmed != "" && utf8.ValidString(trimmed) && !strings.HasPrefix(trimmed, "<") {
		if utf8.RuneCountInString(trimmed) > maxPlainMessage {
			trimmed = string([]rune(trimmed)[:maxPlainMessage])
		}
		return trimmed
	}

	return http.StatusText(status)
}

// mapTransportError classifies an error returned before any response was
// received. An aborted request is an ErrNetwork that still matches
// context.Canceled.
func mapTransportError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}
