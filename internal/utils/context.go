// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the proxy and the client:
// typed context keys, JSON response writing, the resty client constructor,
// bearer token parsing and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so string keys of other
// packages never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, id)
}

// GetTraceIDFromContext returns the trace id stored in ctx.
// ok is false when the value is missing, empty or of another type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok && id != ""
}
