// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local pass-through proxy in front of the user
// registry backend.
//
// Every registry route is forwarded as-is: method, body and the
// Content-Type, Accept and Authorization headers go upstream, and the
// upstream status and body come back unchanged. Only transport failures are
// answered locally, with 502 or 504 and a JSON {"error": ...} body. Request
// tracing, access logging and response compression are applied as chi
// middleware before a request reaches the forwarder.
package http
