// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoProxyHandler  = errors.New("proxy handler is not created")
	errNoListenAddress = errors.New("proxy listen address is empty")
)
