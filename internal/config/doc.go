// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the proxy and
// the registry client.
//
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. .env file in the working directory (or DOTENV_PATH)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// [GetProxyConfig] and [GetClientConfig] return validated views with
// defaults applied.
package config
