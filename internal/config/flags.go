// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command line arguments.
//
// Flags:
//
//	-a                 proxy listen address in format [host]:[port]
//	-adapter-address   proxy address used by the client, host:port or URL
//	-b / -backend-url  base URL of the remote user registry
//	-d                 session database DSN
//	-c / -config       json file path with configs
//	-request-timeout   client request timeout (e.g. "10s")
//	-upstream-timeout  proxy upstream timeout (e.g. "15s")
//	-poll-interval     background refresh period (e.g. "5s")
//	-batch-size        concurrent requests per bulk batch
//	-hash-cost         bcrypt cost
//	-log-level         zerolog level name
//	-log-file          client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress    NetAddress
		adapterAddress   string
		backendURL       string
		databaseDSN      string
		jsonConfigPath   string
		requestTimeout   time.Duration
		upstreamTimeout  time.Duration
		pollInterval     time.Duration
		highlightTimeout time.Duration
		batchSize        int
		hashCost         int
		logLevel         string
		logFile          string
	)

	fs := flag.NewFlagSet("xfrontend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Proxy listen address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Proxy address used by the client")
	fs.StringVar(&backendURL, "b", "", "Remote registry base URL")
	fs.StringVar(&backendURL, "backend-url", "", "Remote registry base URL (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g. 10s)")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Proxy upstream timeout (e.g. 15s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Background refresh period (e.g. 5s)")
	fs.DurationVar(&highlightTimeout, "highlight", 0, "Highlight duration of newly hashed rows")
	fs.IntVar(&batchSize, "batch-size", 0, "Concurrent requests per bulk batch")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
			HashCost: hashCost,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: upstreamTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval:      pollInterval,
			BatchSize:         batchSize,
			HighlightDuration: highlightTimeout,
		},
		BackendURL:   backendURL,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
