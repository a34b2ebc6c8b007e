// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging built on top of slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("host has fewer than two labels", "host", host)
//	logutil.Info("endpoints loaded", "count", n)
//	logutil.Error("failed to load endpoints", "error", err)
//
// Component loggers carry fixed context:
//
//	log := logutil.NewLogger("endpoints").WithOperation("load")
//	log.Info("registered", "endpoint", name)
//
// # Debug Mode
//
// Debug logging is enabled by passing debug=true to SetupLogger or by setting
// AZD_ENDPOINT_DEBUG=true.
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are written as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"endpoints loaded","count":3}
//
// Otherwise the text format is used:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="endpoints loaded" count=3
package logutil
