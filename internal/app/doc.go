// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app boots one of the three service binaries: it loads the
// configuration, connects to PostgreSQL, applies the embedded migrations,
// wires repositories, services and handlers, and runs the HTTP server until
// a stop signal arrives.
package app
