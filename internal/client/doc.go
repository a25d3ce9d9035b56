// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the hub client application runtime.
//
// It wires socket discovery, the hub channel session and local storage into
// a single process lifecycle that ends on a stop signal or when the server
// closes the connection.
package client
