// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the synchronization client runtime.
//
// It wires the sync services, the local trigger server, and background
// workers into a single process lifecycle with graceful shutdown.
package client
