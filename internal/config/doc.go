// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the server configuration.
//
// Configuration is assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still unset after merging, then the
// result is validated. The entry point is [GetStructuredConfig].
package config
