// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidAppConfigs        = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs    = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs     = errors.New("invalid server configuration")
	ErrInvalidPaginationConfigs = errors.New("invalid pagination configuration")
)
