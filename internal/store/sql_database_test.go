// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/restful-users/internal/config"
	"github.com/MKhiriev/restful-users/internal/logger"
)

func TestDB_WithRetry(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	fatal := errors.New("syntax error")

	tests := []struct {
		name         string
		failures     []error
		wantErr      error
		wantAttempts int
	}{
		{name: "success on first attempt", wantAttempts: 1},
		{name: "transient error then success", failures: []error{busy, busy}, wantAttempts: 3},
		{name: "non retryable error is returned at once", failures: []error{fatal}, wantErr: fatal, wantAttempts: 1},
		{name: "retries exhausted", failures: []error{busy, busy, busy, busy, busy}, wantErr: busy, wantAttempts: maxRetries + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, config.DriverSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())

			attempts := 0
			err := db.withRetry(context.Background(), func(context.Context) error {
				attempts++
				if attempts <= len(tt.failures) {
					return tt.failures[attempts-1]
				}
				return nil
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantAttempts, attempts)
		})
	}
}

func TestDB_WithRetry_StopsOnCancelledContext(t *testing.T) {
	db := newDB(nil, config.DriverSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	err := db.withRetry(ctx, func(context.Context) error {
		cancel()
		return sqlite3.Error{Code: sqlite3.ErrLocked}
	})

	assert.ErrorIs(t, err, context.Canceled)
}
