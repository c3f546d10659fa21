// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a JSON REST client for the users API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client sending JSON to baseURL. A zero timeout
// means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	clone := resty.New().
		SetBaseURL(c.BaseURL).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		}).
		SetTimeout(c.GetClient().Timeout).
		SetAuthToken(token)

	return &HTTPClient{Client: clone}
}
