// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Envelope is a finalized response: status, headers and one body.
// It is produced once per request and never mutated afterwards.
type Envelope struct {
	StatusCode int
	Headers    map[string]string
	Body       Body
}

// IsError reports whether the envelope carries an error body.
func (e Envelope) IsError() bool {
	_, ok := e.Body.(ErrorBody)
	return ok
}

// Bytes returns the serialized body. File bodies are returned verbatim,
// everything else is JSON encoded.
func (e Envelope) Bytes() ([]byte, error) {
	switch body := e.Body.(type) {
	case FileBody:
		return body.Content, nil
	case nil:
		return []byte("null"), nil
	default:
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingBody, err)
		}
		return payload, nil
	}
}

// Write delivers the envelope to w.
//
// The body is encoded before anything is written so that an encoding failure
// can still be answered with 500 Internal Server Error. JSON bodies get
// "Content-Type: application/json" unless the envelope headers set one.
func (e Envelope) Write(w http.ResponseWriter) error {
	payload, err := e.Bytes()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	header := w.Header()
	for key, value := range e.Headers {
		header.Set(key, value)
	}
	if _, isFile := e.Body.(FileBody); !isFile && header.Get(headerContentType) == "" {
		header.Set(headerContentType, contentTypeJSON)
	}

	w.WriteHeader(e.StatusCode)

	if _, err = w.Write(payload); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}

	return nil
}
