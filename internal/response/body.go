// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"encoding/json"
	"reflect"
)

// Body is the payload of an Envelope. It is a closed set: SuccessBody,
// ErrorBody and FileBody are the only implementations.
type Body interface {
	isBody()
}

// SuccessBody carries caller data that is serialized as-is.
type SuccessBody struct {
	Data any
}

func (SuccessBody) isBody() {}

// MarshalJSON encodes the wrapped data without any envelope around it.
func (b SuccessBody) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Data)
}

// ErrorBody is the failure payload.
//
// Code is the application error code; it equals StatusCode unless the caller
// supplied a more specific one. Errors holds field level failures and is
// omitted from the JSON when empty.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Code       int    `json:"code"`
	Errors     any    `json:"errors,omitempty"`
}

func (ErrorBody) isBody() {}

// FileBody carries a raw downloadable payload.
type FileBody struct {
	Filename string
	Content  []byte
}

func (FileBody) isBody() {}

// isEmpty reports whether a caller supplied errors document carries nothing.
// nil, nil pointers and zero-length maps, slices, arrays and strings count as
// empty.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
