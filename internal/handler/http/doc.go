// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the users API.
//
// Init builds the chi router: public register and login routes, the bearer
// protected users routes and the version endpoint. Every response, including
// 404 and 405, is rendered with the response package envelopes. Trace ids,
// access logging, panic recovery, gzip, request timeouts and HMAC integrity
// headers are middleware applied before the handlers run.
package http
