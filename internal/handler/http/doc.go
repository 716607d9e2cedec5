// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST boundary of the task keeper server.
//
// It wires chi routes, request handlers and middleware. Tracing, access
// logging, CORS, body limits, compression and bearer authentication are
// handled here before requests reach the service layer. Every error reply
// is a JSON object with a single "message" field.
package http
