// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the
// server and the terminal client.
//
// Sources, later non-zero fields overriding earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
