// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the service
// layer.
//
// A Validator accepts a value and an optional list of field names; when
// fields are given only those are checked, in that order. Failures are
// sentinel errors from errors.go, wrapped with the offending field so the
// message can be returned to the caller as is.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Unsupported value types yield ErrUnsupportedType and unknown field names
// ErrUnknownField.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
