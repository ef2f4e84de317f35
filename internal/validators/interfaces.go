// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks bridge requests before they reach encryption or
// the store.
//
// A Validator receives a value (a single ItemView or a per-account
// UserItems batch) and optionally the names of the fields to check. Without
// field names every default rule of the value's type applies. The service
// layer stacks a validator in front of the item service, so invalid input is
// rejected before any key is fetched.
package validators

import "context"

// Validator validates a bridge value, restricted to fields when given.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
