// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the content and upload services. Handlers
// translate these into client-facing responses; anything else is treated
// as an internal error.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidEnum        = errors.New("invalid enum value")
	ErrMalformedSkillList = errors.New("malformed skill list")
	ErrUploadRejected     = errors.New("upload rejected")
)

// missingField wraps ErrMissingField with the name of the offending field.
func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
