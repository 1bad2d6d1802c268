// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var (
	ErrInvalidAdminSecret = errors.New("invalid admin secret")
	ErrAdminDisabled      = errors.New("admin operations disabled")
)

// ValidateAdminSecret checks the supplied secret against the configured one.
// An empty configured secret rejects everything.
func ValidateAdminSecret(supplied, expected string) error {
	if expected == "" {
		return ErrAdminDisabled
	}
	// Compare fixed-size digests so neither content nor length leaks through timing
	got := sha256.Sum256([]byte(supplied))
	want := sha256.Sum256([]byte(expected))
	if !hmac.Equal(got[:], want[:]) {
		return ErrInvalidAdminSecret
	}
	return nil
}
