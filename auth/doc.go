// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards admin operations.

# Admin Secret

Destructive operations (DELETE /scores) require a single shared secret,
supplied by configuration (ADMIN_SECRET):

	err := auth.ValidateAdminSecret(r.URL.Query().Get("pass"), cfg.AdminSecret)

Both values are hashed with SHA-256 and the digests compared with
hmac.Equal, so the comparison takes the same time whatever the input.

Errors:

  - ErrInvalidAdminSecret: the supplied secret does not match
  - ErrAdminDisabled: no secret is configured, admin operations are off
*/
package auth
