// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/blake2b"
)

// SafeCompare reports whether input equals secret without leaking, through
// timing, where the two first differ.
//
// Both operands are hashed to fixed-size BLAKE2b-256 digests first, so the
// byte comparison always runs over 32 bytes regardless of the operand
// lengths. The length check itself is done with subtle.ConstantTimeEq and
// folded into the result without branching.
//
// Example usage:
//
//	if !utils.SafeCompare(user, cfg.Auth.BasicAuth.Username) {
//	    // reject
//	}
func SafeCompare(input, secret string) bool {
	a := blake2b.Sum256([]byte(input))
	b := blake2b.Sum256([]byte(secret))

	sameLen := subtle.ConstantTimeEq(int32(len(input)), int32(len(secret)))
	sameSum := subtle.ConstantTimeCompare(a[:], b[:])

	return sameLen&sameSum == 1
}
