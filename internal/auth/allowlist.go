// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

// adminEmails is the fixed set of addresses granted elevated data access,
// compiled into the binary. Membership is byte-exact: no case folding or
// whitespace trimming is applied.
var adminEmails = []string{
	"ammar.ahmed.2024@aiu.edu.eg",
	"ammar.ahmed.2025@aiu.edu.eg",
}

// IsAdminUser returns true iff email exactly matches an allowlist entry.
func IsAdminUser(email string) bool {
	for _, e := range adminEmails {
		if e == email {
			return true
		}
	}
	return false
}
