// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
)

// BasicAuth protects write endpoints with HTTP basic authentication.
// Credential comparison is constant-time over SHA-256 digests so the
// check does not leak length information.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	wantUser := sha256.Sum256([]byte(username))
	wantPass := sha256.Sum256([]byte(password))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if ok {
				gotUser := sha256.Sum256([]byte(user))
				gotPass := sha256.Sum256([]byte(pass))
				userMatch := subtle.ConstantTimeCompare(wantUser[:], gotUser[:]) == 1
				passMatch := subtle.ConstantTimeCompare(wantPass[:], gotPass[:]) == 1
				if userMatch && passMatch {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="portfolio admin"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}
