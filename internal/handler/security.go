package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/maxpc/boutique/internal/shop"
)

// hashToken computes the HMAC-SHA256 of an operator session token under the
// configured pepper. Only the hash is kept server-side.
func (h *Handler) hashToken(token string) string {
	mac := hmac.New(sha256.New, h.cfg.OperatorPepper)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return auth[len(prefix):]
}

// requireOperator verifies that the request carries the session's operator
// token. Comparison is constant-time over the HMAC digests. On failure it
// writes a 401 and returns false.
func (h *Handler) requireOperator(w http.ResponseWriter, r *http.Request, sess *shop.Session) bool {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "operator token required")
		return false
	}

	_, storedHash, ok := sess.Operator()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return false
	}

	stored, err := hex.DecodeString(storedHash)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return false
	}
	presented, err := hex.DecodeString(h.hashToken(token))
	if err != nil || subtle.ConstantTimeCompare(stored, presented) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid operator token")
		return false
	}
	return true
}
