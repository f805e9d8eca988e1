package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"
)

const hashHeader = "HashSHA256"

// withHashCheck verifies the HMAC-SHA256 signature of the request body
// carried in the HashSHA256 header. It is a no-op when no hash key is set.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		got, err := hex.DecodeString(r.Header.Get(hashHeader))
		if err != nil || !hmac.Equal(got, h.hasher.Hash(body)) {
			h.logger.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", r.Header.Get(hashHeader)).
				Msg("hashes are not equal")
			writeError(w, r, "*Handler.withHashCheck", ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
