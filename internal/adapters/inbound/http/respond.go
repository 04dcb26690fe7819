package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err rest.ErrorResp) {
	respondJSON(w, statusCodeOf(err.Error.Code), err)
}

func statusCodeOf(code rest.ErrorCode) int {
	switch code {
	case rest.BADREQUEST:
		return http.StatusBadRequest
	case rest.NOTFOUND:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// RespondStatus writes an error body matching an arbitrary HTTP status. It is
// used to inject failures in front of the real handlers.
func RespondStatus(w http.ResponseWriter, statusCode int) {
	code := rest.INTERNALERROR
	switch {
	case statusCode == http.StatusNotFound:
		code = rest.NOTFOUND
	case statusCode >= 400 && statusCode < 500:
		code = rest.BADREQUEST
	}
	respondJSON(w, statusCode, rest.NewErrorResp(code, http.StatusText(statusCode)))
}
