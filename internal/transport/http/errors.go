package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeNotFound         = "not_found"
	codeActivityNotFound = "activity_not_found"
	codeAlreadySignedUp  = "already_signed_up"
	codeActivityFull     = "activity_full"
	codeNotSignedUp      = "not_signed_up"
	codeEmailRequired    = "email_required"
	codeForbidden        = "forbidden"
	codeInternalError    = "internal_error"
)

// errorResponse is the error envelope; detail carries the human-readable
// message the frontend displays.
type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Detail: detail,
		Code:   code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"detail":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
