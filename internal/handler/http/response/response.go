package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error envelope clients branch on: every non-2xx JSON
// response carries a single detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Detail: "Failed to encode response"})
	}
}

// Success responses

func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// Error responses

func BadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Detail: detail})
}

func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Detail: detail})
}

func Forbidden(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusForbidden, ErrorBody{Detail: detail})
}

func NotFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Detail: detail})
}

func Conflict(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusConflict, ErrorBody{Detail: detail})
}

func InternalServerError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Detail: detail})
}
