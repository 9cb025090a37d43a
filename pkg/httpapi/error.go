package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the JSON body of failures on ops routes.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// RequestMeta is the meta block identifying the failed request.
func RequestMeta(r *http.Request, requestID string) map[string]string {
	meta := map[string]string{"path": r.URL.Path}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	return meta
}
