package httpapi

import (
	"encoding/json"
	"net/http"
)

// Notice mirrors the client-side toast channel: a title, a description, and
// a severity ("default" or "destructive"). It is fire-and-forget — nothing
// in the workflow waits on it.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func notice(title, description string) *Notice {
	return &Notice{Title: title, Description: description, Severity: "default"}
}

func destructive(title, description string) *Notice {
	return &Notice{Title: title, Description: description, Severity: "destructive"}
}

type errorResponse struct {
	Notice *Notice `json:"notice"`
}

// validationResponse carries one message per invalid field, keyed by field
// name, for inline display next to the offending input.
type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNotice(w http.ResponseWriter, status int, n *Notice) {
	writeJSON(w, status, &errorResponse{Notice: n})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeNotice(w, http.StatusBadRequest, destructive("Bad request", "The request body could not be parsed."))
		return false
	}
	return true
}
