package json

import (
	"encoding/json"
	"net/http"
)

const ContentType = "application/json"

// Write encodes v as the response body. Encoding errors after the header is
// sent cannot be reported to the client and are dropped.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
