package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
)

const maxRequestBytes = 1 << 20

var errNonFinite = errors.New("result contains non-finite values (check for zero acquisition or upfront cost)")

// decodeJSONRequest checks method and content type and decodes the body into
// dst. It writes the error response itself and reports whether the handler
// should go on.
func decodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so that a failed encode can still
// produce a proper error status.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			http.Error(w, errNonFinite.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// roundPlaces reads the optional ?round=N query parameter.
func roundPlaces(r *http.Request) (int32, bool, error) {
	raw := r.URL.Query().Get("round")
	if raw == "" {
		return 0, false, nil
	}
	places, err := strconv.Atoi(raw)
	if err != nil || places < 0 || places > 8 {
		return 0, false, fmt.Errorf("round must be an integer between 0 and 8, got %q", raw)
	}
	return int32(places), true, nil
}
