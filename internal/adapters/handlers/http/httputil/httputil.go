// Package httputil holds the response helpers shared by the chi handlers.
package httputil

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the body of every JSON failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": message}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteHTML writes a complete html document
func WriteHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

// BaseURL is the scheme and host the client used to reach us.
// Forwarding headers are honored only behind a trusted proxy, and only when well formed.
func BaseURL(r *http.Request, trustProxyHeaders bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if trustProxyHeaders {
		switch proto := strings.ToLower(firstValue(r.Header.Get("X-Forwarded-Proto"))); proto {
		case "http", "https":
			scheme = proto
		}
		if fwdHost := firstValue(r.Header.Get("X-Forwarded-Host")); validHost(fwdHost) {
			host = fwdHost
		}
	}
	return scheme + "://" + host
}

// firstValue keeps the client side entry of a comma separated proxy chain
func firstValue(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}

// validHost accepts a bare host[:port], nothing that could extend into a path or userinfo
func validHost(host string) bool {
	if host == "" {
		return false
	}
	return !strings.ContainsAny(host, "/\\?#@ \t\"'<>")
}
