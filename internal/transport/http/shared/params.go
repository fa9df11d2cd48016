package shared

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ClientIP extracts the caller's address, preferring the first entry of
// X-Forwarded-For when a proxy sits in front.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// YearParam reads ?year= with the current year as fallback.
func YearParam(r *http.Request, now time.Time) int {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return now.Year()
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		return now.Year()
	}
	return year
}
