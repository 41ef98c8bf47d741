package websocket

import (
	"net/http"
	"net/url"
	"strings"
)

// checkOrigin - same-origin and non-browser clients are always accepted,
// other origins only when configured.
func (that *Server) checkOrigin(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	if strings.EqualFold(parsed.Host, req.Host) {
		return true
	}

	for _, allowed := range that.allowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}

	that.logger.Debug("origin rejected", "origin", origin)

	return false
}
