package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bank-policy-assistant/pkg/response"
)

// RateLimit throttles requests per source. The key is the username from
// the JSON body when present, the client IP otherwise, so one noisy
// user cannot exhaust the LLM budget for everyone behind a NAT.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.RequestsPerMin <= 0 {
			c.Next()
			return
		}

		key := m.requestKey(c)

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.cfg.RequestsPerMin)/60.0), m.burst())
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) burst() int {
	if m.cfg.Burst > 0 {
		return m.cfg.Burst
	}
	return 1
}

// requestKey peeks at the body for a username without consuming it.
func (m Middleware) requestKey(c *gin.Context) string {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var peek struct {
			Username string `json:"username"`
		}
		if json.Unmarshal(body, &peek) == nil && peek.Username != "" {
			return "user:" + peek.Username
		}
	}
	return "ip:" + c.ClientIP()
}
