package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bank-policy-assistant/pkg/response"
)

// Recovery converts panics into a 500 response envelope instead of a
// dropped connection.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("panic recovered: %v", recovered)
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %v", err)
		response.InternalError(c, err)
		c.Abort()
	})
}
