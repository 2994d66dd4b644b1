package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webtest/logger"
)

// Recovery returns a Gin middleware that recovers from handler panics and
// logs the stack. A panicking handler produces a 500 response instead of
// killing the background serve goroutine, so the calling test still gets a
// response to assert on.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered", map[string]interface{}{
					"error":            fmt.Sprintf("%v", err),
					"stack":            string(debug.Stack()),
					logger.FieldPath:   c.Request.URL.Path,
					logger.FieldMethod: c.Request.Method,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
