package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceHeader carries the per-request trace ID on both requests and
// responses.
const TraceHeader = "X-Trace-ID"

// TraceIDMiddleware attaches a trace ID to every request. A caller-supplied
// X-Trace-ID header is reused so IDs survive hops through upstream proxies;
// otherwise a fresh UUID is minted. The ID lands in the gin context under
// "trace_id", where the response envelope picks it up, and is echoed back on
// the response header.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(TraceHeader, traceID)
		c.Next()
	}
}
