package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	ContextRequestID = "request_id"
)

// RequestID tags every request with an ID that the logger and error
// middleware pick up, so one patient-record operation can be traced
// across log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Honor a caller-supplied ID only when it is a well-formed UUID;
		// anything else gets replaced rather than echoed into the logs.
		rid := c.GetHeader(HeaderXRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.New().String()
		}

		c.Set(ContextRequestID, rid)
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
