package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r, seen := newTraceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get(TraceHeader)
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "generated trace ID should be a UUID")
	assert.Equal(t, header, *seen, "context and response header should carry the same ID")
}

func TestTraceIDReusesCallerSuppliedHeader(t *testing.T) {
	r, seen := newTraceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, "upstream-trace-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-trace-42", w.Header().Get(TraceHeader))
	assert.Equal(t, "upstream-trace-42", *seen)
}
