package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/schedule", nil)
	for key, value := range headers {
		c.Request.Header.Set(key, value)
	}
	return c
}

func TestClientIdentity(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			"forwarded-for wins",
			map[string]string{
				"X-Forwarded-For":  "203.0.113.7, 10.0.0.1",
				"X-Real-IP":        "198.51.100.4",
				"CF-Connecting-IP": "192.0.2.9",
			},
			"203.0.113.7",
		},
		{
			"real-ip next",
			map[string]string{
				"X-Real-IP":        "198.51.100.4",
				"CF-Connecting-IP": "192.0.2.9",
			},
			"198.51.100.4",
		},
		{
			"connecting-ip next",
			map[string]string{"CF-Connecting-IP": "192.0.2.9"},
			"192.0.2.9",
		},
		{"anonymous fallback", nil, AnonymousIdentity},
		{
			"empty forwarded-for entry skipped",
			map[string]string{"X-Forwarded-For": " , 10.0.0.1", "X-Real-IP": "198.51.100.4"},
			"198.51.100.4",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClientIdentity(newTestContext(tc.headers)))
		})
	}
}
