package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMaskCredentials(t *testing.T) {
	in := `{"userName":"john.doe","password":"Sup3r$ecret","rePassword":"Sup3r$ecret"}`

	out := maskCredentials(in)

	assert.NotContains(t, out, "Sup3r$ecret")
	assert.Contains(t, out, `"password":"***"`)
	assert.Contains(t, out, `"rePassword":"***"`)
	assert.Contains(t, out, `"userName":"john.doe"`)
}

func TestRequestLogGin_BodyReachesHandlerIntact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// larger than the 4 KB log cap
	payload := `{"filler":"` + strings.Repeat("x", 2*maxLogBodySize) + `"}`

	var got []byte
	r := gin.New()
	r.Use(RequestLogGin(zap.NewNop(), nil))
	r.POST("/echo", func(c *gin.Context) {
		var err error
		got, err = io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte(payload)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, string(got))
}
