//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-booking/internal/handler/httperr"
	"bistro-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func performGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAbortWithError(t *testing.T) {
	t.Run("writes the envelope and records the cause", func(t *testing.T) {
		engine := newErrorTestEngine()
		cause := errors.New("store exploded")
		engine.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, cause, "Temporarily unavailable")
		})

		rec := performGet(engine, "/boom")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Temporarily unavailable", body["error"])
		assert.NotContains(t, body, "fields")
	})

	t.Run("nil cause is accepted for plain rejections", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/reject", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, nil, "Unknown status filter")
		})

		rec := performGet(engine, "/reject")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Unknown status filter", decodeErrorBody(t, rec)["error"])
	})

	t.Run("fields variant carries the violation list", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/invalid", func(c *gin.Context) {
			fields := []map[string]string{{"field": "name", "message": "too short"}}
			httperr.AbortWithFields(c, http.StatusUnprocessableEntity, errors.New("invalid"), "Validation failed", fields)
		})

		rec := performGet(engine, "/invalid")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Validation failed", body["error"])
		require.Contains(t, body, "fields")
		assert.Len(t, body["fields"], 1)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders a recorded public error nothing else wrote", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/recorded", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict, Error: "Already taken"}
			_ = c.Error(&gin.Error{Err: errors.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		rec := performGet(engine, "/recorded")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Already taken", decodeErrorBody(t, rec)["error"])
	})

	t.Run("leaves a written response alone", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/written", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("gone"), "Reservation not found")
		})

		rec := performGet(engine, "/written")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Reservation not found", decodeErrorBody(t, rec)["error"])
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newErrorTestEngine()
	engine.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	rec := performGet(engine, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeErrorBody(t, rec)["error"])
}
