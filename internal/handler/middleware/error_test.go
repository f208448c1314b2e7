//go:build unit

package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(ErrorHandler(logger))
	r.GET("/aborted", func(c *gin.Context) {
		httperr.Abort(c, errs.Wrap(errs.New("connection reset"), "put record"))
	})
	r.GET("/recorded", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "rental request has already been resolved"
		_ = c.Error(&gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("boom"))
	})
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	t.Run("server errors are logged, body untouched", func(t *testing.T) {
		buf.Reset()
		w := serve(r, "/aborted")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
		assert.Contains(t, buf.String(), "put record: connection reset")
	})

	t.Run("recorded public error is written", func(t *testing.T) {
		w := serve(r, "/recorded")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"rental request has already been resolved"}}`, w.Body.String())
	})

	t.Run("private error without a response becomes 500", func(t *testing.T) {
		w := serve(r, "/private")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})

	t.Run("success passes through", func(t *testing.T) {
		buf.Reset()
		w := serve(r, "/ok")

		assert.Equal(t, "fine", w.Body.String())
		assert.Empty(t, buf.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/panic", func(*gin.Context) { panic("nil map") })

	w := serve(r, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}
