package httperr

import (
	"net/http"

	"equipment-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const internalMessage = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status by category. Only
// categorised errors expose their message; everything else is a 500.
func Abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrUnauthenticated):
		AbortWithError(c, http.StatusUnauthorized, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, internalMessage, nil)
	}
}
