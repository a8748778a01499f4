package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every error the API returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Fields any    `json:"fields,omitempty"`
}

// AbortWithError renders the error envelope and records err on the context
// for the logging and error middleware. err may be nil when the rejection
// has no underlying cause worth reporting.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, Response{Status: status, Error: msg}, err)
}

// AbortWithFields is AbortWithError carrying the per-field violation list of
// the validation gate.
func AbortWithFields(c *gin.Context, status int, err error, msg string, fields any) {
	abort(c, Response{Status: status, Error: msg, Fields: fields}, err)
}

func abort(c *gin.Context, resp Response, err error) {
	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}
