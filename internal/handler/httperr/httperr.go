package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable machine-readable codes. Clients branch on these, never on the
// human-readable message, so they are part of the API contract.
const (
	CodeValidationError        = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeConflict               = "CONFLICT"
	CodeSoldOut                = "SOLD_OUT"
	CodeSupplierRejected       = "SUPPLIER_REJECTED"
	CodeSupplierUnavailable    = "SUPPLIER_UNAVAILABLE"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeInternal               = "INTERNAL"
)

// Response is the error envelope every endpoint returns. Status is carried
// for middleware that re-renders a recorded error; it never serializes.
type Response struct {
	Status int    `json:"-"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

// Abort writes the envelope and, when an underlying error exists, records
// it on the context for the logging middleware.
func Abort(c *gin.Context, status int, err error, code, msg string) {
	resp := Response{Status: status, Code: code, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
