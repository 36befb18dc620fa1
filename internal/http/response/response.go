package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code"`
}

type CreatedBody struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorBody{Error: msg, Code: code})
}

// RespondAPIError renders an *apierr.Error with its own status and code.
// Anything else is reported as an internal error.
func RespondAPIError(c *gin.Context, err error) {
	ae, ok := apierr.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Error:   "internal server error",
			Message: errString(err),
			Code:    apierr.CodeInternal,
		})
		return
	}
	body := ErrorBody{Error: ae.Message, Code: ae.Code}
	if body.Error == "" {
		body.Error = http.StatusText(ae.Status)
	}
	if ae.Err != nil {
		body.Message = ae.Err.Error()
	}
	status := ae.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if body.Code == "" {
		body.Code = apierr.CodeInternal
	}
	c.JSON(status, body)
}

// RespondOK encodes payload before writing the status, so an unencodable
// payload becomes a 500 instead of a 200 with an empty body.
func RespondOK(c *gin.Context, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		_ = c.Error(err)
		RespondAPIError(c, apierr.Internal("failed to encode response", err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func RespondCreated(c *gin.Context, id int64, message string) {
	c.JSON(http.StatusCreated, CreatedBody{ID: id, Message: message, Success: true})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
