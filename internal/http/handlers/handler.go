package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/symbiosis-backend/internal/http/response"
	"github.com/yungbote/symbiosis-backend/internal/platform/apierr"
	"github.com/yungbote/symbiosis-backend/internal/platform/ctxutil"
	"github.com/yungbote/symbiosis-backend/internal/platform/dbctx"
	"github.com/yungbote/symbiosis-backend/internal/platform/logger"
)

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.New(c.Request.Context())
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &apierr.Error{
				Status:  http.StatusRequestEntityTooLarge,
				Code:    apierr.CodeValidation,
				Message: "request body too large",
				Err:     err,
			}
		}
		return apierr.Validation("invalid request body: %v", err)
	}
	return nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.Validation("%s must be a positive integer", name)
	}
	return id, nil
}

// fail records err on the gin context for the request logger and metrics,
// then writes the error body.
func fail(c *gin.Context, log *logger.Logger, err error) {
	_ = c.Error(err)
	if ae, ok := apierr.As(err); !ok || ae.Status >= http.StatusInternalServerError {
		log.Error("request failed", append([]interface{}{"path", c.FullPath(), "error", err}, ctxutil.LogFields(c.Request.Context())...)...)
	}
	response.RespondAPIError(c, err)
}
