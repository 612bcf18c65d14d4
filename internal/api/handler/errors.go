package handler

import (
	"errors"
	"strconv"

	"holonet-go/internal/api/middleware"
	"holonet-go/internal/api/response"
	"holonet-go/internal/service"
	"holonet-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleError 业务错误到 HTTP 状态码的唯一映射
func handleError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidKind):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}

// parseID 解析路径参数中的 ID
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
