package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 消息响应，错误响应也使用该结构
type MessageResponse struct {
	Msg string `json:"msg"`
}

// OK 直接返回实体或数组
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 返回 {"msg": ...}
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageResponse{Msg: msg})
}

func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}

func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Message(c, http.StatusConflict, msg)
}

func InternalError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal Server Error")
}
