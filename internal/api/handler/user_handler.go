package handler

import (
	"holonet-go/internal/api/response"
	"holonet-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers 获取全部用户
// @Summary 获取全部用户
// @Tags 用户
// @Produce json
// @Success 200 {array} dto.UserInfo
// @Failure 500 {object} response.MessageResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, users)
}

// GetUser 获取单个用户
// @Summary 获取单个用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} dto.UserInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, user)
}
