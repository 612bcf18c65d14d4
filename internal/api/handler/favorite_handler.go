package handler

import (
	"net/http"

	"holonet-go/internal/api/dto"
	"holonet-go/internal/api/response"
	"holonet-go/internal/model"
	"holonet-go/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// bindTarget 解析路径 ID 和请求体中的 user_id
func bindTarget(c *gin.Context, kind model.Kind) (int64, model.Target, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return 0, model.Target{}, false
	}
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "user_id is required")
		return 0, model.Target{}, false
	}
	return req.UserID, model.Target{Kind: kind, ID: id}, true
}

// Add 添加收藏，kind 由路由决定
// @Summary 添加收藏
// @Tags 收藏
// @Accept json
// @Produce json
// @Param kind path string true "planet | character | vehicle"
// @Param id path int true "目标ID"
// @Param request body dto.FavoriteRequest true "收藏用户"
// @Success 201 {object} dto.FavoriteInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Failure 409 {object} response.MessageResponse
// @Router /favorite/{kind}/{id} [post]
func (h *FavoriteHandler) Add(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, target, ok := bindTarget(c, kind)
		if !ok {
			return
		}
		info, err := h.favoriteService.Add(c.Request.Context(), userID, target)
		if err != nil {
			handleError(c, err)
			return
		}
		response.Created(c, info)
	}
}

// Remove 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Accept json
// @Produce json
// @Param kind path string true "planet | character | vehicle"
// @Param id path int true "目标ID"
// @Param request body dto.FavoriteRequest true "收藏用户"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /favorite/{kind}/{id} [delete]
func (h *FavoriteHandler) Remove(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, target, ok := bindTarget(c, kind)
		if !ok {
			return
		}
		if err := h.favoriteService.Remove(c.Request.Context(), userID, target); err != nil {
			handleError(c, err)
			return
		}
		response.Message(c, http.StatusOK, "Favorite deleted")
	}
}

// ListByUser 获取用户收藏
// @Summary 获取用户收藏
// @Tags 收藏
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {array} dto.FavoriteInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /users/{id}/favorites [get]
func (h *FavoriteHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.favoriteService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, items)
}
