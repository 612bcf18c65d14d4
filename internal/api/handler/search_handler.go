package handler

import (
	"holonet-go/internal/api/dto"
	"holonet-go/internal/api/response"
	"holonet-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search 搜索目录
// @Summary 搜索目录
// @Description 按名称搜索角色、星球和载具，ES 不可用时降级到数据库
// @Tags 搜索
// @Produce json
// @Param q query string true "关键词"
// @Param kind query string false "planet | character | vehicle"
// @Param limit query int false "返回条数，默认20，最大100"
// @Success 200 {object} dto.SearchData
// @Failure 400 {object} response.MessageResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid search parameters")
		return
	}

	data, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, data)
}
