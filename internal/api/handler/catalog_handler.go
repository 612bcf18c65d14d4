package handler

import (
	"holonet-go/internal/api/response"
	"holonet-go/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCharacters 获取全部角色
// @Summary 获取全部角色
// @Tags 目录
// @Produce json
// @Success 200 {array} dto.CharacterInfo
// @Failure 500 {object} response.MessageResponse
// @Router /characters [get]
func (h *CatalogHandler) ListCharacters(c *gin.Context) {
	items, err := h.catalogService.ListCharacters(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, items)
}

// GetCharacter 获取单个角色
// @Summary 获取单个角色
// @Tags 目录
// @Produce json
// @Param id path int true "角色ID"
// @Success 200 {object} dto.CharacterInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /characters/{id} [get]
func (h *CatalogHandler) GetCharacter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalogService.GetCharacter(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// ListPlanets 获取全部星球
// @Summary 获取全部星球
// @Tags 目录
// @Produce json
// @Success 200 {array} dto.PlanetInfo
// @Failure 500 {object} response.MessageResponse
// @Router /planets [get]
func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	items, err := h.catalogService.ListPlanets(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, items)
}

// GetPlanet 获取单个星球
// @Summary 获取单个星球
// @Tags 目录
// @Produce json
// @Param id path int true "星球ID"
// @Success 200 {object} dto.PlanetInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /planets/{id} [get]
func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalogService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}

// ListVehicles 获取全部载具
// @Summary 获取全部载具
// @Tags 目录
// @Produce json
// @Success 200 {array} dto.VehicleInfo
// @Failure 500 {object} response.MessageResponse
// @Router /vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	items, err := h.catalogService.ListVehicles(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, items)
}

// GetVehicle 获取单个载具
// @Summary 获取单个载具
// @Tags 目录
// @Produce json
// @Param id path int true "载具ID"
// @Success 200 {object} dto.VehicleInfo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /vehicles/{id} [get]
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.catalogService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, item)
}
