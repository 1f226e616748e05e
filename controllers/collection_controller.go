package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CollectionController struct {
	productService ProductService
	logger         *zap.Logger
}

func NewCollectionController(productService ProductService, logger *zap.Logger) *CollectionController {
	return &CollectionController{productService: productService, logger: logger}
}

// @Summary Get collection
// @Tags Collections
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} models.Response{data=models.Collection}
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{id} [get]
func (ctrl *CollectionController) GetCollection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	collection, err := ctrl.productService.GetCollection(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Collection retrieved successfully", collection)
}

// @Summary Create collection
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CollectionRequest true "Collection"
// @Success 201 {object} models.Response{data=models.Collection}
// @Failure 400 {object} models.ErrorResponse
// @Router /collections [post]
func (ctrl *CollectionController) CreateCollection(c *gin.Context) {
	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	collection, err := ctrl.productService.CreateCollection(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Collection created successfully", collection)
}

// @Summary Update collection
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body models.CollectionRequest true "Collection"
// @Success 200 {object} models.Response{data=models.Collection}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{id} [patch]
func (ctrl *CollectionController) UpdateCollection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	var req models.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	collection, err := ctrl.productService.UpdateCollection(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Collection updated successfully", collection)
}

// @Summary Delete collection
// @Description Collections that still include products cannot be deleted
// @Tags Collections
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 405 {object} models.ErrorResponse
// @Router /collections/{id} [delete]
func (ctrl *CollectionController) DeleteCollection(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.productService.DeleteCollection(c.Request.Context(), id); err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
