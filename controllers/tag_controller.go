package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagController struct {
	tagService TagService
	logger     *zap.Logger
}

func NewTagController(tagService TagService, logger *zap.Logger) *TagController {
	return &TagController{tagService: tagService, logger: logger}
}

// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Tag}
// @Router /tags [get]
func (ctrl *TagController) ListTags(c *gin.Context) {
	tags, err := ctrl.tagService.ListTags(c.Request.Context())
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Tags retrieved successfully", tags)
}

// @Summary Create tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TagRequest true "Tag"
// @Success 201 {object} models.Response{data=models.Tag}
// @Failure 400 {object} models.ErrorResponse
// @Router /tags [post]
func (ctrl *TagController) CreateTag(c *gin.Context) {
	var req models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tag, err := ctrl.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Tag created successfully", tag)
}

// TagsFor lists the tags on a product or collection, depending on kind.
// @Summary List tags of an object
// @Tags Tags
// @Produce json
// @Param id path int true "Product or collection ID"
// @Success 200 {object} models.Response{data=[]models.TaggedItem}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/tags [get]
// @Router /collections/{id}/tags [get]
func (ctrl *TagController) TagsFor(kind models.ObjectKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		objectID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}

		items, err := ctrl.tagService.TagsFor(c.Request.Context(), kind, objectID)
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}
		utils.Success(c, http.StatusOK, "Tags retrieved successfully", items)
	}
}

// @Summary Attach tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product or collection ID"
// @Param request body models.AttachTagRequest true "Tag"
// @Success 201 {object} models.Response{data=models.TaggedItem}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/tags [post]
// @Router /collections/{id}/tags [post]
func (ctrl *TagController) Attach(kind models.ObjectKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		objectID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}

		var req models.AttachTagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		item, err := ctrl.tagService.Attach(c.Request.Context(), kind, objectID, req)
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Tag attached successfully", item)
	}
}

// @Summary Detach tag
// @Tags Tags
// @Security BearerAuth
// @Param id path int true "Product or collection ID"
// @Param tag_id path int true "Tag ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/tags/{tag_id} [delete]
// @Router /collections/{id}/tags/{tag_id} [delete]
func (ctrl *TagController) Detach(kind models.ObjectKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		objectID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}
		tagID, err := utils.ParseIDParam(c, "tag_id")
		if err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}

		if err := ctrl.tagService.Detach(c.Request.Context(), kind, objectID, tagID); err != nil {
			utils.RespondError(c, ctrl.logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
