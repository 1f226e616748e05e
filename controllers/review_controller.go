package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewController struct {
	reviewService ReviewService
	logger        *zap.Logger
}

func NewReviewController(reviewService ReviewService, logger *zap.Logger) *ReviewController {
	return &ReviewController{reviewService: reviewService, logger: logger}
}

// @Summary List product reviews
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response{data=[]models.Review}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/reviews [get]
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	reviews, err := ctrl.reviewService.ListReviews(c.Request.Context(), productID)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// @Summary Review a product
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} models.Response{data=models.Review}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), productID, req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Review created successfully", review)
}

// @Summary Delete review
// @Tags Reviews
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param review_id path int true "Review ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/reviews/{review_id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	reviewID, err := utils.ParseIDParam(c, "review_id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.reviewService.DeleteReview(c.Request.Context(), productID, reviewID); err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
