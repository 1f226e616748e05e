package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerController struct {
	customerService CustomerService
	logger          *zap.Logger
}

func NewCustomerController(customerService CustomerService, logger *zap.Logger) *CustomerController {
	return &CustomerController{customerService: customerService, logger: logger}
}

// @Summary Get my customer profile
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Customer}
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/me [get]
func (ctrl *CustomerController) GetMe(c *gin.Context) {
	identity, ok := utils.CurrentIdentity(c)
	if !ok {
		utils.Fail(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	customer, err := ctrl.customerService.Me(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// @Summary Create or replace my customer profile
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CustomerRequest true "Profile"
// @Success 200 {object} models.Response{data=models.Customer}
// @Failure 400 {object} models.ErrorResponse
// @Router /customers/me [put]
func (ctrl *CustomerController) UpdateMe(c *gin.Context) {
	identity, ok := utils.CurrentIdentity(c)
	if !ok {
		utils.Fail(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := ctrl.customerService.UpdateMe(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Customer saved successfully", customer)
}
