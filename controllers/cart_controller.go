package controllers

import (
	"net/http"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	cartService CartService
	logger      *zap.Logger
}

func NewCartController(cartService CartService, logger *zap.Logger) *CartController {
	return &CartController{cartService: cartService, logger: logger}
}

// @Summary Create cart
// @Description Create an empty anonymous cart
// @Tags Carts
// @Produce json
// @Success 201 {object} models.Response{data=models.Cart}
// @Router /carts [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	cart, err := ctrl.cartService.CreateCart(c.Request.Context())
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Cart created successfully", cart)
}

// @Summary Get cart
// @Description Get a cart with its items priced from the current catalog
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response{data=models.Cart}
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Cart retrieved successfully", cart)
}

// @Summary Delete cart
// @Tags Carts
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [delete]
func (ctrl *CartController) DeleteCart(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.cartService.DeleteCart(c.Request.Context(), cartID); err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List cart items
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response{data=[]models.CartItem}
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/items [get]
func (ctrl *CartController) ListItems(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	items, err := ctrl.cartService.ListItems(c.Request.Context(), cartID)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Cart items retrieved successfully", items)
}

// @Summary Get cart item
// @Tags Carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param item_id path int true "Cart item ID"
// @Success 200 {object} models.Response{data=models.CartItem}
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/items/{item_id} [get]
func (ctrl *CartController) GetItem(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	itemID, err := utils.ParseIDParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	item, err := ctrl.cartService.GetItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Cart item retrieved successfully", item)
}

// @Summary Add cart item
// @Description Add a product to the cart; an existing line has its quantity increased
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.Response{data=models.CartItem}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /carts/{id}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := ctrl.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Item added to cart", item)
}

// @Summary Update cart item quantity
// @Tags Carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item_id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response{data=models.CartItem}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/items/{item_id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	itemID, err := utils.ParseIDParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := ctrl.cartService.UpdateItem(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	utils.Success(c, http.StatusOK, "Cart item updated successfully", item)
}

// @Summary Remove cart item
// @Tags Carts
// @Param id path string true "Cart ID"
// @Param item_id path int true "Cart item ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/items/{item_id} [delete]
func (ctrl *CartController) DeleteItem(c *gin.Context) {
	cartID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	itemID, err := utils.ParseIDParam(c, "item_id")
	if err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.cartService.DeleteItem(c.Request.Context(), cartID, itemID); err != nil {
		utils.RespondError(c, ctrl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
