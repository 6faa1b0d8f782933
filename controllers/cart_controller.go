package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kristian-01/nine27-mobile/middleware"
	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/services"
)

type CartController struct {
	cartService CartServiceAPI
}

func NewCartController(cartService CartServiceAPI) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, svcErr := cc.cartService.GetCart(c.Request.Context(), userID)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", cart)
}

// AddItem handles POST /cart.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, svcErr := cc.cartService.AddItem(c.Request.Context(), userID, &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Product added to cart", item)
}

// UpdateItem handles PUT /cart/:id.
func (cc *CartController) UpdateItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, svcErr := cc.cartService.UpdateItem(c.Request.Context(), userID, uint(itemID), &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Cart item updated", item)
}

// RemoveItem handles DELETE /cart/:id.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if svcErr := cc.cartService.RemoveItem(c.Request.Context(), userID, uint(itemID)); svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Item removed from cart", nil)
}

// Clear handles DELETE /cart.
func (cc *CartController) Clear(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if svcErr := cc.cartService.Clear(c.Request.Context(), userID); svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Cart cleared", nil)
}
