package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Kristian-01/nine27-mobile/middleware"
	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/services"
)

type OrderController struct {
	orderService OrderServiceAPI
}

func NewOrderController(orderService OrderServiceAPI) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /orders.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	order, svcErr := oc.orderService.PlaceOrder(c.Request.Context(), userID, &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.Created(c, "Order placed successfully", order)
}

// CancelOrder handles PATCH /orders/:id/cancel.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, svcErr := oc.orderService.CancelOrder(c.Request.Context(), userID, orderID)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}

// GetOrders handles GET /orders.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, limit := parsePaginationParams(c)

	result, svcErr := oc.orderService.GetUserOrders(c.Request.Context(), userID, page, limit)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", result)
}

// GetOrderByID handles GET /orders/:id.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, svcErr := oc.orderService.GetOrderByID(c.Request.Context(), userID, orderID)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", order)
}

// parsePaginationParams extracts and bounds pagination query parameters.
func parsePaginationParams(c *gin.Context) (int, int) {
	const maxLimit = 100

	page := 1
	limit := 10

	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
		if limit > maxLimit {
			limit = maxLimit
		}
	}

	return page, limit
}
