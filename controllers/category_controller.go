package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/services"
)

type CategoryController struct {
	categoryService CategoryServiceAPI
}

func NewCategoryController(categoryService CategoryServiceAPI) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetCategories handles GET /categories.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, svcErr := cc.categoryService.ListCategories(c.Request.Context())
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", categories)
}

// GetCategoryBySlug handles GET /categories/:slug.
func (cc *CategoryController) GetCategoryBySlug(c *gin.Context) {
	category, svcErr := cc.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", category)
}

// CreateCategory handles POST /categories.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, svcErr := cc.categoryService.CreateCategory(c.Request.Context(), &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.Created(c, "Category created", category)
}
