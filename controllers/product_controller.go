package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/repository"
	"github.com/Kristian-01/nine27-mobile/services"
)

type ProductController struct {
	productService ProductServiceAPI
}

func NewProductController(productService ProductServiceAPI) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts handles GET /products with filtering, sorting and pagination.
func (pc *ProductController) GetProducts(c *gin.Context) {
	params := repository.ProductListParams{
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
		InStockOnly:  c.Query("in_stock_only") == "true",
		SortBy:       c.DefaultQuery("sort_by", "created_at"),
		SortOrder:    c.DefaultQuery("sort_order", "desc"),
	}

	if raw := c.Query("min_price"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			params.MinPrice = &min
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			params.MaxPrice = &max
		}
	}

	params.Page, params.PerPage = parsePaginationParams(c)
	if raw := c.Query("per_page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			params.PerPage = n
		}
	}

	result, svcErr := pc.productService.ListProducts(c.Request.Context(), params)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", result)
}

// GetProductByID handles GET /products/:id.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, svcErr := pc.productService.GetProduct(c.Request.Context(), uint(id))
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", product)
}

// GetFeatured handles GET /products/featured.
func (pc *ProductController) GetFeatured(c *gin.Context) {
	products, svcErr := pc.productService.FeaturedProducts(c.Request.Context())
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", products)
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, svcErr := pc.productService.CreateProduct(c.Request.Context(), &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.Created(c, "Product created successfully", product)
}
