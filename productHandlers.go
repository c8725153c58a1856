package main

import (
	"net/http"
	"strconv"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"github.com/gin-gonic/gin"
)

func createProductHandler(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "createProductHandler", err)
		return
	}
	respondData(c, http.StatusCreated, product)
}

func getProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	product, err := models.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "getProductHandler", err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func listProductsHandler(c *gin.Context) {
	filter := models.ProductListFilter{
		Search: c.Query("search"),
	}
	if brandId, err := strconv.Atoi(c.Query("brand")); err == nil {
		filter.BrandId = brandId
	}
	if categoryId, err := strconv.Atoi(c.Query("category")); err == nil {
		filter.CategoryId = categoryId
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, total, err := models.PaginateProducts(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "listProductsHandler", err)
		return
	}

	page, limit := models.NormalizePage(filter.Page, filter.Limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"pages": models.TotalPages(total, limit),
			"limit": limit,
		},
	})
}

func updateProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := models.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "updateProductHandler", err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func deleteProductHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteProduct(c.Request.Context(), id); err != nil {
		respondDomainError(c, "productHandlers.go", "deleteProductHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "product deleted")
}

func createBrandHandler(c *gin.Context) {
	var input models.NewBrand
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	brand, err := models.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "createBrandHandler", err)
		return
	}
	respondData(c, http.StatusCreated, brand)
}

func listBrandsHandler(c *gin.Context) {
	brands, err := models.GetBrands(c.Request.Context())
	if err != nil {
		respondDomainError(c, "productHandlers.go", "listBrandsHandler", err)
		return
	}
	respondData(c, http.StatusOK, brands)
}

func getBrandHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	brand, err := models.GetBrand(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "getBrandHandler", err)
		return
	}
	respondData(c, http.StatusOK, brand)
}

func updateBrandHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.NewBrand
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	brand, err := models.UpdateBrand(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "updateBrandHandler", err)
		return
	}
	respondData(c, http.StatusOK, brand)
}

func deleteBrandHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteBrand(c.Request.Context(), id); err != nil {
		respondDomainError(c, "productHandlers.go", "deleteBrandHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "brand deleted")
}

func createCategoryHandler(c *gin.Context) {
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := models.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "createCategoryHandler", err)
		return
	}
	respondData(c, http.StatusCreated, category)
}

func listCategoriesHandler(c *gin.Context) {
	categories, err := models.GetCategories(c.Request.Context())
	if err != nil {
		respondDomainError(c, "productHandlers.go", "listCategoriesHandler", err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

func getCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	category, err := models.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "getCategoryHandler", err)
		return
	}
	respondData(c, http.StatusOK, category)
}

func updateCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := models.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "productHandlers.go", "updateCategoryHandler", err)
		return
	}
	respondData(c, http.StatusOK, category)
}

func deleteCategoryHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteCategory(c.Request.Context(), id); err != nil {
		respondDomainError(c, "productHandlers.go", "deleteCategoryHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "category deleted")
}
