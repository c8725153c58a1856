package main

import (
	"errors"
	"net/http"

	"bitbucket.org/mmdatafocus/pos_backend/config"
	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondBindingError turns gin binding failures into the per-field error
// map, or a plain 400 for malformed JSON.
func respondBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation failed",
			"errors":  utils.ProcessValidationErrors(err),
		})
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// respondDomainError maps a model error onto the HTTP taxonomy: missing
// records are 404, request problems 400, the negative-stock guard and
// anything unexpected 500.
func respondDomainError(c *gin.Context, moduleName, funcName string, err error) {
	var insufficientStock *models.InsufficientStockError
	var stockConsistency *models.StockConsistencyError

	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrBrandNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &insufficientStock),
		errors.Is(err, models.ErrCustomerDetailsRequired),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidDiscountType),
		errors.Is(err, models.ErrInvalidPaymentMethod):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &stockConsistency):
		config.LogError(config.GetLogger(), moduleName, funcName, "stock consistency", nil, err)
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		config.LogError(config.GetLogger(), moduleName, funcName, "unexpected", nil, err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
