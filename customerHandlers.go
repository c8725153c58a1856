package main

import (
	"net/http"
	"strconv"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
)

func createCustomerHandler(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}
	if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
		respondError(c, http.StatusBadRequest, "invalid phone number")
		return
	}

	customer, err := models.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "customerHandlers.go", "createCustomerHandler", err)
		return
	}
	respondData(c, http.StatusCreated, customer)
}

func getCustomerHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	customer, err := models.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "customerHandlers.go", "getCustomerHandler", err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

// getCustomerByPhoneHandler backs the order form's phone lookup, so a
// returning customer is reused instead of duplicated.
func getCustomerByPhoneHandler(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		respondError(c, http.StatusBadRequest, "phone is required")
		return
	}

	customer, err := models.GetCustomerByPhone(c.Request.Context(), phone)
	if err != nil {
		respondDomainError(c, "customerHandlers.go", "getCustomerByPhoneHandler", err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func listCustomersHandler(c *gin.Context) {
	filter := models.CustomerListFilter{
		Search: c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	customers, total, err := models.PaginateCustomers(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, "customerHandlers.go", "listCustomersHandler", err)
		return
	}

	page, limit := models.NormalizePage(filter.Page, filter.Limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"pages": models.TotalPages(total, limit),
			"limit": limit,
		},
	})
}

func updateCustomerHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	customer, err := models.UpdateCustomer(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "customerHandlers.go", "updateCustomerHandler", err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func deleteCustomerHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondDomainError(c, "customerHandlers.go", "deleteCustomerHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "customer deleted")
}
