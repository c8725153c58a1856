package main

import (
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
)

func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func createOrderHandler(c *gin.Context) {
	var input models.NewOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := models.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "orderHandlers.go", "createOrderHandler", err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

func getOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	order, err := models.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "orderHandlers.go", "getOrderHandler", err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func listOrdersHandler(c *gin.Context) {
	filter := models.OrderListFilter{
		Status: models.OrderStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if customerId, err := strconv.Atoi(c.Query("customer")); err == nil {
		filter.CustomerId = customerId
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if raw := c.Query("startDate"); raw != "" {
		start, err := parseDateParam(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid startDate")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := parseDateParam(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid endDate")
			return
		}
		end = utils.EndOfDay(end)
		filter.EndDate = &end
	}

	orders, total, err := models.PaginateOrders(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, "orderHandlers.go", "listOrdersHandler", err)
		return
	}

	page, limit := models.NormalizePage(filter.Page, filter.Limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"total":   total,
		"page":    page,
		"pages":   models.TotalPages(total, limit),
		"data":    orders,
	})
}

func updateOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := models.UpdateOrder(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "orderHandlers.go", "updateOrderHandler", err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func deleteOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteOrder(c.Request.Context(), id); err != nil {
		respondDomainError(c, "orderHandlers.go", "deleteOrderHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "order deleted")
}

// parseDateParam accepts a date-only value or a full RFC3339 timestamp.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
