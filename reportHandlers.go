package main

import (
	"net/http"
	"time"

	"bitbucket.org/mmdatafocus/pos_backend/models/reports"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
)

type reportRequest struct {
	ReportType string `json:"reportType" binding:"required"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	UserId     int    `json:"userId"`
}

// reportFilter resolves the requested window, defaulting to the trailing
// 30 days, and widens the end date to cover its whole calendar day.
func reportFilter(req reportRequest) (reports.Filter, error) {
	start, end := reports.DefaultWindow(time.Now())
	if req.StartDate != "" {
		parsed, err := parseDateParam(req.StartDate)
		if err != nil {
			return reports.Filter{}, err
		}
		start = utils.StartOfDay(parsed)
	}
	if req.EndDate != "" {
		parsed, err := parseDateParam(req.EndDate)
		if err != nil {
			return reports.Filter{}, err
		}
		end = utils.EndOfDay(parsed)
	}
	return reports.Filter{StartDate: start, EndDate: end, UserId: req.UserId}, nil
}

func reportHandler(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, err := reportFilter(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date range")
		return
	}

	ctx := c.Request.Context()
	var data any
	switch req.ReportType {
	case "sales":
		data, err = reports.GetSalesReport(ctx, filter)
	case "products":
		data, err = reports.GetProductReport(ctx, filter)
	case "daily":
		data, err = reports.GetDailyReport(ctx, filter)
	case "payment":
		data, err = reports.GetPaymentReport(ctx, filter)
	case "summary":
		data, err = reports.GetSummaryReport(ctx, filter)
	default:
		respondError(c, http.StatusBadRequest, "unknown report type")
		return
	}
	if err != nil {
		respondDomainError(c, "reportHandlers.go", "reportHandler", err)
		return
	}
	respondData(c, http.StatusOK, data)
}

// exportReportHandler streams the daily report as a spreadsheet download.
func exportReportHandler(c *gin.Context) {
	req := reportRequest{
		ReportType: "daily",
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}
	filter, err := reportFilter(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date range")
		return
	}

	file, err := reports.ExportDailyReportExcel(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, "reportHandlers.go", "exportReportHandler", err)
		return
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+reports.ExportFileName(filter))
	if err := file.Write(c.Writer); err != nil {
		respondDomainError(c, "reportHandlers.go", "exportReportHandler", err)
	}
}
