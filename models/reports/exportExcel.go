package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportDailyReportExcel renders the daily report as a spreadsheet, one row
// per day plus the footer. Callers own streaming and closing the file.
func ExportDailyReportExcel(ctx context.Context, filter Filter) (*excelize.File, error) {
	report, err := GetDailyReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Daily Sales"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Sales", "Orders", "Items", "Cash", "Card", "Discount"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	writeRow := func(rowNo int, row DailyReportRow) error {
		values := []interface{}{
			row.Date,
			row.TotalSales.InexactFloat64(),
			row.TotalOrders,
			row.TotalItems,
			row.Cash.InexactFloat64(),
			row.Card.InexactFloat64(),
			row.Discount.InexactFloat64(),
		}
		for i, value := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNo)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	for i, row := range report.Days {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}
	if err := writeRow(len(report.Days)+2, report.Totals); err != nil {
		return nil, err
	}

	return f, nil
}

// ExportFileName builds the download name from the window.
func ExportFileName(filter Filter) string {
	return fmt.Sprintf("daily-sales-%s-%s.xlsx",
		filter.StartDate.Format("2006-01-02"),
		filter.EndDate.Format("2006-01-02"))
}
