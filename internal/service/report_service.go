package service

import (
	"fmt"
	"time"

	"github.com/capilarrd/pos_api/internal/models"
	"github.com/capilarrd/pos_api/internal/utils"
)

// ReportService aggregates committed sales into daily reports.
type ReportService struct {
	sales SaleStore
}

// NewReportService constructs a ReportService.
func NewReportService(sales SaleStore) *ReportService {
	return &ReportService{sales: sales}
}

// Daily builds the sales report for one calendar date: per-sale breakdown
// plus gross, discount, and net totals. Sale totals are stored net of
// discounts, so gross is reconstructed as total + discount per sale.
func (s *ReportService) Daily(date string) (*models.DailyReport, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}

	sales, err := s.sales.GetByDate(date)
	if err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		Date:      date,
		SaleCount: len(sales),
		Sales:     sales,
	}
	for _, sale := range sales {
		report.GrossTotal += sale.Total + sale.Discount
		report.DiscountTotal += sale.Discount
		report.NetTotal += sale.Total
	}
	return report, nil
}
